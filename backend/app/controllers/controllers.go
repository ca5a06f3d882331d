package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"simple-notes/backend/app/domain"
	"simple-notes/backend/app/dto"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain sentinels to their HTTP status. Anything
// outside the taxonomy (translate failures, UNKNOWN_ERROR) is a 500
// with the error message as the code.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrUserAlreadyExists):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrInvalidPassword), errors.Is(err, domain.ErrNoteNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidToken), errors.Is(err, domain.ErrTokenExpired):
		status = http.StatusUnauthorized
	}
	writeJSON(w, status, dto.ErrorResponse{Error: err.Error()})
}
