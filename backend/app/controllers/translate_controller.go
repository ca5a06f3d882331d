package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"simple-notes/backend/app/dto"
	"simple-notes/backend/app/middleware"
	"simple-notes/backend/app/services"
)

type TranslateController struct {
	Tokens    *services.TokenService
	Translate *services.TranslateService
}

func NewTranslateController(tokens *services.TokenService, translate *services.TranslateService) *TranslateController {
	return &TranslateController{Tokens: tokens, Translate: translate}
}

func (c *TranslateController) Post(w http.ResponseWriter, r *http.Request) {
	if _, err := c.Tokens.Resolve(middleware.Token(r.Context())); err != nil {
		writeError(w, err)
		return
	}
	var req dto.TranslateRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	query := strings.TrimSpace(req.Query)
	if query == "" {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "No text to translate"})
		return
	}
	translated, err := c.Translate.Translate(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.TranslateResponse{Translation: translated})
}
