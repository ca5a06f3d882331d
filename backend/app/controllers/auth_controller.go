package controllers

import (
	"encoding/json"
	"net/http"

	"simple-notes/backend/app/dto"
	"simple-notes/backend/app/services"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

func (c *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	var req dto.SignUpRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Username == "" || req.Password == "" || req.Email == "" {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "missing credentials"})
		return
	}
	_, token, err := c.Auth.SignUp(req.Username, req.Password, req.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.TokenResponse{Token: token})
}

func (c *AuthController) SignIn(w http.ResponseWriter, r *http.Request) {
	var req dto.SignInRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Username == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "missing credentials"})
		return
	}
	_, token, err := c.Auth.SignIn(req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.TokenResponse{Token: token})
}
