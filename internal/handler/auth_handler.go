package handler

import (
	"net/http"

	"scent-shop/internal/middleware"
	"scent-shop/internal/model"
	"scent-shop/internal/service"

	"github.com/rs/zerolog"
)

// AuthHandler handles member registration and login.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("handler", "auth").Logger(),
	}
}

// Register handles POST /register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var creds model.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		writeError(w, err, h.logger)
		return
	}

	if _, err := h.service.Register(r.Context(), creds); err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeText(w, http.StatusCreated, "User registered")
}

// Login handles POST /login. The token is returned both as the body and in
// the authorization header.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds model.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		writeError(w, err, h.logger)
		return
	}

	token, err := h.service.Login(r.Context(), creds)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	w.Header().Set(middleware.TokenHeader, token)
	writeText(w, http.StatusOK, token)
}
