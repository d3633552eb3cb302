package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/freightdesk/freightdesk-go/internal/model"
	"github.com/freightdesk/freightdesk-go/internal/service"
)

// AuthHandler handles HTTP requests for health, registration and login.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleHealth handles GET /api/health requests.
func (h *AuthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, "Success", map[string]string{"status": "API is running"})
}

// HandleRegister handles POST /api/auth/register requests.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			writeValidationError(w, ve)
		case errors.Is(err, service.ErrEmailTaken):
			writeError(w, http.StatusConflict, "Email already exists")
		default:
			slog.Error("registration failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Registration failed")
		}
		return
	}

	writeJSON(w, http.StatusCreated, Envelope{
		Success: true,
		Message: "Company and user registered successfully",
		Data:    resp,
	})
}

// HandleLogin handles POST /api/auth/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			writeValidationError(w, ve)
		case errors.Is(err, service.ErrInvalidCredentials):
			// Unknown email and wrong password answer identically.
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
		default:
			slog.Error("login failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeSuccess(w, http.StatusOK, "Login successful", resp)
}
