package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/freightdesk/freightdesk-go/internal/model"
	"github.com/freightdesk/freightdesk-go/internal/service"
)

// UserHandler handles HTTP requests for team members of a company.
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// HandleIndex handles GET /api/users requests. Password hashes never appear
// in the payload: the model omits them from serialization.
func (h *UserHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	companyID, ok := companyIDFromRequest(w, r)
	if !ok {
		return
	}

	users, err := h.service.List(r.Context(), companyID)
	if err != nil {
		slog.Error("listing users failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeSuccess(w, http.StatusOK, "Success", users)
}

// HandleStore handles POST /api/users requests. The new user joins the
// caller's company.
func (h *UserHandler) HandleStore(w http.ResponseWriter, r *http.Request) {
	companyID, ok := companyIDFromRequest(w, r)
	if !ok {
		return
	}

	var req model.CreateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	userID, err := h.service.Create(r.Context(), companyID, req)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			writeValidationError(w, ve)
		case errors.Is(err, service.ErrEmailTaken):
			writeError(w, http.StatusConflict, "Email already exists")
		default:
			slog.Error("creating user failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, Envelope{
		Success: true,
		Message: "User created successfully",
		Data:    model.CreateUserResponse{UserID: userID},
	})
}

// HandleShow handles GET /api/users/{id} requests.
func (h *UserHandler) HandleShow(w http.ResponseWriter, r *http.Request) {
	companyID, ok := companyIDFromRequest(w, r)
	if !ok {
		return
	}

	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	user, err := h.service.Get(r.Context(), companyID, id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		slog.Error("fetching user failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeSuccess(w, http.StatusOK, "Success", user)
}

// HandleDestroy handles DELETE /api/users/{id} requests.
func (h *UserHandler) HandleDestroy(w http.ResponseWriter, r *http.Request) {
	companyID, ok := companyIDFromRequest(w, r)
	if !ok {
		return
	}

	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	if err := h.service.Delete(r.Context(), companyID, id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		slog.Error("deleting user failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeSuccess(w, http.StatusOK, "User deleted successfully", nil)
}
