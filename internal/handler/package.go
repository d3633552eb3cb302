package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/freightdesk/freightdesk-go/internal/model"
	"github.com/freightdesk/freightdesk-go/internal/service"
)

// PackageHandler handles HTTP requests for shipment packages. Every
// operation is scoped to the company carried by the caller's token.
type PackageHandler struct {
	service *service.PackageService
}

// NewPackageHandler creates a new PackageHandler.
func NewPackageHandler(svc *service.PackageService) *PackageHandler {
	return &PackageHandler{service: svc}
}

// HandleIndex handles GET /api/packages requests.
func (h *PackageHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	companyID, ok := companyIDFromRequest(w, r)
	if !ok {
		return
	}

	packages, err := h.service.List(r.Context(), companyID)
	if err != nil {
		slog.Error("listing packages failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeSuccess(w, http.StatusOK, "Success", packages)
}

// HandleStore handles POST /api/packages requests. The company id comes from
// the token, never from the request body.
func (h *PackageHandler) HandleStore(w http.ResponseWriter, r *http.Request) {
	companyID, ok := companyIDFromRequest(w, r)
	if !ok {
		return
	}

	var req model.CreatePackageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	packageID, err := h.service.Create(r.Context(), companyID, req)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			writeValidationError(w, ve)
			return
		}
		slog.Error("creating package failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, Envelope{
		Success: true,
		Message: "Package created successfully",
		Data:    model.CreatePackageResponse{PackageID: packageID},
	})
}

// HandleShow handles GET /api/packages/{id} requests.
func (h *PackageHandler) HandleShow(w http.ResponseWriter, r *http.Request) {
	companyID, ok := companyIDFromRequest(w, r)
	if !ok {
		return
	}

	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Package not found")
		return
	}

	pkg, err := h.service.Get(r.Context(), companyID, id)
	if err != nil {
		if errors.Is(err, service.ErrPackageNotFound) {
			writeError(w, http.StatusNotFound, "Package not found")
			return
		}
		slog.Error("fetching package failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeSuccess(w, http.StatusOK, "Success", pkg)
}

// HandleUpdate handles PUT /api/packages/{id} requests.
func (h *PackageHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	companyID, ok := companyIDFromRequest(w, r)
	if !ok {
		return
	}

	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Package not found")
		return
	}

	var req model.UpdatePackageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.Update(r.Context(), companyID, id, req); err != nil {
		if errors.Is(err, service.ErrPackageNotFound) {
			writeError(w, http.StatusNotFound, "Package not found")
			return
		}
		slog.Error("updating package failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeSuccess(w, http.StatusOK, "Package updated successfully", nil)
}

// HandleDestroy handles DELETE /api/packages/{id} requests.
func (h *PackageHandler) HandleDestroy(w http.ResponseWriter, r *http.Request) {
	companyID, ok := companyIDFromRequest(w, r)
	if !ok {
		return
	}

	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Package not found")
		return
	}

	if err := h.service.Delete(r.Context(), companyID, id); err != nil {
		if errors.Is(err, service.ErrPackageNotFound) {
			writeError(w, http.StatusNotFound, "Package not found")
			return
		}
		slog.Error("deleting package failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeSuccess(w, http.StatusOK, "Package deleted successfully", nil)
}
