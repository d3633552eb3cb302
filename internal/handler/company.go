package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/freightdesk/freightdesk-go/internal/service"
)

// CompanyHandler handles HTTP requests for company reads.
type CompanyHandler struct {
	service *service.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(svc *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: svc}
}

// HandleIndex handles GET /api/companies requests.
func (h *CompanyHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	companies, err := h.service.List(r.Context())
	if err != nil {
		slog.Error("listing companies failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeSuccess(w, http.StatusOK, "Success", companies)
}

// HandleShow handles GET /api/companies/{id} requests.
func (h *CompanyHandler) HandleShow(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Company not found")
		return
	}

	company, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCompanyNotFound) {
			writeError(w, http.StatusNotFound, "Company not found")
			return
		}
		slog.Error("fetching company failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeSuccess(w, http.StatusOK, "Success", company)
}
