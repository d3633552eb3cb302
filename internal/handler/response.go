package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/freightdesk/freightdesk-go/internal/middleware"
	"github.com/freightdesk/freightdesk-go/internal/service"
	"github.com/go-chi/chi/v5"
)

// Envelope is the uniform response shape of every endpoint.
type Envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    any               `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, Envelope{Success: true, Message: message, Data: data})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Envelope{Success: false, Message: message})
}

func writeValidationError(w http.ResponseWriter, ve *service.ValidationError) {
	writeJSON(w, http.StatusUnprocessableEntity, Envelope{
		Success: false,
		Message: "Validation failed",
		Errors:  ve.Fields,
	})
}

// decodeJSON reads the request body into dst. On malformed input it writes a
// 422 validation response and reports false; the caller must return.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, Envelope{
			Success: false,
			Message: "Validation failed",
			Errors:  map[string]string{"body": "Request body must be valid JSON"},
		})
		return false
	}

	return true
}

// companyIDFromRequest reads the tenant from the claims attached by the auth
// gate. Absent claims or a zero company id mean the gate was not applied or
// the token is malformed; either way the request is unauthenticated.
func companyIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok || claims.CompanyID == 0 {
		writeError(w, http.StatusUnauthorized, "Company ID not found in token")
		return 0, false
	}
	return claims.CompanyID, true
}

// idParam parses the {id} route segment. A non-numeric id cannot name an
// existing row, so callers treat a parse failure as not found.
func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
