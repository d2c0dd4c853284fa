package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kurochkinivan/sheet_ingest/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, errorStatus(err), errorResponse{Error: err.Error()})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrFileNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrFileBusy),
		errors.Is(err, domain.ErrRunInProgress),
		errors.Is(err, domain.ErrNoPendingDecision),
		errors.Is(err, domain.ErrDecisionMismatch):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnknownSheetMapping),
		errors.Is(err, domain.ErrIncompleteClassification):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}
