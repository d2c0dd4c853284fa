package v1

import (
	"context"
	"net/http"

	"github.com/kurochkinivan/sheet_ingest/internal/domain"
)

type UploadLogsRepository interface {
	UploadLogs(ctx context.Context, limit, offset uint64) ([]*domain.UploadLog, int, error)
}

type UploadLogsHandler struct {
	uploadLogsRepository UploadLogsRepository
}

func NewUploadLogsHandler(uploadLogsRepository UploadLogsRepository) *UploadLogsHandler {
	return &UploadLogsHandler{
		uploadLogsRepository: uploadLogsRepository,
	}
}

type GetUploadLogsResponse struct {
	UploadLogs []*domain.UploadLog `json:"upload_logs"`
	Pagination Pagination          `json:"pagination"`
}

func (h *UploadLogsHandler) GetUploadLogs(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	offset := (page - 1) * limit

	logs, total, err := h.uploadLogsRepository.UploadLogs(r.Context(), limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, GetUploadLogsResponse{
		UploadLogs: logs,
		Pagination: NewPagination(page, limit, total),
	})
}
