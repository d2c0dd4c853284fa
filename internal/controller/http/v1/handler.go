package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/kurochkinivan/sheet_ingest/internal/domain"
	"github.com/kurochkinivan/sheet_ingest/internal/pipeline"
)

// Orchestrator is the part of the pipeline the UI talks to.
type Orchestrator interface {
	SheetMappings() []*domain.SheetMapping
	AddFile(name string, data []byte, sheetMappingID string) (*domain.FileTask, error)
	AssignSheetMapping(fileID, sheetMappingID string) error
	RemoveFile(fileID string) error
	Files() []*domain.FileTask
	Start(uploader string) error
	Resume(d pipeline.Decision) error
	SkipFile(fileID string) error
	Progress() pipeline.Progress
}

type PipelineHandler struct {
	orchestrator  Orchestrator
	maxUploadSize int64
}

func NewPipelineHandler(orchestrator Orchestrator, maxUploadSize int64) *PipelineHandler {
	return &PipelineHandler{
		orchestrator:  orchestrator,
		maxUploadSize: maxUploadSize,
	}
}

var supportedExtensions = []string{".xlsx", ".xlsm", ".csv"}

type GetSheetMappingsResponse struct {
	SheetMappings []*domain.SheetMapping `json:"sheet_mappings"`
}

func (h *PipelineHandler) GetSheetMappings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, GetSheetMappingsResponse{
		SheetMappings: h.orchestrator.SheetMappings(),
	})
}

type GetFilesResponse struct {
	Files []*domain.FileTask `json:"files"`
}

func (h *PipelineHandler) GetFiles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, GetFilesResponse{
		Files: h.orchestrator.Files(),
	})
}

type AddFilesResponse struct {
	Files []*domain.FileTask `json:"files"`
}

// AddFiles accepts a multipart form with one or more "file" parts and a
// "sheet_mapping_id" field applied to all of them.
func (h *PipelineHandler) AddFiles(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, fmt.Sprintf("upload exceeds %d bytes", tooLarge.Limit), http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["file"]
	if len(headers) == 0 {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}

	sheetMappingID := r.FormValue("sheet_mapping_id")

	uploads := make([]upload, 0, len(headers))
	for _, header := range headers {
		ext := strings.ToLower(filepath.Ext(header.Filename))
		if !slices.Contains(supportedExtensions, ext) {
			writeError(w, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, header.Filename))
			return
		}

		data, err := readPart(header)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		uploads = append(uploads, upload{name: header.Filename, data: data})
	}

	resp := AddFilesResponse{Files: make([]*domain.FileTask, 0, len(uploads))}
	for _, u := range uploads {
		task, err := h.orchestrator.AddFile(u.name, u.data, sheetMappingID)
		if err != nil {
			writeError(w, err)
			return
		}
		resp.Files = append(resp.Files, task)
	}

	writeJSON(w, http.StatusCreated, resp)
}

type upload struct {
	name string
	data []byte
}

func readPart(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", header.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", header.Filename, err)
	}

	return data, nil
}

type AssignSheetMappingRequest struct {
	SheetMappingID string `json:"sheet_mapping_id"`
}

func (h *PipelineHandler) AssignSheetMapping(w http.ResponseWriter, r *http.Request) {
	var req AssignSheetMappingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.orchestrator.AssignSheetMapping(chi.URLParam(r, "file_id"), req.SheetMappingID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PipelineHandler) RemoveFile(w http.ResponseWriter, r *http.Request) {
	if err := h.orchestrator.RemoveFile(chi.URLParam(r, "file_id")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PipelineHandler) SkipFile(w http.ResponseWriter, r *http.Request) {
	if err := h.orchestrator.SkipFile(chi.URLParam(r, "file_id")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

type StartRunRequest struct {
	Uploader string `json:"uploader"`
}

func (h *PipelineHandler) StartRun(w http.ResponseWriter, r *http.Request) {
	var req StartRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Uploader) == "" {
		http.Error(w, "uploader is required", http.StatusBadRequest)
		return
	}

	if err := h.orchestrator.Start(req.Uploader); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, h.orchestrator.Progress())
}

func (h *PipelineHandler) GetCurrentRun(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.orchestrator.Progress())
}

type DecisionRequest struct {
	Action          string            `json:"action"`
	Classifications map[string]string `json:"classifications,omitempty"`
}

func (h *PipelineHandler) Decide(w http.ResponseWriter, r *http.Request) {
	var req DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	decision, err := pipeline.ParseDecision(req.Action, req.Classifications)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.orchestrator.Resume(decision); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
