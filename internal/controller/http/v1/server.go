package v1

import (
	"context"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/sheet_ingest/internal/config"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(cfg config.HTTP, orchestrator Orchestrator, uploadLogsRepo UploadLogsRepository, maxUploadSize int64) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      NewRouter(orchestrator, uploadLogsRepo, maxUploadSize),
		},
	}
}

func NewRouter(orchestrator Orchestrator, uploadLogsRepo UploadLogsRepository, maxUploadSize int64) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	ph := NewPipelineHandler(orchestrator, maxUploadSize)
	lh := NewUploadLogsHandler(uploadLogsRepo)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/sheet-mappings", ph.GetSheetMappings)

		r.Route("/files", func(r chi.Router) {
			r.Get("/", ph.GetFiles)
			r.Post("/", ph.AddFiles)
			r.Patch("/{file_id}", ph.AssignSheetMapping)
			r.Delete("/{file_id}", ph.RemoveFile)
			r.Post("/{file_id}/skip", ph.SkipFile)
		})

		r.Route("/runs", func(r chi.Router) {
			r.Post("/", ph.StartRun)
			r.Get("/current", ph.GetCurrentRun)
			r.Post("/current/decision", ph.Decide)
		})

		r.Get("/upload-logs", lh.GetUploadLogs)
	})

	return r
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
