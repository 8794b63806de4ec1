package httpadapter

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"adrotation/internal/core/port"
)

// Options configures the routes around the advertisement API.
type Options struct {
	// MaxUploadBytes caps the size of create and update request bodies.
	MaxUploadBytes int64
	// RunTimeout is the deadline given to a single serve.
	RunTimeout time.Duration
	// FilesPrefix is the URL prefix Files is mounted under.
	FilesPrefix string
	// Files serves stored banners. Optional.
	Files http.Handler
	// Metrics exposes Prometheus metrics at /metrics. Optional.
	Metrics http.Handler
	// Middleware is installed in front of every route.
	Middleware []func(http.Handler) http.Handler
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP holding the advertisement use case, a logger and a chi.Router.
type Handler struct {
	svc      port.AdvertisementUseCase
	logger   *slog.Logger
	validate *validator.Validate
	opts     Options
	router   chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.AdvertisementUseCase, logger *slog.Logger, opts Options) *Handler {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 10 << 20
	}
	if opts.RunTimeout <= 0 {
		opts.RunTimeout = 2 * time.Second
	}
	h := &Handler{
		svc:      svc,
		logger:   logger,
		validate: newValidator(),
		opts:     opts,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)
	r.Use(opts.Middleware...)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/advertisement", h.handleCreate)
		r.Post("/advertisement/run", h.handleRun)
		r.Get("/advertisement/{id:[0-9]+}", h.handleGet)
		r.Post("/advertisement/{id:[0-9]+}", h.handleUpdate)
	})
	if opts.Files != nil {
		prefix := "/" + strings.Trim(opts.FilesPrefix, "/")
		r.Handle(prefix+"/*", http.StripPrefix(prefix, opts.Files))
	}
	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics)
	}
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
