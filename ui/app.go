// Package ui is the dashboard's presentation shell: a chi router over the
// evaluation pipeline, rendering an embedded html/template page plus the
// chart, export and upload endpoints.
package ui

import (
	"embed"
	"fmt"
	"html/template"
	"math"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"salescope/app"
	"salescope/internal"
)

//go:embed templates/*
var embeddedFiles embed.FS

// App represents the UI application
type App struct {
	router    *chi.Mux
	pipeline  *app.Pipeline
	templates *template.Template
	logger    *internal.Logger

	maxUploadBytes int64

	// Single-session upload state. A new upload supersedes the previous one;
	// clearing falls back to the synthetic sample.
	mu       sync.RWMutex
	upload   []byte
	filename string
}

// Config holds UI application configuration
type Config struct {
	Port           string
	MaxUploadBytes int64
}

// NewApp creates a new UI application around an evaluation pipeline.
func NewApp(config Config, pipeline *app.Pipeline, logger *internal.Logger) (*App, error) {
	if logger == nil {
		logger = internal.DefaultLogger
	}

	funcMap := template.FuncMap{
		"fmt2": func(v float64) string {
			if math.IsNaN(v) {
				return "N/A"
			}
			return fmt.Sprintf("%.2f", v)
		},
		"fmt4": func(v float64) string {
			if math.IsNaN(v) {
				return "N/A"
			}
			return fmt.Sprintf("%.4f", v)
		},
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	a := &App{
		router:         chi.NewRouter(),
		pipeline:       pipeline,
		templates:      templates,
		logger:         logger,
		maxUploadBytes: config.MaxUploadBytes,
	}

	a.setupMiddleware()
	a.setupRoutes()

	return a, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Post("/upload", a.handleUpload)
	a.router.Post("/clear", a.handleClear)
	a.router.Get("/export.csv", a.handleExport)
	a.router.Get("/charts/{name}.png", a.handleChart)
}

// Router exposes the configured handler, mostly for tests.
func (a *App) Router() http.Handler {
	return a.router
}

// Start starts the HTTP server
func (a *App) Start(addr string) error {
	a.logger.Info("Starting salescope UI server on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// Template helpers
func (a *App) renderTemplate(w http.ResponseWriter, templateName string, data interface{}) {
	w.Header().Set("Content-Type", "text/html")
	if err := a.templates.ExecuteTemplate(w, templateName, data); err != nil {
		a.logger.Error("Template error: %v", err)
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}
