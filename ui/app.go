package ui

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"statclass/domain/sample"
	"statclass/internal"
	"statclass/internal/describe"
	"statclass/internal/distplot"
	"statclass/internal/errors"
)

// App is the lightweight chi-based variant of the UI, served by cmd/ui. It
// exposes the same core over plain JSON without the HTMX page machinery.
type App struct {
	router    *chi.Mux
	templates *template.Template
	plotOpts  distplot.Options
	logger    *internal.Logger
	port      string
}

// AppConfig holds the lightweight UI configuration
type AppConfig struct {
	Port string
}

// NewApp creates the lightweight UI application
func NewApp(config AppConfig) (*App, error) {
	templates, err := template.New("").Funcs(template.FuncMap{
		"fmtFloat": func(v float64) string { return fmt.Sprintf("%g", v) },
	}).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	app := &App{
		router:    chi.NewRouter(),
		templates: templates,
		plotOpts:  distplot.DefaultOptions(),
		logger:    internal.DefaultLogger,
		port:      config.Port,
	}
	app.setupMiddleware()
	app.setupRoutes()
	return app, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	staticFS := http.FileServer(http.FS(embeddedFiles))
	a.router.Handle("/static/*", staticFS)
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Post("/api/summary", a.handleSummary)
	a.router.Get("/api/plot.png", a.handlePlot)
	a.router.Get("/api/samplesize", a.handleSampleSize)
}

// Start runs the app on the configured port
func (a *App) Start() error {
	return http.ListenAndServe(":"+a.port, a.router)
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	if err := a.templates.ExecuteTemplate(w, "index.html", map[string]string{
		"Title": "Statistics",
	}); err != nil {
		a.logger.Error("index render failed: %v", err)
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

func (a *App) handleSummary(w http.ResponseWriter, r *http.Request) {
	smpl, err := sample.Parse(r.FormValue("values"))
	if err != nil {
		a.respondError(w, err)
		return
	}
	classify := r.FormValue("classify") != "false"
	rec, err := describe.Summarize(smpl, classify)
	if err != nil {
		a.respondError(w, err)
		return
	}
	a.respondJSON(w, http.StatusOK, map[string]interface{}{
		"analysis_id": uuid.NewString(),
		"sample_size": len(smpl),
		"summary":     rec,
	})
}

func (a *App) handlePlot(w http.ResponseWriter, r *http.Request) {
	smpl, err := sample.Parse(r.URL.Query().Get("values"))
	if err != nil {
		a.respondError(w, err)
		return
	}
	data, err := distplot.Render(smpl, a.plotOpts)
	if err != nil {
		a.respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		a.logger.Error("plot write failed: %v", err)
	}
}

func (a *App) handleSampleSize(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := make(map[string]float64, 4)
	for _, key := range []string{"confidence", "p", "error", "population"} {
		v, err := parseFloatParam(q.Get(key), key)
		if err != nil {
			a.respondError(w, err)
			return
		}
		params[key] = v
	}

	n, err := describe.SampleSize(params["confidence"], params["p"], params["error"], params["population"])
	if err != nil {
		a.respondError(w, err)
		return
	}
	a.respondJSON(w, http.StatusOK, map[string]int{"n": n})
}

func (a *App) respondError(w http.ResponseWriter, err error) {
	a.respondJSON(w, errors.HTTPStatus(err), map[string]string{
		"code":  errors.GetCode(err),
		"error": err.Error(),
	})
}

func (a *App) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.logger.Error("response encoding failed: %v", err)
	}
}
