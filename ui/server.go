// Package ui is the web surface: a single input page, the summary and plot
// endpoints, and the methodology notes.
package ui

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"statclass/adapters/excel"
	"statclass/domain/sample"
	"statclass/internal"
	"statclass/internal/config"
	"statclass/internal/distplot"
	"statclass/internal/errors"
)

//go:embed templates/* static/* docs/*
var embeddedFiles embed.FS

// Server is the gin-based web application
type Server struct {
	router    *gin.Engine
	templates *template.Template
	plotOpts  distplot.Options
	reader    *excel.SampleReader
	logger    *internal.Logger

	// demoValues prefills the input box when a demo dataset is configured
	demoValues string
}

// NewServer wires the web application from configuration
func NewServer(cfg *config.Config, logger *internal.Logger) (*Server, error) {
	funcMap := template.FuncMap{
		"fmtFloat": func(v float64) string {
			return strconv.FormatFloat(v, 'g', -1, 64)
		},
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse templates")
	}

	s := &Server{
		router:    gin.Default(),
		templates: templates,
		plotOpts: distplot.Options{
			PanelWidth:  cfg.Plot.Width,
			PanelHeight: cfg.Plot.Height,
			Bins:        cfg.Plot.Bins,
			KDEPoints:   cfg.Plot.KDEPoints,
		},
		reader: excel.NewSampleReader(cfg.Data.ExcelColumn),
		logger: logger,
	}

	if cfg.Data.ExcelFile != "" {
		s.loadDemoDataset(cfg.Data.ExcelFile)
	}

	s.setupRoutes()
	return s, nil
}

// loadDemoDataset prefills the input box from a configured workbook. A
// broken demo file is logged and skipped, never fatal.
func (s *Server) loadDemoDataset(path string) {
	demo, err := s.reader.ReadFile(path)
	if err != nil {
		s.logger.Warn("demo dataset %s not loaded: %v", path, err)
		return
	}
	tokens := make([]string, len(demo))
	for i, v := range demo {
		tokens[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	s.demoValues = strings.Join(tokens, ",")
	s.logger.Info("demo dataset loaded from %s (%d values)", path, len(demo))
}

func (s *Server) setupRoutes() {
	staticFS, _ := fs.Sub(embeddedFiles, "static")
	s.router.StaticFS("/static", http.FS(staticFS))

	s.router.GET("/", s.handleIndex)
	s.router.GET("/methodology", s.handleMethodology)

	api := s.router.Group("/api")
	api.POST("/summary", s.handleSummary)
	api.GET("/plot.png", s.handlePlot)
	api.POST("/datasets/upload", s.handleUpload)
	api.GET("/samplesize", s.handleSampleSize)
}

// Start runs the HTTP server on the given address
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}

// Router exposes the gin engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Header("Content-Type", "text/html")
	err := s.templates.ExecuteTemplate(c.Writer, "index.html", gin.H{
		"Title":      "Statistics",
		"DemoValues": s.demoValues,
	})
	if err != nil {
		s.logger.Error("index render failed: %v", err)
		c.String(http.StatusInternalServerError, "template error")
	}
}

// parsePlotSample reads the values query parameter shared by the plot
// endpoint and the fragment image URLs
func parsePlotSample(c *gin.Context) (sample.Sample, error) {
	raw := c.Query("values")
	return sample.Parse(raw)
}

func (s *Server) handlePlot(c *gin.Context) {
	smpl, err := parsePlotSample(c)
	if err != nil {
		s.respondError(c, err)
		return
	}
	data, err := distplot.Render(smpl, s.plotOpts)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", data)
}

// respondError maps an AppError to a structured JSON failure. Nothing is
// recovered and no fallback values are substituted; the caller is expected
// to show the message and stop.
func (s *Server) respondError(c *gin.Context, err error) {
	status := errors.HTTPStatus(err)
	s.logger.Debug("request failed: %s (%s)", err.Error(), errors.GetCode(err))

	if c.GetHeader("HX-Request") == "true" {
		c.Header("Content-Type", "text/html")
		c.String(status, `<div class="error">%s</div>`, template.HTMLEscapeString(err.Error()))
		return
	}
	c.JSON(status, gin.H{
		"code":  errors.GetCode(err),
		"error": err.Error(),
	})
}

func boolQueryOrForm(c *gin.Context, key string, fallback bool) bool {
	raw := c.Query(key)
	if raw == "" {
		raw = c.PostForm(key)
	}
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return parsed
}

func floatQuery(c *gin.Context, key string) (float64, error) {
	return parseFloatParam(c.Query(key), key)
}
