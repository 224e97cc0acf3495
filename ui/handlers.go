package ui

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	"github.com/google/uuid"

	"statclass/domain/sample"
	"statclass/domain/summary"
	"statclass/internal/describe"
)

// summaryView is the template model for the rendered analysis fragment
type summaryView struct {
	AnalysisID string
	SampleSize int
	Mean       string
	Median     string
	Mode       string
	StdDev     string
	Pearson    string
	Kurtosis   string
	PlotURL    string
	Spread     *describe.Spread
}

func newSummaryView(id string, smpl sample.Sample, rec summary.Record, raw string) summaryView {
	view := summaryView{
		AnalysisID: id,
		SampleSize: len(smpl),
		Mean:       strconv.FormatFloat(rec.Mean, 'g', -1, 64),
		Median:     strconv.FormatFloat(rec.Median, 'g', -1, 64),
		Mode:       "none",
		StdDev:     strconv.FormatFloat(rec.StdDev, 'g', -1, 64),
		Pearson:    rec.Skewness.String(),
		Kurtosis:   rec.Kurtosis.String(),
		PlotURL:    "/api/plot.png?values=" + url.QueryEscape(raw),
	}
	if rec.Mode != nil {
		view.Mode = strconv.FormatFloat(*rec.Mode, 'g', -1, 64)
	}
	if spread, err := describe.Describe(smpl); err == nil {
		view.Spread = &spread
	}
	return view
}

// handleSummary accepts the submitted value list and answers with the full
// summary record: JSON for API callers, a rendered fragment for HTMX.
func (s *Server) handleSummary(c *gin.Context) {
	raw := c.PostForm("values")
	if raw == "" {
		raw = c.Query("values")
	}
	classify := boolQueryOrForm(c, "classify", true)

	smpl, err := sample.Parse(raw)
	if err != nil {
		s.respondError(c, err)
		return
	}
	rec, err := describe.Summarize(smpl, classify)
	if err != nil {
		s.respondError(c, err)
		return
	}

	analysisID := uuid.NewString()
	s.logger.Info("analysis %s: n=%d classify=%t", analysisID, len(smpl), classify)

	if c.GetHeader("HX-Request") == "true" {
		view := newSummaryView(analysisID, smpl, rec, raw)
		c.Header("Content-Type", "text/html")
		if err := s.templates.ExecuteTemplate(c.Writer, "summary_fragment.html", view); err != nil {
			s.logger.Error("summary fragment render failed: %v", err)
			c.String(http.StatusInternalServerError, "template error")
		}
		return
	}

	response := gin.H{
		"analysis_id": analysisID,
		"sample_size": len(smpl),
		"summary":     rec,
	}
	if spread, err := describe.Describe(smpl); err == nil {
		response["spread"] = spread
	}
	c.JSON(http.StatusOK, response)
}

// handleUpload extracts a numeric column from an uploaded workbook and
// summarizes it like a typed-in sample
func (s *Server) handleUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file upload"})
		return
	}
	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file upload"})
		return
	}
	defer src.Close()

	smpl, err := s.reader.Read(src)
	if err != nil {
		s.respondError(c, err)
		return
	}
	rec, err := describe.Summarize(smpl, boolQueryOrForm(c, "classify", true))
	if err != nil {
		s.respondError(c, err)
		return
	}

	analysisID := uuid.NewString()
	s.logger.Info("analysis %s: n=%d from upload %s", analysisID, len(smpl), file.Filename)

	c.JSON(http.StatusOK, gin.H{
		"analysis_id": analysisID,
		"filename":    file.Filename,
		"sample_size": len(smpl),
		"summary":     rec,
	})
}

// handleSampleSize answers the experiment-planning formula. It is
// independent of any submitted sample.
func (s *Server) handleSampleSize(c *gin.Context) {
	confidence, err := floatQuery(c, "confidence")
	if err != nil {
		s.respondError(c, err)
		return
	}
	p, err := floatQuery(c, "p")
	if err != nil {
		s.respondError(c, err)
		return
	}
	marginErr, err := floatQuery(c, "error")
	if err != nil {
		s.respondError(c, err)
		return
	}
	population, err := floatQuery(c, "population")
	if err != nil {
		s.respondError(c, err)
		return
	}

	n, err := describe.SampleSize(confidence, p, marginErr, population)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"n": n})
}

// handleMethodology renders the embedded methodology notes
func (s *Server) handleMethodology(c *gin.Context) {
	src, err := embeddedFiles.ReadFile("docs/methodology.md")
	if err != nil {
		s.logger.Error("methodology notes missing: %v", err)
		c.String(http.StatusInternalServerError, "methodology notes unavailable")
		return
	}
	rendered := markdown.ToHTML(src, nil, nil)

	c.Header("Content-Type", "text/html")
	err = s.templates.ExecuteTemplate(c.Writer, "methodology.html", gin.H{
		"Title":   "Methodology",
		"Content": templateHTML(rendered),
	})
	if err != nil {
		s.logger.Error("methodology render failed: %v", err)
		c.String(http.StatusInternalServerError, "template error")
	}
}
