package reporter

import (
	"embed"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/2m24/Compare/internal/common"
	"github.com/2m24/Compare/internal/config"
	"github.com/2m24/Compare/internal/models"
	"github.com/2m24/Compare/internal/renderer"
	"github.com/rs/zerolog"
)

//go:embed templates/*
var templateFS embed.FS

const reportTemplateName = "compare_report.html.tmpl"

// HTMLReportGenerator creates HTML reports for comparison results
type HTMLReportGenerator struct {
	logger   zerolog.Logger
	config   config.ReporterConfig
	template *template.Template
}

// NewHTMLReportGenerator creates a new report generator with the embedded template
func NewHTMLReportGenerator(logger zerolog.Logger, cfg config.ReporterConfig) (*HTMLReportGenerator, error) {
	tmpl, err := template.New("").Funcs(templateFunctions()).ParseFS(templateFS, "templates/"+reportTemplateName)
	if err != nil {
		return nil, common.WrapError(err, "failed to parse HTML report template")
	}

	return &HTMLReportGenerator{
		logger:   logger.With().Str("component", "HTMLReportGenerator").Logger(),
		config:   cfg,
		template: tmpl,
	}, nil
}

// reportData is the template payload
type reportData struct {
	Title       string
	GeneratedAt string
	Result      *models.ComparisonResult
	LeftHTML    template.HTML
	RightHTML   template.HTML
	TargetHTML  template.HTML
	EmbedDiffs  bool
}

// GenerateReport renders the comparison result into an HTML file under
// the configured output directory and returns the file path.
func (g *HTMLReportGenerator) GenerateReport(result *models.ComparisonResult, fileName string) (string, error) {
	if result == nil {
		return "", common.NewValidationError("result", result, "comparison result cannot be nil")
	}
	if fileName == "" {
		fileName = "compare_report.html"
	}

	if err := os.MkdirAll(g.config.OutputDir, 0755); err != nil {
		return "", common.WrapError(err, "failed to create report output directory")
	}

	data := reportData{
		Title:       g.config.ReportTitle,
		GeneratedAt: time.Now().Format(time.RFC1123),
		Result:      result,
		EmbedDiffs:  g.config.EmbedWordDiffs,
	}
	switch result.Mode {
	case models.ModeMutual:
		data.LeftHTML = template.HTML(renderer.Join(result.Left))
		data.RightHTML = template.HTML(renderer.Join(result.Right))
	case models.ModeTargetOnly:
		data.TargetHTML = template.HTML(renderer.Join(result.Target))
	}

	outputPath := filepath.Join(g.config.OutputDir, fileName)
	file, err := os.Create(outputPath)
	if err != nil {
		return "", common.WrapError(err, "failed to create report file")
	}
	defer file.Close()

	if err := g.template.ExecuteTemplate(file, reportTemplateName, data); err != nil {
		return "", common.WrapError(err, "failed to execute report template")
	}

	g.logger.Info().Str("path", outputPath).Msg("HTML report generated")
	return outputPath, nil
}
