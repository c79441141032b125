package reporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/2m24/Compare/internal/comparer"
	"github.com/2m24/Compare/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compareFixture(t *testing.T, mode string) *comparer.Comparer {
	t.Helper()
	cfg := config.NewDefaultCompareConfig()
	cfg.Mode = mode
	c, err := comparer.NewComparer(cfg, zerolog.Nop())
	require.NoError(t, err)
	return c
}

func TestGenerateReport_Mutual(t *testing.T) {
	cfg := config.NewDefaultReporterConfig()
	cfg.OutputDir = t.TempDir()

	gen, err := NewHTMLReportGenerator(zerolog.Nop(), cfg)
	require.NoError(t, err)

	result, err := compareFixture(t, "mutual").Compare(
		`<h1>Doc</h1><p>Hello world</p>`,
		`<h1>Doc</h1><p>Hello there</p><p>appendix</p>`,
	)
	require.NoError(t, err)

	path, err := gen.GenerateReport(result, "report.html")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.OutputDir, "report.html"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(content)

	assert.Contains(t, html, cfg.ReportTitle)
	assert.Contains(t, html, "First document")
	assert.Contains(t, html, "Second document")
	assert.Contains(t, html, "MODIFIED")
	assert.Contains(t, html, "ADDED")
	assert.Contains(t, html, "diff-placeholder")
}

func TestGenerateReport_TargetMode(t *testing.T) {
	cfg := config.NewDefaultReporterConfig()
	cfg.OutputDir = t.TempDir()

	gen, err := NewHTMLReportGenerator(zerolog.Nop(), cfg)
	require.NoError(t, err)

	result, err := compareFixture(t, "target").Compare(`<p>A</p>`, `<p>A</p><p>B</p>`)
	require.NoError(t, err)

	path, err := gen.GenerateReport(result, "")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "diff-added")
}

func TestGenerateReport_NilResult(t *testing.T) {
	cfg := config.NewDefaultReporterConfig()
	cfg.OutputDir = t.TempDir()

	gen, err := NewHTMLReportGenerator(zerolog.Nop(), cfg)
	require.NoError(t, err)

	_, err = gen.GenerateReport(nil, "report.html")
	assert.Error(t, err)
}
