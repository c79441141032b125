package config

// ReporterConfig defines configuration for HTML report generation
type ReporterConfig struct {
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`
	// ReportTitle is the title the generated report carries.
	ReportTitle string `json:"report_title,omitempty" yaml:"report_title,omitempty"`
	// EmbedWordDiffs includes rendered inline word diffs in report lines.
	EmbedWordDiffs bool `json:"embed_word_diffs,omitempty" yaml:"embed_word_diffs,omitempty"`
}

// NewDefaultReporterConfig creates default reporter configuration
func NewDefaultReporterConfig() ReporterConfig {
	return ReporterConfig{
		OutputDir:      DefaultOutputDir,
		ReportTitle:    DefaultReportTitle,
		EmbedWordDiffs: DefaultEmbedWordDiffs,
	}
}
