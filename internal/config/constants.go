package config

// Default values for configuration sections.
const (
	DefaultMode            = "mutual"
	DefaultLookaheadWindow = 0 // 0 scans to the end of the remaining sequence
	DefaultMaxInputSizeMB  = 10
	DefaultSanitizeInput   = false

	DefaultOutputDir      = "reports"
	DefaultReportTitle    = "Document Comparison Report"
	DefaultEmbedWordDiffs = true

	DefaultLogFile       = ""
	DefaultLogFormat     = "console"
	DefaultLogLevel      = "info"
	DefaultMaxLogBackups = 3
	DefaultMaxLogSizeMB  = 100
)

// ConfigEnvVar is the environment variable consulted for the config file
// path when no flag is given.
const ConfigEnvVar = "COMPAREC_CONFIG_PATH"
