package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFormat represents available log formats
type LogFormat int

const (
	FormatJSON LogFormat = iota
	FormatConsole
	FormatText
)

// String returns string representation of LogFormat
func (lf LogFormat) String() string {
	switch lf {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	default:
		return "console"
	}
}

// ParseFormat parses a format name, defaulting to console
func ParseFormat(name string) LogFormat {
	switch name {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	default:
		return FormatConsole
	}
}

// WriterFactory creates log writers based on format
type WriterFactory struct{}

// NewWriterFactory creates a new writer factory
func NewWriterFactory() *WriterFactory {
	return &WriterFactory{}
}

// CreateConsoleWriter creates a console writer
func (wf *WriterFactory) CreateConsoleWriter(format LogFormat) io.Writer {
	return wf.wrapWriter(os.Stderr, format, false)
}

// CreateFileWriter creates a file writer with rotation
func (wf *WriterFactory) CreateFileWriter(config LoggerConfig) io.Writer {
	if err := os.MkdirAll(filepath.Dir(config.FilePath), 0755); err != nil {
		return wf.wrapWriter(os.Stderr, config.Format, true)
	}

	lumberjackLogger := &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSizeMB,
		LocalTime:  true,
		MaxBackups: config.MaxBackups,
	}

	return wf.wrapWriter(lumberjackLogger, config.Format, true)
}

// wrapWriter applies the configured format to a raw writer
func (wf *WriterFactory) wrapWriter(w io.Writer, format LogFormat, noColor bool) io.Writer {
	switch format {
	case FormatJSON:
		return w
	case FormatText:
		return zerolog.ConsoleWriter{Out: w, NoColor: true}
	default:
		return zerolog.ConsoleWriter{Out: w, NoColor: noColor}
	}
}
