package comparer

import (
	"time"

	"github.com/2m24/Compare/internal/aligner"
	"github.com/2m24/Compare/internal/common"
	"github.com/2m24/Compare/internal/config"
	"github.com/2m24/Compare/internal/models"
	"github.com/2m24/Compare/internal/renderer"
	"github.com/2m24/Compare/internal/segmenter"
	"github.com/2m24/Compare/internal/worddiff"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
)

// Comparer runs the full comparison pipeline: parse, segment, align,
// highlight and aggregate. Each run operates on freshly parsed,
// exclusively-owned segment sequences; no state is shared across runs.
type Comparer struct {
	segmenter  *segmenter.Segmenter
	aligner    *aligner.Aligner
	renderer   *renderer.HighlightRenderer
	aggregator *Aggregator
	sanitizer  *bluemonday.Policy
	config     config.CompareConfig
	logger     zerolog.Logger
}

// ComparerBuilder provides a fluent interface for creating a Comparer
type ComparerBuilder struct {
	config config.CompareConfig
	logger zerolog.Logger
}

// NewComparerBuilder creates a new builder with default configuration
func NewComparerBuilder() *ComparerBuilder {
	return &ComparerBuilder{
		config: config.NewDefaultCompareConfig(),
		logger: zerolog.Nop(),
	}
}

// WithConfig sets the comparison configuration
func (b *ComparerBuilder) WithConfig(cfg config.CompareConfig) *ComparerBuilder {
	b.config = cfg
	return b
}

// WithLogger sets the logger
func (b *ComparerBuilder) WithLogger(logger zerolog.Logger) *ComparerBuilder {
	b.logger = logger
	return b
}

// Build creates a new Comparer instance
func (b *ComparerBuilder) Build() (*Comparer, error) {
	mode := models.Mode(b.config.Mode)
	if !mode.IsValid() {
		return nil, common.NewValidationError("mode", b.config.Mode, "mode must be 'mutual' or 'target'")
	}
	if b.config.MaxInputSizeMB <= 0 {
		return nil, common.NewValidationError("max_input_size_mb", b.config.MaxInputSizeMB, "max input size must be positive")
	}

	differ := worddiff.NewProcessor(worddiff.DefaultConfig())

	var sanitizer *bluemonday.Policy
	if b.config.SanitizeInput {
		sanitizer = bluemonday.UGCPolicy()
	}

	return &Comparer{
		segmenter:  segmenter.New(b.logger),
		aligner:    aligner.New(differ, b.logger, b.config.LookaheadWindow),
		renderer:   renderer.New(b.logger),
		aggregator: NewAggregator(b.logger),
		sanitizer:  sanitizer,
		config:     b.config,
		logger:     b.logger.With().Str("component", "Comparer").Logger(),
	}, nil
}

// NewComparer creates a Comparer from configuration
func NewComparer(cfg config.CompareConfig, logger zerolog.Logger) (*Comparer, error) {
	return NewComparerBuilder().
		WithConfig(cfg).
		WithLogger(logger).
		Build()
}

// Compare runs one comparison of two raw markup strings and returns the
// aggregate result. Any internal failure aborts the whole comparison;
// partial results are never returned.
func (c *Comparer) Compare(oldMarkup, newMarkup string) (*models.ComparisonResult, error) {
	startTime := time.Now()

	if err := c.validateInputSize(oldMarkup, newMarkup); err != nil {
		return nil, err
	}

	if c.sanitizer != nil {
		oldMarkup = c.sanitizer.Sanitize(oldMarkup)
		newMarkup = c.sanitizer.Sanitize(newMarkup)
	}

	mode := models.Mode(c.config.Mode)
	opts := segmenter.Options{IncludeMediaUnits: mode == models.ModeMutual}

	leftSegments, err := c.segmenter.Segment(oldMarkup, opts)
	if err != nil {
		return nil, common.NewParseError("first", "segmentation failed", err)
	}
	rightSegments, err := c.segmenter.Segment(newMarkup, opts)
	if err != nil {
		return nil, common.NewParseError("second", "segmentation failed", err)
	}

	result := &models.ComparisonResult{Mode: mode}

	switch mode {
	case models.ModeTargetOnly:
		target := c.aligner.AlignTarget(leftSegments, rightSegments)
		result.Target = c.renderer.HighlightAll(target)
		result.Summary = c.aggregator.SummarizeTarget(result.Target)
	case models.ModeMutual:
		left, right := c.aligner.AlignMutual(leftSegments, rightSegments)
		result.Left = c.renderer.HighlightAll(left)
		result.Right = c.renderer.HighlightAll(right)
		result.Summary = c.aggregator.SummarizeMutual(result.Left, result.Right)
		result.Report = c.aggregator.BuildReport(result.Left, result.Right)
	default:
		return nil, common.NewComparisonError("alignment", common.NewValidationError("mode", c.config.Mode, "unknown mode"))
	}

	result.ProcessingTimeMs = time.Since(startTime).Milliseconds()
	c.logger.Info().
		Str("mode", string(mode)).
		Int("additions", result.Summary.Additions).
		Int("deletions", result.Summary.Deletions).
		Int("modifications", result.Summary.Modifications).
		Int64("duration_ms", result.ProcessingTimeMs).
		Msg("Comparison completed")

	return result, nil
}

// validateInputSize rejects documents larger than the configured limit
func (c *Comparer) validateInputSize(oldMarkup, newMarkup string) error {
	maxBytes := c.config.MaxInputSizeMB * 1024 * 1024
	if len(oldMarkup) > maxBytes {
		return common.NewValidationError("old_markup", len(oldMarkup), "first document exceeds the size limit")
	}
	if len(newMarkup) > maxBytes {
		return common.NewValidationError("new_markup", len(newMarkup), "second document exceeds the size limit")
	}
	return nil
}

// Outcome delivers the result or failure of a deferred comparison.
type Outcome struct {
	Result *models.ComparisonResult
	Err    error
}

// CompareAsync runs the synchronous comparison in a separate goroutine so
// a calling UI thread is not blocked, and returns a channel delivering the
// single outcome. The computation never suspends mid-algorithm and cannot
// be cancelled once started; callers issuing overlapping requests must
// discard stale outcomes themselves.
func (c *Comparer) CompareAsync(oldMarkup, newMarkup string) <-chan Outcome {
	ch := make(chan Outcome, 1)
	go func() {
		defer close(ch)
		result, err := c.Compare(oldMarkup, newMarkup)
		ch <- Outcome{Result: result, Err: err}
	}()
	return ch
}
