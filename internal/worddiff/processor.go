package worddiff

import (
	"github.com/2m24/Compare/internal/models"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Config controls the diffing behavior
type Config struct {
	// CheckLines enables the line-mode speedup of the underlying algorithm.
	// Disabled for word-level diffs; segment texts are short.
	CheckLines bool
	// SemanticCleanup merges small fragmented edits into larger, more
	// legible runs at some cost to minimality.
	SemanticCleanup bool
}

// DefaultConfig returns the default diff configuration
func DefaultConfig() Config {
	return Config{
		CheckLines:      false,
		SemanticCleanup: true,
	}
}

// Processor computes character-level diffs between two text strings
type Processor struct {
	dmp    *diffmatchpatch.DiffMatchPatch
	config Config
}

// NewProcessor creates a new diff processor
func NewProcessor(config Config) *Processor {
	return &Processor{
		dmp:    diffmatchpatch.New(),
		config: config,
	}
}

// Diff generates the diff sequence between two text strings. Concatenating
// the equal+delete runs reconstructs text1; equal+insert runs reconstruct
// text2. Empty and fully disjoint inputs are valid.
func (p *Processor) Diff(text1, text2 string) []models.ContentDiff {
	diffs := p.dmp.DiffMain(text1, text2, p.config.CheckLines)

	if p.config.SemanticCleanup {
		diffs = p.dmp.DiffCleanupSemantic(diffs)
	}

	return convertDiffs(diffs)
}

// convertDiffs maps the library's diff records onto the rendering-agnostic model
func convertDiffs(diffs []diffmatchpatch.Diff) []models.ContentDiff {
	result := make([]models.ContentDiff, 0, len(diffs))
	for _, d := range diffs {
		result = append(result, models.ContentDiff{
			Operation: convertOperation(d.Type),
			Text:      d.Text,
		})
	}
	return result
}

func convertOperation(op diffmatchpatch.Operation) models.DiffOperation {
	switch op {
	case diffmatchpatch.DiffInsert:
		return models.DiffInsert
	case diffmatchpatch.DiffDelete:
		return models.DiffDelete
	default:
		return models.DiffEqual
	}
}
