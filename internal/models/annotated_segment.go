package models

import "html/template"

// Operation classifies how a segment changed between the two documents.
type Operation string

const (
	OpUnchanged   Operation = "unchanged"
	OpAdded       Operation = "added"
	OpRemoved     Operation = "removed"
	OpModified    Operation = "modified"
	OpPlaceholder Operation = "placeholder"
)

// ChangeType is a finer informational label for a classified segment. It
// does not affect rendering logic beyond choosing a highlight class.
type ChangeType string

const (
	ChangeNone               ChangeType = "none"
	ChangeStructuralAdd      ChangeType = "structural_add"
	ChangeStructuralRemove   ChangeType = "structural_remove"
	ChangeContent            ChangeType = "content_change"
	ChangeReplacement        ChangeType = "replacement"
	ChangePlaceholderAdded   ChangeType = "placeholder_added"
	ChangePlaceholderRemoved ChangeType = "placeholder_removed"
)

// AnnotatedSegment is a segment plus its change classification. It is
// created once per comparison run by the block aligner and never mutated
// afterwards; the renderer produces annotated copies with the highlight
// fields filled in.
type AnnotatedSegment struct {
	Segment
	Operation  Operation  `json:"operation"`
	ChangeType ChangeType `json:"change_type"`
	// Diffs holds the word-level diff ops for modified segments.
	Diffs []ContentDiff `json:"diffs,omitempty"`
	// WordDiff is the rendered inline diff markup for modified segments.
	WordDiff template.HTML `json:"word_diff,omitempty"`
	// HighlightedMarkup is the final markup after highlight-class injection.
	HighlightedMarkup string `json:"highlighted_markup,omitempty"`
	// CounterpartID references the real segment on the opposite side that
	// a placeholder stands in for. -1 when not applicable.
	CounterpartID int `json:"counterpart_id"`
}

// NewPlaceholder creates a synthetic placeholder segment referencing the
// real segment it stands in for on the opposite side.
func NewPlaceholder(counterpart Segment, changeType ChangeType) AnnotatedSegment {
	return AnnotatedSegment{
		Segment: Segment{
			ID:      counterpart.ID,
			Kind:    counterpart.Kind,
			TagName: counterpart.TagName,
			Text:    "",
		},
		Operation:     OpPlaceholder,
		ChangeType:    changeType,
		CounterpartID: counterpart.ID,
	}
}
