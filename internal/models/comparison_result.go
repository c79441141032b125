package models

import "html/template"

// Mode selects the alignment variant.
type Mode string

const (
	// ModeTargetOnly emits one annotated sequence for the second document only.
	ModeTargetOnly Mode = "target"
	// ModeMutual emits two length-matched annotated sequences with placeholders.
	ModeMutual Mode = "mutual"
)

// IsValid reports whether the mode is a known alignment variant.
func (m Mode) IsValid() bool {
	return m == ModeTargetOnly || m == ModeMutual
}

// ChangeSummary tallies changes by category across a comparison run.
type ChangeSummary struct {
	Additions     int `json:"additions"`
	Deletions     int `json:"deletions"`
	Modifications int `json:"modifications"`
	TotalChanges  int `json:"total_changes"`
}

// LineStatus labels one aligned report line.
type LineStatus string

const (
	LineUnchanged LineStatus = "UNCHANGED"
	LineAdded     LineStatus = "ADDED"
	LineRemoved   LineStatus = "REMOVED"
	LineModified  LineStatus = "MODIFIED"
)

// ReportLine is one detailed-report entry for an aligned index pair.
type ReportLine struct {
	Index       int           `json:"index"`
	Status      LineStatus    `json:"status"`
	LeftText    string        `json:"left_text"`
	RightText   string        `json:"right_text"`
	DiffHTML    template.HTML `json:"diff_html,omitempty"`
	FormatNotes []string      `json:"format_notes,omitempty"`
}

// TableChange records a changed table cell. Row and column are inferred
// from a fixed-width positional heuristic, not from true table structure.
type TableChange struct {
	Index  int        `json:"index"`
	Row    int        `json:"row"`
	Column int        `json:"column"`
	Status LineStatus `json:"status"`
	Text   string     `json:"text"`
}

// ImageChange records a changed image or standalone media unit.
type ImageChange struct {
	Index  int        `json:"index"`
	Status LineStatus `json:"status"`
	Markup string     `json:"markup"`
}

// DetailedReport is the per-line change report built in mutual mode.
type DetailedReport struct {
	Lines  []ReportLine  `json:"lines"`
	Tables []TableChange `json:"tables,omitempty"`
	Images []ImageChange `json:"images,omitempty"`
}

// ComparisonResult is the aggregate output of one comparison run.
// Target holds the single annotated sequence in target-only mode; Left
// and Right hold the two index-aligned sequences in mutual mode.
type ComparisonResult struct {
	Mode             Mode               `json:"mode"`
	Summary          ChangeSummary      `json:"summary"`
	Target           []AnnotatedSegment `json:"target,omitempty"`
	Left             []AnnotatedSegment `json:"left,omitempty"`
	Right            []AnnotatedSegment `json:"right,omitempty"`
	Report           *DetailedReport    `json:"report,omitempty"`
	ProcessingTimeMs int64              `json:"processing_time_ms"`
}

// IsIdentical reports whether the run found no changes at all.
func (r *ComparisonResult) IsIdentical() bool {
	return r.Summary.TotalChanges == 0
}
