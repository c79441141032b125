package models

// DiffOperation defines the type of change within a word-level diff.
type DiffOperation int

const (
	// DiffEqual indicates an unchanged text run.
	DiffEqual DiffOperation = 0
	// DiffInsert indicates an inserted text run.
	DiffInsert DiffOperation = 1
	// DiffDelete indicates a deleted text run.
	DiffDelete DiffOperation = -1
)

// ContentDiff represents a single difference between two text strings.
// A sequence of ContentDiffs reconstructs both inputs: equal+delete runs
// concatenate to the left text, equal+insert runs to the right text.
type ContentDiff struct {
	Operation DiffOperation `json:"operation"`
	Text      string        `json:"text"`
}

// LeftText reconstructs the left-hand input from a diff sequence.
func LeftText(diffs []ContentDiff) string {
	var sb []byte
	for _, d := range diffs {
		if d.Operation == DiffEqual || d.Operation == DiffDelete {
			sb = append(sb, d.Text...)
		}
	}
	return string(sb)
}

// RightText reconstructs the right-hand input from a diff sequence.
func RightText(diffs []ContentDiff) string {
	var sb []byte
	for _, d := range diffs {
		if d.Operation == DiffEqual || d.Operation == DiffInsert {
			sb = append(sb, d.Text...)
		}
	}
	return string(sb)
}
