package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindForTag(t *testing.T) {
	assert.Equal(t, KindHeading, KindForTag("h1"))
	assert.Equal(t, KindHeading, KindForTag("H3"))
	assert.Equal(t, KindParagraph, KindForTag("p"))
	assert.Equal(t, KindTableCell, KindForTag("th"))
	assert.Equal(t, KindMedia, KindForTag("hr"))
	assert.Equal(t, KindText, KindForTag("span"))
}

func TestSegment_Matches(t *testing.T) {
	a := Segment{TagName: "p", Text: "hello"}

	assert.True(t, a.Matches(Segment{TagName: "p", Text: "hello"}))
	assert.False(t, a.Matches(Segment{TagName: "h1", Text: "hello"}))
	assert.False(t, a.Matches(Segment{TagName: "p", Text: "goodbye"}))

	// Formatting attributes never participate in identity.
	styled := Segment{TagName: "p", Text: "hello", Style: "color: red", ClassName: "lead"}
	assert.True(t, a.Matches(styled))
}

func TestDiffReconstruction(t *testing.T) {
	diffs := []ContentDiff{
		{Operation: DiffEqual, Text: "Hello "},
		{Operation: DiffDelete, Text: "world"},
		{Operation: DiffInsert, Text: "there"},
	}

	assert.Equal(t, "Hello world", LeftText(diffs))
	assert.Equal(t, "Hello there", RightText(diffs))
}

func TestNewPlaceholder(t *testing.T) {
	real := Segment{ID: 4, Kind: KindParagraph, TagName: "p", Text: "content"}

	ph := NewPlaceholder(real, ChangePlaceholderRemoved)

	assert.Equal(t, OpPlaceholder, ph.Operation)
	assert.Equal(t, ChangePlaceholderRemoved, ph.ChangeType)
	assert.Equal(t, 4, ph.CounterpartID)
	assert.Empty(t, ph.Text)
}

func TestMode_IsValid(t *testing.T) {
	assert.True(t, ModeMutual.IsValid())
	assert.True(t, ModeTargetOnly.IsValid())
	assert.False(t, Mode("diagonal").IsValid())
}
