package segmenter

import (
	"testing"

	"github.com/2m24/Compare/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmenter_Segment_EmptyInput(t *testing.T) {
	sg := New(zerolog.Nop())

	segments, err := sg.Segment("", Options{})

	require.NoError(t, err)
	assert.Empty(t, segments)

	segments, err = sg.Segment("   \n\t  ", Options{})
	require.NoError(t, err)
	assert.Empty(t, segments)
}

func TestSegmenter_Segment_DocumentOrder(t *testing.T) {
	sg := New(zerolog.Nop())
	markup := `<h1>Title</h1><p>First paragraph</p><blockquote>A quote</blockquote><pre>code</pre>`

	segments, err := sg.Segment(markup, Options{})

	require.NoError(t, err)
	require.Len(t, segments, 4)

	assert.Equal(t, models.KindHeading, segments[0].Kind)
	assert.Equal(t, "Title", segments[0].Text)
	assert.Equal(t, models.KindParagraph, segments[1].Kind)
	assert.Equal(t, models.KindQuote, segments[2].Kind)
	assert.Equal(t, models.KindPreformatted, segments[3].Kind)

	for i, seg := range segments {
		assert.Equal(t, i, seg.ID, "ids must increase in document order")
	}
}

func TestSegmenter_Segment_SkipsEmptyWrappers(t *testing.T) {
	sg := New(zerolog.Nop())
	markup := `<div></div><div>   </div><p>content</p>`

	segments, err := sg.Segment(markup, Options{})

	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Equal(t, "content", segments[0].Text)
}

func TestSegmenter_Segment_KeepsEmptyMedia(t *testing.T) {
	sg := New(zerolog.Nop())
	markup := `<p>before</p><img src="photo.png"><p>after</p>`

	segments, err := sg.Segment(markup, Options{})

	require.NoError(t, err)
	require.Len(t, segments, 3)
	assert.Equal(t, models.KindImage, segments[1].Kind)
	assert.Empty(t, segments[1].Text)
	assert.Contains(t, segments[1].Markup, "photo.png")
}

func TestSegmenter_Segment_NestedNodesEmittedIndependently(t *testing.T) {
	sg := New(zerolog.Nop())
	markup := `<table><tr><td>cell</td></tr></table>`

	segments, err := sg.Segment(markup, Options{})

	require.NoError(t, err)
	require.Len(t, segments, 3)
	assert.Equal(t, models.KindTable, segments[0].Kind)
	assert.Equal(t, models.KindTableRow, segments[1].Kind)
	assert.Equal(t, models.KindTableCell, segments[2].Kind)
	assert.Equal(t, "cell", segments[2].Text)
}

func TestSegmenter_Segment_ListItems(t *testing.T) {
	sg := New(zerolog.Nop())
	markup := `<ul><li>one</li><li>two</li></ul>`

	segments, err := sg.Segment(markup, Options{})

	require.NoError(t, err)
	require.Len(t, segments, 2)
	assert.Equal(t, models.KindListItem, segments[0].Kind)
	assert.Equal(t, "one", segments[0].Text)
	assert.Equal(t, "two", segments[1].Text)
}

func TestSegmenter_Segment_FormattingAttributes(t *testing.T) {
	sg := New(zerolog.Nop())
	markup := `<p style="color: red" class="lead">styled</p>`

	segments, err := sg.Segment(markup, Options{})

	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Equal(t, "color: red", segments[0].Style)
	assert.Equal(t, "lead", segments[0].ClassName)
}

func TestSegmenter_Segment_MediaPass(t *testing.T) {
	sg := New(zerolog.Nop())
	markup := `<p>above</p><hr><p>below</p>`

	withoutMedia, err := sg.Segment(markup, Options{})
	require.NoError(t, err)
	require.Len(t, withoutMedia, 2)

	withMedia, err := sg.Segment(markup, Options{IncludeMediaUnits: true})
	require.NoError(t, err)
	require.Len(t, withMedia, 3)
	assert.Equal(t, models.KindMedia, withMedia[1].Kind)
	assert.Equal(t, "hr", withMedia[1].TagName)
}

func TestSegmenter_Segment_Deterministic(t *testing.T) {
	sg := New(zerolog.Nop())
	markup := `<h2>Section</h2><p>body text</p><ul><li>item</li></ul>`

	first, err := sg.Segment(markup, Options{})
	require.NoError(t, err)
	second, err := sg.Segment(markup, Options{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSegmenter_Segment_PermissiveParsing(t *testing.T) {
	sg := New(zerolog.Nop())
	// Unclosed tags and stray markup are tolerated.
	markup := `<p>unclosed <b>bold<p>second`

	segments, err := sg.Segment(markup, Options{})

	require.NoError(t, err)
	assert.NotEmpty(t, segments)
}
