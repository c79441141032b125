package models

import "strings"

// SegmentKind is the semantic category of a content segment.
type SegmentKind string

const (
	KindHeading      SegmentKind = "heading"
	KindParagraph    SegmentKind = "paragraph"
	KindListItem     SegmentKind = "list-item"
	KindTableCell    SegmentKind = "table-cell"
	KindTable        SegmentKind = "table"
	KindTableRow     SegmentKind = "table-row"
	KindImage        SegmentKind = "image"
	KindQuote        SegmentKind = "quote"
	KindPreformatted SegmentKind = "preformatted"
	KindBlock        SegmentKind = "block"
	KindMedia        SegmentKind = "media"
	KindText         SegmentKind = "text"
)

// kindByTag maps lower-cased tag names to their segment kind.
var kindByTag = map[string]SegmentKind{
	"h1":         KindHeading,
	"h2":         KindHeading,
	"h3":         KindHeading,
	"h4":         KindHeading,
	"h5":         KindHeading,
	"h6":         KindHeading,
	"p":          KindParagraph,
	"li":         KindListItem,
	"td":         KindTableCell,
	"th":         KindTableCell,
	"div":        KindBlock,
	"blockquote": KindQuote,
	"pre":        KindPreformatted,
	"img":        KindImage,
	"table":      KindTable,
	"tr":         KindTableRow,
	"hr":         KindMedia,
}

// KindForTag returns the segment kind for a tag name, or KindText for
// tags outside the allow-list.
func KindForTag(tagName string) SegmentKind {
	if kind, ok := kindByTag[strings.ToLower(tagName)]; ok {
		return kind
	}
	return KindText
}

// Segment is one content-tree unit treated as an atomic alignment item.
// Text and TagName together are the sole identity used for equality and
// lookahead matching; Style and ClassName are compared only for
// informational format-change detection.
type Segment struct {
	ID        int         `json:"id"`
	Kind      SegmentKind `json:"kind"`
	TagName   string      `json:"tag_name"`
	Text      string      `json:"text"`
	Markup    string      `json:"markup"`
	Style     string      `json:"style,omitempty"`
	ClassName string      `json:"class_name,omitempty"`
}

// Matches reports whether two segments are identical for alignment
// purposes (same trimmed text and same tag name).
func (s Segment) Matches(other Segment) bool {
	return s.Text == other.Text && s.TagName == other.TagName
}

// IsMediaLike reports whether the segment carries content even with empty
// text (images, tables and table rows).
func (s Segment) IsMediaLike() bool {
	switch s.Kind {
	case KindImage, KindTable, KindTableRow, KindMedia:
		return true
	default:
		return false
	}
}
