package renderer

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/2m24/Compare/internal/models"
	"github.com/rs/zerolog"
)

// Highlight classes injected onto changed segments.
const (
	ClassAdded       = "diff-added"
	ClassRemoved     = "diff-removed"
	ClassModified    = "diff-modified"
	ClassPlaceholder = "diff-placeholder"
)

// HighlightRenderer maps annotated segments to final highlighted markup.
// It never mutates its inputs; highlighted copies are returned instead.
type HighlightRenderer struct {
	logger zerolog.Logger
}

// New creates a new highlight renderer
func New(logger zerolog.Logger) *HighlightRenderer {
	return &HighlightRenderer{
		logger: logger.With().Str("component", "HighlightRenderer").Logger(),
	}
}

// RenderDiffHTML creates the inline HTML representation of a word-level
// diff. Diff text is escaped as literal content, never as further markup.
func RenderDiffHTML(diffs []models.ContentDiff) template.HTML {
	var htmlBuilder strings.Builder
	for _, d := range diffs {
		escapedText := template.HTMLEscapeString(d.Text)

		switch d.Operation {
		case models.DiffInsert:
			htmlBuilder.WriteString(fmt.Sprintf(`<ins style="background:#e6ffe6; text-decoration: none;">%s</ins>`, escapedText))
		case models.DiffDelete:
			htmlBuilder.WriteString(fmt.Sprintf(`<del style="background:#f8d7da; text-decoration: none;">%s</del>`, escapedText))
		case models.DiffEqual:
			htmlBuilder.WriteString(escapedText)
		}
	}
	return template.HTML(htmlBuilder.String())
}

// Highlight returns an annotated copy with WordDiff and HighlightedMarkup
// filled in according to the segment's operation.
func (r *HighlightRenderer) Highlight(seg models.AnnotatedSegment) models.AnnotatedSegment {
	out := seg

	switch seg.Operation {
	case models.OpUnchanged:
		out.HighlightedMarkup = seg.Markup
	case models.OpAdded:
		out.HighlightedMarkup = injectClass(seg.Markup, ClassAdded)
	case models.OpRemoved:
		out.HighlightedMarkup = injectClass(seg.Markup, ClassRemoved)
	case models.OpModified:
		out.WordDiff = RenderDiffHTML(seg.Diffs)
		substituted := substituteText(seg.Markup, seg.Text, string(out.WordDiff))
		out.HighlightedMarkup = injectClass(substituted, ClassModified)
	case models.OpPlaceholder:
		out.HighlightedMarkup = renderPlaceholder(seg)
	default:
		out.HighlightedMarkup = seg.Markup
	}

	return out
}

// HighlightAll highlights a whole annotated sequence in order.
func (r *HighlightRenderer) HighlightAll(segments []models.AnnotatedSegment) []models.AnnotatedSegment {
	out := make([]models.AnnotatedSegment, len(segments))
	for i, seg := range segments {
		out[i] = r.Highlight(seg)
	}
	return out
}

// Join concatenates a sequence's highlighted markup fragments, in order,
// into one displayable markup blob. Used identically for export and for
// on-screen display.
func Join(segments []models.AnnotatedSegment) string {
	fragments := make([]string, len(segments))
	for i, seg := range segments {
		fragments[i] = seg.HighlightedMarkup
	}
	return strings.Join(fragments, "\n")
}

// injectClass injects a change class onto the outermost markup node. When
// the outermost node cannot be identified, the whole fragment is wrapped
// in a generic container carrying the class.
func injectClass(markup, class string) string {
	trimmed := strings.TrimSpace(markup)
	end := strings.Index(trimmed, ">")
	if !strings.HasPrefix(trimmed, "<") || strings.HasPrefix(trimmed, "<!") || end < 0 {
		return fmt.Sprintf(`<div class="%s">%s</div>`, class, markup)
	}

	head := trimmed[:end]
	rest := trimmed[end:]

	if idx := strings.Index(head, `class="`); idx >= 0 {
		insertAt := idx + len(`class="`)
		return head[:insertAt] + class + " " + head[insertAt:] + rest
	}

	if strings.HasSuffix(head, "/") {
		return strings.TrimSuffix(head, "/") + ` class="` + class + `"/` + rest
	}
	return head + ` class="` + class + `"` + rest
}

// substituteText replaces the segment's original text occurrence inside
// its markup with the rendered word-diff markup. Falls back to replacing
// the node's entire inner content when the text cannot be located (e.g.
// when it is split across inline children).
func substituteText(markup, text, diffHTML string) string {
	if markup == "" {
		return diffHTML
	}
	if text != "" {
		if strings.Contains(markup, text) {
			return strings.Replace(markup, text, diffHTML, 1)
		}
		escaped := template.HTMLEscapeString(text)
		if strings.Contains(markup, escaped) {
			return strings.Replace(markup, escaped, diffHTML, 1)
		}
	}

	openEnd := strings.Index(markup, ">")
	closeStart := strings.LastIndex(markup, "<")
	if openEnd >= 0 && closeStart > openEnd {
		return markup[:openEnd+1] + diffHTML + markup[closeStart:]
	}
	return diffHTML
}

// renderPlaceholder renders a neutral stand-in indicating which side the
// real content lives on. Placeholders carry no diff content.
func renderPlaceholder(seg models.AnnotatedSegment) string {
	side := "second"
	if seg.ChangeType == models.ChangePlaceholderRemoved {
		side = "first"
	}
	return fmt.Sprintf(`<div class="%s" data-counterpart="%d">Content present only in the %s document</div>`, ClassPlaceholder, seg.CounterpartID, side)
}
