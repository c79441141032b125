package segmenter

import (
	"strings"

	"github.com/2m24/Compare/internal/common"
	"github.com/2m24/Compare/internal/models"
	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

// blockSelector matches the fixed allow-list of block and media tags that
// become alignment segments: heading levels 1-6, paragraph, list item,
// table cell and header cell, generic block container, quote,
// preformatted, image, table and table row.
const blockSelector = "h1, h2, h3, h4, h5, h6, p, li, td, th, div, blockquote, pre, img, table, tr"

// mediaSelector extends the allow-list with horizontal rules collected as
// standalone media units in the secondary pass.
const mediaSelector = blockSelector + ", hr"

// Options controls segmentation behavior
type Options struct {
	// IncludeMediaUnits also collects horizontal rules as standalone
	// media segments. Used in mutual mode.
	IncludeMediaUnits bool
}

// Segmenter converts a tagged content tree into an ordered segment sequence
type Segmenter struct {
	logger zerolog.Logger
}

// New creates a new segmenter
func New(logger zerolog.Logger) *Segmenter {
	return &Segmenter{
		logger: logger.With().Str("component", "Segmenter").Logger(),
	}
}

// Segment parses markup into an ordered sequence of content segments.
// Empty input yields zero segments. Parsing is permissive; only truly
// unprocessable input produces an error. The function is pure and
// deterministic: identical input always yields an identical sequence.
func (sg *Segmenter) Segment(markup string, opts Options) ([]models.Segment, error) {
	if strings.TrimSpace(markup) == "" {
		return []models.Segment{}, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, common.WrapError(err, "cannot interpret markup as a content tree")
	}

	selector := blockSelector
	if opts.IncludeMediaUnits {
		selector = mediaSelector
	}

	segments := make([]models.Segment, 0, 16)
	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		segment, ok := sg.buildSegment(len(segments), sel)
		if !ok {
			return
		}
		segments = append(segments, segment)
	})

	sg.logger.Debug().Int("segments", len(segments)).Msg("Segmented document")
	return segments, nil
}

// buildSegment converts one visited node into a segment. Nodes with empty
// trimmed text are skipped unless they are media-like, so empty wrapper
// containers do not pollute the alignment.
func (sg *Segmenter) buildSegment(id int, sel *goquery.Selection) (models.Segment, bool) {
	tagName := strings.ToLower(goquery.NodeName(sel))
	text := strings.TrimSpace(sel.Text())
	kind := models.KindForTag(tagName)

	segment := models.Segment{
		ID:      id,
		Kind:    kind,
		TagName: tagName,
		Text:    text,
	}

	if text == "" && !segment.IsMediaLike() {
		return models.Segment{}, false
	}

	markup, err := goquery.OuterHtml(sel)
	if err != nil {
		sg.logger.Warn().Err(err).Str("tag", tagName).Msg("Failed to serialize segment markup")
		markup = ""
	}
	segment.Markup = markup
	segment.Style, _ = sel.Attr("style")
	segment.ClassName, _ = sel.Attr("class")

	return segment, true
}
