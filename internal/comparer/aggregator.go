package comparer

import (
	"github.com/2m24/Compare/internal/models"
	"github.com/rs/zerolog"
)

// tableWidthHeuristic is the fixed width used to infer row/column
// positions for table-change reporting. Positional guesswork, not true
// table-structure awareness.
const tableWidthHeuristic = 10

// Aggregator tallies change counts and builds the detailed per-line report
type Aggregator struct {
	logger zerolog.Logger
}

// NewAggregator creates a new aggregator
func NewAggregator(logger zerolog.Logger) *Aggregator {
	return &Aggregator{
		logger: logger.With().Str("component", "Aggregator").Logger(),
	}
}

// SummarizeTarget tallies changes from the single target-mode sequence.
func (ag *Aggregator) SummarizeTarget(target []models.AnnotatedSegment) models.ChangeSummary {
	summary := models.ChangeSummary{}
	for _, seg := range target {
		switch seg.Operation {
		case models.OpAdded:
			summary.Additions++
		case models.OpRemoved:
			summary.Deletions++
		case models.OpModified:
			summary.Modifications++
		}
	}
	summary.TotalChanges = summary.Additions + summary.Deletions + summary.Modifications
	return summary
}

// SummarizeMutual tallies additions and modifications from the right
// sequence and deletions from the left sequence, so each change is
// counted on exactly one side.
func (ag *Aggregator) SummarizeMutual(left, right []models.AnnotatedSegment) models.ChangeSummary {
	summary := models.ChangeSummary{}
	for _, seg := range right {
		switch seg.Operation {
		case models.OpAdded:
			summary.Additions++
		case models.OpModified:
			summary.Modifications++
		}
	}
	for _, seg := range left {
		if seg.Operation == models.OpRemoved {
			summary.Deletions++
		}
	}
	summary.TotalChanges = summary.Additions + summary.Deletions + summary.Modifications
	return summary
}

// BuildReport builds one report line per aligned index pair, plus the
// auxiliary table and image change listings. Mutual mode only; the two
// sequences must be index-aligned.
func (ag *Aggregator) BuildReport(left, right []models.AnnotatedSegment) *models.DetailedReport {
	report := &models.DetailedReport{
		Lines: make([]models.ReportLine, 0, len(right)),
	}

	for i := range right {
		ls, rs := left[i], right[i]
		status := lineStatus(ls, rs)

		line := models.ReportLine{
			Index:     i,
			Status:    status,
			LeftText:  ls.Text,
			RightText: rs.Text,
		}
		if status == models.LineModified {
			line.DiffHTML = rs.WordDiff
		}
		line.FormatNotes = formatNotes(ls, rs)
		report.Lines = append(report.Lines, line)

		if status == models.LineUnchanged {
			continue
		}
		ag.collectTableChange(report, i, status, ls, rs)
		ag.collectImageChange(report, i, status, ls, rs)
	}

	return report
}

// lineStatus derives the report status from the aligned pair.
func lineStatus(ls, rs models.AnnotatedSegment) models.LineStatus {
	switch {
	case rs.Operation == models.OpPlaceholder:
		return models.LineRemoved
	case rs.Operation == models.OpAdded:
		return models.LineAdded
	case rs.Operation == models.OpModified:
		return models.LineModified
	case ls.Operation == models.OpRemoved:
		return models.LineRemoved
	default:
		return models.LineUnchanged
	}
}

// formatNotes reports style and class attribute inequality as opaque
// flags. Attribute values are not diffed in detail.
func formatNotes(ls, rs models.AnnotatedSegment) []string {
	if ls.Operation == models.OpPlaceholder || rs.Operation == models.OpPlaceholder {
		return nil
	}
	var notes []string
	if ls.Style != rs.Style {
		notes = append(notes, "style changed")
	}
	if ls.ClassName != rs.ClassName {
		notes = append(notes, "class changed")
	}
	return notes
}

// collectTableChange records changed table cells with positions inferred
// from the fixed-width heuristic.
func (ag *Aggregator) collectTableChange(report *models.DetailedReport, index int, status models.LineStatus, ls, rs models.AnnotatedSegment) {
	seg := rs
	if seg.Operation == models.OpPlaceholder {
		seg = ls
	}
	if seg.Kind != models.KindTableCell {
		return
	}
	report.Tables = append(report.Tables, models.TableChange{
		Index:  index,
		Row:    index / tableWidthHeuristic,
		Column: index % tableWidthHeuristic,
		Status: status,
		Text:   seg.Text,
	})
}

// collectImageChange records changed images and standalone media units.
func (ag *Aggregator) collectImageChange(report *models.DetailedReport, index int, status models.LineStatus, ls, rs models.AnnotatedSegment) {
	seg := rs
	if seg.Operation == models.OpPlaceholder {
		seg = ls
	}
	if seg.Kind != models.KindImage && seg.Kind != models.KindMedia {
		return
	}
	report.Images = append(report.Images, models.ImageChange{
		Index:  index,
		Status: status,
		Markup: seg.Markup,
	})
}
