package aligner

import (
	"github.com/2m24/Compare/internal/models"
	"github.com/2m24/Compare/internal/worddiff"
	"github.com/rs/zerolog"
)

// decision is the closed set of per-step alignment outcomes.
type decision int

const (
	decideUnchanged decision = iota
	decideModified
	decideAdded
	decideRemoved
	decideReplacement
)

// Aligner walks two segment sequences with a pair of read cursors and
// classifies each position. The walk is a heuristic linear scan with
// bounded forward lookahead, not an optimal subsequence solver; alignment
// exactness is traded for linear-time predictability.
type Aligner struct {
	differ *worddiff.Processor
	logger zerolog.Logger
	// lookaheadWindow caps lookahead scans. 0 scans to the sequence end.
	lookaheadWindow int
}

// New creates a new aligner
func New(differ *worddiff.Processor, logger zerolog.Logger, lookaheadWindow int) *Aligner {
	return &Aligner{
		differ:          differ,
		logger:          logger.With().Str("component", "Aligner").Logger(),
		lookaheadWindow: lookaheadWindow,
	}
}

// classify decides the outcome for the current cursor pair. Both cursors
// must be in bounds.
//
// Lookahead runs before the content-edit rule: a pair only becomes a
// content edit when neither current segment has an exact (text, tag)
// match further ahead on the opposite side. Finding the left segment
// later in the right sequence means the intervening right segments are
// additions; finding the right segment later in the left sequence means
// the intervening left segments are removals. The earlier match wins,
// with ties favoring the addition.
func (a *Aligner) classify(left, right []models.Segment, li, ri int) decision {
	ls, rs := left[li], right[ri]

	if ls.Matches(rs) {
		return decideUnchanged
	}

	leftInRight := a.lookahead(right, ri+1, ls)
	rightInLeft := a.lookahead(left, li+1, rs)

	switch {
	case leftInRight > 0 && (rightInLeft == 0 || leftInRight <= rightInLeft):
		return decideAdded
	case rightInLeft > 0:
		return decideRemoved
	case ls.TagName == rs.TagName:
		// Tag equality is sufficient to treat the pair as a content
		// edit even when the texts are unrelated.
		return decideModified
	default:
		return decideReplacement
	}
}

// lookahead searches seq starting at from for a segment matching target
// exactly on (text, tagName). It returns the 1-based offset of the match,
// or 0 when none exists within the window.
func (a *Aligner) lookahead(seq []models.Segment, from int, target models.Segment) int {
	end := len(seq)
	if a.lookaheadWindow > 0 && from+a.lookaheadWindow < end {
		end = from + a.lookaheadWindow
	}
	for i := from; i < end; i++ {
		if seq[i].Matches(target) {
			return i - from + 1
		}
	}
	return 0
}

// AlignTarget emits one annotated sequence for the right (target)
// document only. Removed left-side content with no right counterpart is
// not represented in the output.
func (a *Aligner) AlignTarget(left, right []models.Segment) []models.AnnotatedSegment {
	out := make([]models.AnnotatedSegment, 0, len(right))
	li, ri := 0, 0

	for ri < len(right) {
		if li >= len(left) {
			out = append(out, annotate(right[ri], models.OpAdded, models.ChangeStructuralAdd))
			ri++
			continue
		}

		switch a.classify(left, right, li, ri) {
		case decideUnchanged:
			out = append(out, annotate(right[ri], models.OpUnchanged, models.ChangeNone))
			li++
			ri++
		case decideModified:
			out = append(out, a.annotateModified(left[li], right[ri]))
			li++
			ri++
		case decideAdded:
			out = append(out, annotate(right[ri], models.OpAdded, models.ChangeStructuralAdd))
			ri++
		case decideRemoved:
			// Not represented in target-only output.
			li++
		case decideReplacement:
			out = append(out, annotate(right[ri], models.OpAdded, models.ChangeReplacement))
			li++
			ri++
		}
	}

	return out
}

// AlignMutual emits two index-aligned annotated sequences with
// placeholders padding the side that did not advance. The outputs always
// have equal length.
func (a *Aligner) AlignMutual(left, right []models.Segment) ([]models.AnnotatedSegment, []models.AnnotatedSegment) {
	leftOut := make([]models.AnnotatedSegment, 0, len(left))
	rightOut := make([]models.AnnotatedSegment, 0, len(right))
	li, ri := 0, 0

	for li < len(left) || ri < len(right) {
		switch {
		case li >= len(left):
			rs := right[ri]
			rightOut = append(rightOut, annotate(rs, models.OpAdded, models.ChangeStructuralAdd))
			leftOut = append(leftOut, models.NewPlaceholder(rs, models.ChangePlaceholderAdded))
			ri++
		case ri >= len(right):
			ls := left[li]
			leftOut = append(leftOut, annotate(ls, models.OpRemoved, models.ChangeStructuralRemove))
			rightOut = append(rightOut, models.NewPlaceholder(ls, models.ChangePlaceholderRemoved))
			li++
		default:
			switch a.classify(left, right, li, ri) {
			case decideUnchanged:
				leftOut = append(leftOut, annotate(left[li], models.OpUnchanged, models.ChangeNone))
				rightOut = append(rightOut, annotate(right[ri], models.OpUnchanged, models.ChangeNone))
				li++
				ri++
			case decideModified:
				diffs := a.differ.Diff(left[li].Text, right[ri].Text)
				la := annotate(left[li], models.OpModified, models.ChangeContent)
				la.Diffs = diffs
				ra := annotate(right[ri], models.OpModified, models.ChangeContent)
				ra.Diffs = diffs
				leftOut = append(leftOut, la)
				rightOut = append(rightOut, ra)
				li++
				ri++
			case decideAdded:
				rs := right[ri]
				rightOut = append(rightOut, annotate(rs, models.OpAdded, models.ChangeStructuralAdd))
				leftOut = append(leftOut, models.NewPlaceholder(rs, models.ChangePlaceholderAdded))
				ri++
			case decideRemoved:
				ls := left[li]
				leftOut = append(leftOut, annotate(ls, models.OpRemoved, models.ChangeStructuralRemove))
				rightOut = append(rightOut, models.NewPlaceholder(ls, models.ChangePlaceholderRemoved))
				li++
			case decideReplacement:
				leftOut = append(leftOut, annotate(left[li], models.OpRemoved, models.ChangeReplacement))
				rightOut = append(rightOut, annotate(right[ri], models.OpAdded, models.ChangeReplacement))
				li++
				ri++
			}
		}
	}

	return leftOut, rightOut
}

// annotateModified classifies a tag-equal pair as a content edit and
// attaches the word-level diff between the two texts.
func (a *Aligner) annotateModified(ls, rs models.Segment) models.AnnotatedSegment {
	annotated := annotate(rs, models.OpModified, models.ChangeContent)
	annotated.Diffs = a.differ.Diff(ls.Text, rs.Text)
	return annotated
}

func annotate(seg models.Segment, op models.Operation, changeType models.ChangeType) models.AnnotatedSegment {
	return models.AnnotatedSegment{
		Segment:       seg,
		Operation:     op,
		ChangeType:    changeType,
		CounterpartID: -1,
	}
}
