package layout

import (
	"strings"

	"github.com/quenchtext/quench/internal/engine/cursor"
	"github.com/quenchtext/quench/internal/engine/segment"
)

// SelectionRects returns one highlight rectangle per line intersecting
// the selection. X bounds come from the same cluster-aware caret
// function as cursor placement; heights span ascent+descent. An empty
// line inside the selection yields a zero-width rect marking its caret
// row.
func (l *TextLayout) SelectionRects(sel cursor.Selection) []Rect {
	if sel.IsEmpty() {
		return nil
	}
	r := l.snapRange(sel.Range())
	var rects []Rect
	for _, line := range l.lines {
		start := r.Start
		if line.Range.Start > start {
			start = line.Range.Start
		}
		end := r.End
		if line.Range.End < end {
			end = line.Range.End
		}
		covered := start < end ||
			(line.Range.IsEmpty() && r.Start <= line.Range.Start && line.Range.Start < r.End)
		if !covered {
			continue
		}
		x1 := xAtOffset(line, start)
		x2 := xAtOffset(line, end)
		if x2 < x1 {
			x1, x2 = x2, x1
		}
		rects = append(rects, Rect{
			X:      x1,
			Y:      line.CaretTop(),
			Width:  x2 - x1,
			Height: line.CaretHeight(),
		})
	}
	return rects
}

// SelectWordAt selects the word segment under offset. An offset inside
// a segment or at its start selects that segment; an offset at a
// segment's exclusive end selects it only when the segment is a word.
// Otherwise the selection collapses at the offset.
func (l *TextLayout) SelectWordAt(offset int) cursor.Selection {
	offset = l.snap(offset)
	for _, seg := range segment.Words(l.text) {
		if seg.Range.Contains(offset) {
			return cursor.NewSelection(seg.Range.Start, seg.Range.End)
		}
		if offset == seg.Range.End && seg.IsWord() {
			return cursor.NewSelection(seg.Range.Start, seg.Range.End)
		}
	}
	return cursor.Collapsed(offset)
}

// SelectLineAt selects the visual line owning offset.
func (l *TextLayout) SelectLineAt(offset int) cursor.Selection {
	line, _ := l.LineAtOffset(offset)
	return cursor.NewSelection(line.Range.Start, line.Range.End)
}

// SelectParagraphAt selects the paragraph owning offset: the span
// between the surrounding newlines, excluding them.
func (l *TextLayout) SelectParagraphAt(offset int) cursor.Selection {
	offset = l.snap(offset)
	start := strings.LastIndexByte(l.text[:offset], '\n') + 1
	end := strings.IndexByte(l.text[offset:], '\n')
	if end < 0 {
		end = len(l.text)
	} else {
		end += offset
	}
	return cursor.NewSelection(start, end)
}

// StartWordSelection begins a word-granularity drag at point. It
// reports false when the point misses the text under Strict policy.
func (l *TextLayout) StartWordSelection(p Point) (cursor.Selection, bool) {
	hit, ok := l.HitTest(p, Strict)
	if !ok {
		return cursor.Selection{}, false
	}
	return l.SelectWordAt(hit.Offset), true
}

// StartLineSelection begins a line-granularity drag at point. It
// reports false when the point misses the text under Strict policy.
func (l *TextLayout) StartLineSelection(p Point) (cursor.Selection, bool) {
	hit, ok := l.HitTest(p, Strict)
	if !ok {
		return cursor.Selection{}, false
	}
	return l.SelectLineAt(hit.Offset), true
}

// ExtendWordSelection grows sel to cover the word unit under point.
// A unit starting before the anchor selects backward from the far
// edge; a unit ending past the anchor selects forward; a point still
// inside the anchor unit leaves sel unchanged.
func (l *TextLayout) ExtendWordSelection(sel cursor.Selection, p Point) cursor.Selection {
	hit, ok := l.HitTest(p, Clamp)
	if !ok {
		return sel
	}
	unit := l.SelectWordAt(hit.Offset)
	return extendByUnit(sel, unit.Range())
}

// ExtendLineSelection grows sel to cover the line unit under point.
// See ExtendWordSelection.
func (l *TextLayout) ExtendLineSelection(sel cursor.Selection, p Point) cursor.Selection {
	hit, ok := l.HitTest(p, Clamp)
	if !ok {
		return sel
	}
	unit := l.SelectLineAt(hit.Offset)
	return extendByUnit(sel, unit.Range())
}

func extendByUnit(sel cursor.Selection, unit segment.Range) cursor.Selection {
	if unit.Start < sel.Anchor {
		return cursor.NewSelection(sel.End(), unit.Start)
	}
	if unit.End > sel.Anchor {
		return cursor.NewSelection(sel.Anchor, unit.End)
	}
	return sel
}
