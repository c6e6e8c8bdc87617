package layout

import (
	"github.com/quenchtext/quench/internal/engine/cursor"
	"github.com/quenchtext/quench/internal/engine/segment"
	"github.com/quenchtext/quench/internal/engine/shaping"
)

// HitPolicy governs hit testing outside the text bounds.
type HitPolicy uint8

const (
	// Clamp snaps points above/below the text to the first/last line.
	Clamp HitPolicy = iota
	// Strict reports no match for points outside the text bounds.
	Strict
)

// HitResult is the outcome of a successful hit test.
type HitResult struct {
	Offset   int
	Affinity cursor.Affinity
	Line     int
}

// HitTest resolves a point to a byte offset. The y coordinate selects
// the line subject to policy; the x coordinate resolves within the
// line's visual-order runs, mirroring x inside right-to-left runs so
// cluster math stays direction-agnostic. Under Strict a point beside
// the line horizontally is a miss too, so gesture starts beside the
// text refuse rather than snap to the nearest edge.
func (l *TextLayout) HitTest(p Point, policy HitPolicy) (HitResult, bool) {
	li := l.index.LineForY(p.Y, policy == Clamp)
	if li < 0 {
		return HitResult{}, false
	}
	line := l.lines[li]
	if policy == Strict && (p.X <= 0 || p.X >= line.Width) {
		return HitResult{}, false
	}
	offset := hitLine(l.text, line, p.X)
	aff := cursor.Downstream
	if offset == line.Range.End && !line.Range.IsEmpty() {
		aff = cursor.Upstream
	}
	return HitResult{Offset: offset, Affinity: aff, Line: li}, true
}

// hitLine resolves x within one line to a byte offset, clamping
// horizontal misses to the line's visual edges.
func hitLine(text string, line LineBox, x float64) int {
	if len(line.Runs) == 0 {
		return line.Range.Start
	}
	if x < 0 {
		return VisualStartOffset(line)
	}
	runLeft := 0.0
	for _, run := range line.Runs {
		if x < runLeft+run.Width {
			local := x - runLeft
			if run.Direction == shaping.RightToLeft {
				local = run.Width - local
			}
			return hitRun(text, run, local)
		}
		runLeft += run.Width
	}
	return VisualEndOffset(line)
}

// hitRun resolves a direction-agnostic local x to a byte offset. The
// cluster straddling x resolves to its start or to the next grapheme
// boundary after its start, whichever side of the cluster midpoint x
// falls on. A multi-grapheme ligature cluster therefore yields exactly
// two caret stops one grapheme apart, never a position further into
// the ligature.
func hitRun(text string, run shaping.Run, x float64) int {
	left := 0.0
	for _, c := range run.Clusters {
		if x < left+c.Advance {
			if x < left+c.Advance/2 {
				return c.Range.Start
			}
			return segment.NextBoundary(text, c.Range.Start)
		}
		left += c.Advance
	}
	return run.Range.End
}

// VisualStartOffset returns the byte offset at the visual left edge of
// the line. With BiDi the first stored run is not necessarily the
// logical start: a right-to-left first run puts its logical end at the
// visual start.
func VisualStartOffset(line LineBox) int {
	if len(line.Runs) == 0 {
		return line.Range.Start
	}
	first := line.Runs[0]
	if first.Direction == shaping.RightToLeft {
		return first.Range.End
	}
	return first.Range.Start
}

// VisualEndOffset returns the byte offset at the visual right edge of
// the line.
func VisualEndOffset(line LineBox) int {
	if len(line.Runs) == 0 {
		return line.Range.End
	}
	last := line.Runs[len(line.Runs)-1]
	if last.Direction == shaping.RightToLeft {
		return last.Range.Start
	}
	return last.Range.End
}
