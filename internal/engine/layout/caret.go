package layout

import (
	"github.com/quenchtext/quench/internal/engine/shaping"
)

// CaretWidth is the width of caret rectangles returned by CursorRectAt.
const CaretWidth = 1.0

// xAtOffset returns the x coordinate of the caret for a byte offset
// within line. Runs are stored in visual order; the offset's run is
// located by byte range, then cluster advances inside it resolve the
// exact position, mirrored for right-to-left runs.
func xAtOffset(line LineBox, offset int) float64 {
	runLeft := 0.0
	for _, run := range line.Runs {
		if run.Range.Contains(offset) || offset == run.Range.End {
			return runLeft + xInRun(run, offset)
		}
		runLeft += run.Width
	}
	if len(line.Runs) == 0 {
		return 0
	}
	// Offset outside every run; snap to the line edge.
	return line.Width
}

// xInRun returns the caret x relative to the run's left edge. The
// caret sits at the leading edge of the first cluster whose start is
// at or past the offset; advances of the preceding clusters accumulate
// into the prefix width.
func xInRun(run shaping.Run, offset int) float64 {
	prefix := 0.0
	for _, c := range run.Clusters {
		if c.Range.Start >= offset {
			break
		}
		prefix += c.Advance
	}
	if run.Direction == shaping.RightToLeft {
		return run.Width - prefix
	}
	return prefix
}

// CursorRectAt returns the caret rectangle for a byte offset. The
// offset is snapped to a grapheme boundary; the rect spans the line's
// ascent+descent regardless of any looser line height.
func (l *TextLayout) CursorRectAt(offset int) Rect {
	line, _ := l.LineAtOffset(offset)
	return Rect{
		X:      xAtOffset(line, l.snap(offset)),
		Y:      line.CaretTop(),
		Width:  CaretWidth,
		Height: line.CaretHeight(),
	}
}

// OffsetToPosition returns the top-left caret point for a byte offset.
func (l *TextLayout) OffsetToPosition(offset int) Point {
	r := l.CursorRectAt(offset)
	return Point{X: r.X, Y: r.Y}
}

// OffsetToBaselinePosition returns the caret point on the line's
// baseline, suitable for IME candidate-window placement.
func (l *TextLayout) OffsetToBaselinePosition(offset int) Point {
	line, _ := l.LineAtOffset(offset)
	return Point{
		X: xAtOffset(line, l.snap(offset)),
		Y: line.YOffset + line.Baseline,
	}
}
