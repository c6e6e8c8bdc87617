// Package scroll computes scroll offsets that keep carets, selections,
// and lines visible in a viewport.
//
// Everything here is a pure function of the layout and the current
// scroll state; nothing mutates the layout. The host widget owns the
// actual scroll position and applies the returned offsets.
package scroll

import (
	"github.com/quenchtext/quench/internal/engine/cursor"
	"github.com/quenchtext/quench/internal/engine/layout"
)

// Viewport is the visible window over the laid-out text. Offset is
// the layout-space coordinate of the viewport's top-left corner.
type Viewport struct {
	Offset layout.Point
	Width  float64
	Height float64
}

// DefaultWheelLines is the number of lines one wheel step scrolls.
const DefaultWheelLines = 3.0

// ToRect returns the minimal scroll offset that brings target fully
// into view, with margin pixels of breathing room where possible.
// A target already visible leaves the offset unchanged.
func ToRect(v Viewport, target layout.Rect, margin float64) layout.Point {
	off := v.Offset
	off.X = axisAdjust(off.X, v.Width, target.X, target.Right(), margin)
	off.Y = axisAdjust(off.Y, v.Height, target.Y, target.Bottom(), margin)
	return off
}

// axisAdjust solves one axis: scroll back when the target starts
// before the window, forward when it ends past it.
func axisAdjust(off, size, lo, hi, margin float64) float64 {
	if lo-margin < off {
		off = lo - margin
	} else if hi+margin > off+size {
		off = hi + margin - size
	}
	if off < 0 {
		off = 0
	}
	return off
}

// ToCursor returns the scroll offset keeping the caret at offset
// visible.
func ToCursor(l *layout.TextLayout, v Viewport, offset int, margin float64) layout.Point {
	return ToRect(v, l.CursorRectAt(offset), margin)
}

// ToSelection returns the scroll offset keeping the selection's
// active end visible, which is the end that moves during extension.
func ToSelection(l *layout.TextLayout, v Viewport, sel cursor.Selection, margin float64) layout.Point {
	return ToCursor(l, v, sel.Active, margin)
}

// ToLineTop returns the scroll offset placing line i at the top of the
// viewport, clamped to the scrollable bounds.
func ToLineTop(l *layout.TextLayout, v Viewport, i int) layout.Point {
	line, ok := l.Line(i)
	if !ok {
		return v.Offset
	}
	off := v.Offset
	off.Y = clampScroll(line.YOffset, l.TotalHeight(), v.Height)
	return off
}

// ToLineCentered returns the scroll offset centering line i in the
// viewport, clamped to the scrollable bounds.
func ToLineCentered(l *layout.TextLayout, v Viewport, i int) layout.Point {
	line, ok := l.Line(i)
	if !ok {
		return v.Offset
	}
	off := v.Offset
	center := line.YOffset + line.Height/2
	off.Y = clampScroll(center-v.Height/2, l.TotalHeight(), v.Height)
	return off
}

// Bounds returns the maximum meaningful scroll offset: content size
// minus viewport, floored at zero.
func Bounds(l *layout.TextLayout, v Viewport) layout.Point {
	b := l.Bounds()
	return layout.Point{
		X: maxScroll(b.Width, v.Width),
		Y: maxScroll(b.Height, v.Height),
	}
}

// Clamp limits a scroll offset to the scrollable bounds.
func Clamp(l *layout.TextLayout, v Viewport, off layout.Point) layout.Point {
	max := Bounds(l, v)
	if off.X < 0 {
		off.X = 0
	} else if off.X > max.X {
		off.X = max.X
	}
	if off.Y < 0 {
		off.Y = 0
	} else if off.Y > max.Y {
		off.Y = max.Y
	}
	return off
}

// VisibleLineRange returns the inclusive index range of lines
// intersecting the viewport's vertical window. It reports false when
// no line is visible.
func VisibleLineRange(l *layout.TextLayout, v Viewport) (first, last int, ok bool) {
	lines := l.Lines()
	if len(lines) == 0 || v.Height <= 0 {
		return 0, 0, false
	}
	top := v.Offset.Y
	bottom := top + v.Height
	first = -1
	for i, line := range lines {
		if line.Bottom() <= top {
			continue
		}
		if line.YOffset >= bottom {
			break
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	if first < 0 {
		return 0, 0, false
	}
	return first, last, true
}

// WheelDelta converts wheel steps to a pixel delta: steps scaled by
// lines-per-step and the layout's line height. linesPerStep of zero
// falls back to DefaultWheelLines.
func WheelDelta(l *layout.TextLayout, steps, linesPerStep float64) float64 {
	if linesPerStep <= 0 {
		linesPerStep = DefaultWheelLines
	}
	lineHeight := 0.0
	if line, ok := l.Line(0); ok {
		lineHeight = line.Height
	}
	return steps * linesPerStep * lineHeight
}

func clampScroll(y, content, view float64) float64 {
	max := maxScroll(content, view)
	if y < 0 {
		return 0
	}
	if y > max {
		return max
	}
	return y
}

func maxScroll(content, view float64) float64 {
	if content <= view {
		return 0
	}
	return content - view
}
