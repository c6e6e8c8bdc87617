package layout

import (
	"fmt"

	"github.com/quenchtext/quench/internal/engine/segment"
	"github.com/quenchtext/quench/internal/engine/shaping"
)

// WrapMode is the policy governing where a paragraph may be broken
// into lines.
type WrapMode uint8

const (
	// NoWrap keeps each paragraph on a single line.
	NoWrap WrapMode = iota
	// BreakWord breaks at word boundaries, falling back to grapheme
	// packing when a single word exceeds the wrap width.
	BreakWord
	// BreakAll breaks at grapheme cluster granularity everywhere.
	BreakAll
)

// String returns a human-readable wrap mode name.
func (w WrapMode) String() string {
	switch w {
	case BreakWord:
		return "break-word"
	case BreakAll:
		return "break-all"
	default:
		return "no-wrap"
	}
}

// Params configure a layout pass.
type Params struct {
	Face shaping.Face

	// MaxWidth is the wrap width in pixels. Zero or negative means
	// unbounded, which forces NoWrap behavior.
	MaxWidth float64

	Wrap WrapMode

	// LineHeight overrides the font's natural ascent+descent when
	// larger. Zero means use the font metrics alone.
	LineHeight float64

	// BaseDirection is the paragraph-level direction hint for BiDi
	// resolution.
	BaseDirection shaping.Direction
}

// LineBox is one visually laid-out line.
//
// Range covers the line's source bytes and never includes a newline
// byte. Runs are stored in visual order, left to right. YOffset is the
// distance from the top of the layout to the top of the line box.
type LineBox struct {
	Range    segment.Range
	Width    float64
	Height   float64
	Ascent   float64
	Descent  float64
	Leading  float64
	Baseline float64
	YOffset  float64
	Runs     []shaping.Run
}

// Bottom returns the y coordinate of the line's bottom edge.
func (l LineBox) Bottom() float64 {
	return l.YOffset + l.Height
}

// ContainsY returns true if y falls within the line's vertical extent.
func (l LineBox) ContainsY(y float64) bool {
	return y >= l.YOffset && y < l.Bottom()
}

// CaretTop returns the y coordinate of the caret's top edge on this
// line. The caret spans ascent+descent, vertically centered by the
// half-leading.
func (l LineBox) CaretTop() float64 {
	return l.YOffset + l.Leading/2
}

// CaretHeight returns the caret height on this line.
func (l LineBox) CaretHeight() float64 {
	return l.Ascent + l.Descent
}

// String returns a string representation of the line box.
func (l LineBox) String() string {
	return fmt.Sprintf("LineBox(%v, w=%g, y=%g, runs=%d)", l.Range, l.Width, l.YOffset, len(l.Runs))
}
