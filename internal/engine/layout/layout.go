package layout

import (
	"time"

	"github.com/google/uuid"

	"github.com/quenchtext/quench/internal/engine/cursor"
	"github.com/quenchtext/quench/internal/engine/history"
	"github.com/quenchtext/quench/internal/engine/segment"
	"github.com/quenchtext/quench/internal/engine/shaping"
	"github.com/quenchtext/quench/internal/platform/clipboard"
)

// TextLayout owns a text buffer and its current layout. Every
// mutation edits the buffer, records an undo operation, and rebuilds
// all lines by calling Compute. TextLayout is exclusively owned by its
// caller; it performs no locking.
type TextLayout struct {
	text   string
	shaper shaping.Shaper
	params Params

	lines []LineBox
	index *PrefixSums

	stack *history.Stack
	clip  clipboard.Clipboard

	revision uuid.UUID
}

// Option configures a TextLayout.
type Option func(*TextLayout)

// WithClipboard sets the clipboard implementation. The default is the
// system clipboard.
func WithClipboard(c clipboard.Clipboard) Option {
	return func(l *TextLayout) {
		if c != nil {
			l.clip = c
		}
	}
}

// WithHistoryLimit sets the maximum number of undo groups.
func WithHistoryLimit(limit int) Option {
	return func(l *TextLayout) {
		l.stack.SetLimit(limit)
	}
}

// WithGrouping enables or disables undo grouping.
func WithGrouping(enabled bool) Option {
	return func(l *TextLayout) {
		l.stack.SetGrouping(enabled)
	}
}

// WithGroupWindow sets the undo grouping time window.
func WithGroupWindow(window time.Duration) Option {
	return func(l *TextLayout) {
		l.stack.SetGroupWindow(window)
	}
}

// New lays out text and returns the editing surface over it.
func New(text string, shaper shaping.Shaper, params Params, opts ...Option) *TextLayout {
	l := &TextLayout{
		text:   text,
		shaper: shaper,
		params: params,
		stack:  history.NewStack(history.DefaultLimit),
		clip:   clipboard.NewSystem(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.relayout()
	return l
}

// relayout rebuilds lines and the index from the current text.
func (l *TextLayout) relayout() {
	l.lines = Compute(l.text, l.shaper, l.params)
	l.index = BuildPrefixSums(l.lines)
	l.revision = uuid.New()
}

// Text returns the current text.
func (l *TextLayout) Text() string {
	return l.text
}

// Len returns the text length in bytes.
func (l *TextLayout) Len() int {
	return len(l.text)
}

// Revision returns an identifier regenerated on every mutation.
// Callers caching geometry can compare revisions to detect staleness.
func (l *TextLayout) Revision() uuid.UUID {
	return l.revision
}

// Params returns the current layout parameters.
func (l *TextLayout) Params() Params {
	return l.params
}

// SetParams replaces the layout parameters and relayouts.
func (l *TextLayout) SetParams(p Params) {
	l.params = p
	l.relayout()
}

// Lines returns the current line boxes. The slice is owned by the
// layout and valid until the next mutation.
func (l *TextLayout) Lines() []LineBox {
	return l.lines
}

// LineCount returns the number of lines.
func (l *TextLayout) LineCount() int {
	return len(l.lines)
}

// Line returns line i, or false when i is out of range.
func (l *TextLayout) Line(i int) (LineBox, bool) {
	if i < 0 || i >= len(l.lines) {
		return LineBox{}, false
	}
	return l.lines[i], true
}

// LineAtOffset returns the line owning the byte offset and its index.
// Out-of-range offsets clamp to the first or last line.
func (l *TextLayout) LineAtOffset(offset int) (LineBox, int) {
	i := l.index.LineForOffset(l.snap(offset))
	return l.lines[i], i
}

// OffsetOfLine returns the starting byte offset of line i, clamped to
// the valid line range.
func (l *TextLayout) OffsetOfLine(i int) int {
	return l.index.StartOfLine(i)
}

// TotalHeight returns the stacked height of all lines.
func (l *TextLayout) TotalHeight() float64 {
	return l.index.TotalHeight()
}

// MaxLineWidth returns the width of the widest line.
func (l *TextLayout) MaxLineWidth() float64 {
	max := 0.0
	for _, line := range l.lines {
		if line.Width > max {
			max = line.Width
		}
	}
	return max
}

// Bounds returns the bounding box of the laid-out text.
func (l *TextLayout) Bounds() Rect {
	return Rect{Width: l.MaxLineWidth(), Height: l.TotalHeight()}
}

// History returns the undo stack for configuration by the host.
func (l *TextLayout) History() *history.Stack {
	return l.stack
}

// snap clamps offset into the text and snaps it to a grapheme boundary.
func (l *TextLayout) snap(offset int) int {
	return cursor.Snap(l.text, offset)
}

// snapRange clamps and orders a byte range against the current text.
func (l *TextLayout) snapRange(r segment.Range) segment.Range {
	start := l.snap(r.Start)
	end := l.snap(r.End)
	if end < start {
		start, end = end, start
	}
	return segment.Range{Start: start, End: end}
}
