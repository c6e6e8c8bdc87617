package layout

import (
	"github.com/quenchtext/quench/internal/engine/cursor"
)

// UnsetX marks a vertical movement with no established preferred
// column. X coordinates are never negative, so -1 is unambiguous.
const UnsetX = -1.0

// MoveUp moves the cursor one visual line up, keeping a stable visual
// column across lines of varying content. preferredX is UnsetX on the
// first vertical move and the returned x on subsequent ones.
//
// Adjacent empty lines share the x column but may map to the same
// byte offset as the starting line's edge; the walk continues upward
// until the offset actually changes or the top of the document is
// reached, so movement is never a visual no-op.
func (l *TextLayout) MoveUp(offset int, preferredX float64) (int, float64) {
	return l.moveVertical(offset, preferredX, -1)
}

// MoveDown moves the cursor one visual line down. See MoveUp.
func (l *TextLayout) MoveDown(offset int, preferredX float64) (int, float64) {
	return l.moveVertical(offset, preferredX, 1)
}

func (l *TextLayout) moveVertical(offset int, preferredX float64, dir int) (int, float64) {
	offset = l.snap(offset)
	line, li := l.LineAtOffset(offset)
	x := preferredX
	if x < 0 {
		x = xAtOffset(line, offset)
	}
	for j := li + dir; j >= 0 && j < len(l.lines); j += dir {
		candidate := hitLine(l.text, l.lines[j], x)
		if candidate != offset {
			return candidate, x
		}
	}
	return offset, x
}

// LineStartOffset returns the visual start offset of the line owning
// offset, accounting for BiDi run order.
func (l *TextLayout) LineStartOffset(offset int) int {
	line, _ := l.LineAtOffset(offset)
	return VisualStartOffset(line)
}

// LineEndOffset returns the visual end offset of the line owning
// offset, accounting for BiDi run order.
func (l *TextLayout) LineEndOffset(offset int) int {
	line, _ := l.LineAtOffset(offset)
	return VisualEndOffset(line)
}

// DocumentStart returns the first caret position.
func (l *TextLayout) DocumentStart() int {
	return 0
}

// DocumentEnd returns the last caret position.
func (l *TextLayout) DocumentEnd() int {
	return len(l.text)
}

// ExtendSelection moves the selection's active end with move, keeping
// the anchor fixed.
func ExtendSelection(sel cursor.Selection, move cursor.MoveFunc) cursor.Selection {
	return sel.Extend(move(sel.Active))
}

// ExtendSelectionVertical moves the selection's active end one line up
// or down, threading the preferred column like MoveUp/MoveDown.
func (l *TextLayout) ExtendSelectionVertical(sel cursor.Selection, up bool, preferredX float64) (cursor.Selection, float64) {
	dir := 1
	if up {
		dir = -1
	}
	active, x := l.moveVertical(sel.Active, preferredX, dir)
	return sel.Extend(active), x
}
