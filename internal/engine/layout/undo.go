package layout

import (
	"github.com/quenchtext/quench/internal/engine/cursor"
)

// Undo reverts the most recent undo group, relayouts once, and
// returns the selection captured before the group's first operation.
// It reports false when there is nothing to undo.
func (l *TextLayout) Undo() (cursor.Selection, bool) {
	g, ok := l.stack.PopUndo()
	if !ok {
		return cursor.Selection{}, false
	}
	for _, op := range g.Inverted() {
		l.text = op.Apply(l.text)
	}
	l.relayout()
	return g.SelectionBefore().Clamp(len(l.text)), true
}

// Redo replays the most recent undone group, relayouts once, and
// returns the selection captured after the group's last operation.
// It reports false when there is nothing to redo.
func (l *TextLayout) Redo() (cursor.Selection, bool) {
	g, ok := l.stack.PopRedo()
	if !ok {
		return cursor.Selection{}, false
	}
	for _, op := range g.Operations {
		l.text = op.Apply(l.text)
	}
	l.relayout()
	return g.SelectionAfter().Clamp(len(l.text)), true
}

// CanUndo returns true if an undo group is available.
func (l *TextLayout) CanUndo() bool {
	return l.stack.CanUndo()
}

// CanRedo returns true if a redo group is available.
func (l *TextLayout) CanRedo() bool {
	return l.stack.CanRedo()
}

// ClearHistory drops all undo/redo state.
func (l *TextLayout) ClearHistory() {
	l.stack.Clear()
}
