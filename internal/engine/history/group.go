package history

import (
	"time"

	"github.com/quenchtext/quench/internal/engine/cursor"
)

// Group is one undo step: one or more operations applied as a unit.
type Group struct {
	Operations []*Operation
}

// newGroup starts a group with a single operation.
func newGroup(op *Operation) *Group {
	return &Group{Operations: []*Operation{op}}
}

// first returns the earliest operation of the group.
func (g *Group) first() *Operation {
	return g.Operations[0]
}

// last returns the most recent operation of the group.
func (g *Group) last() *Operation {
	return g.Operations[len(g.Operations)-1]
}

// SelectionBefore returns the selection to restore after undoing the
// group: the selection captured before its first operation.
func (g *Group) SelectionBefore() cursor.Selection {
	return g.first().SelBefore
}

// SelectionAfter returns the selection to restore after redoing the
// group: the selection captured after its last operation.
func (g *Group) SelectionAfter() cursor.Selection {
	return g.last().SelAfter
}

// Timestamp returns the time of the group's most recent operation.
func (g *Group) Timestamp() time.Time {
	return g.last().Timestamp
}

// Inverted returns the group's operations inverted and in reverse
// order, ready to apply for undo.
func (g *Group) Inverted() []*Operation {
	out := make([]*Operation, len(g.Operations))
	for i, op := range g.Operations {
		out[len(g.Operations)-1-i] = op.Invert()
	}
	return out
}

// canAbsorb reports whether op continues this group as part of the
// same user action. Two cases merge: an insert starting exactly where
// the previous insert ended (typing forward), and a delete ending
// exactly where the previous delete started (backspacing). Operations
// containing a newline never merge, so each line break is its own
// undo step.
func (g *Group) canAbsorb(op *Operation, window time.Duration) bool {
	prev := g.last()
	if window > 0 && op.Timestamp.Sub(prev.Timestamp) > window {
		return false
	}
	switch {
	case prev.IsInsert() && op.IsInsert():
		if containsNewline(prev.NewText) || containsNewline(op.NewText) {
			return false
		}
		return op.Range.Start == prev.Range.Start+len(prev.NewText)
	case prev.IsDelete() && op.IsDelete():
		if containsNewline(prev.OldText) || containsNewline(op.OldText) {
			return false
		}
		return op.Range.End == prev.Range.Start
	default:
		return false
	}
}

// absorb appends op to the group.
func (g *Group) absorb(op *Operation) {
	g.Operations = append(g.Operations, op)
}

func containsNewline(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return true
		}
	}
	return false
}
