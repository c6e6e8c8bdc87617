package history

import (
	"errors"
	"time"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultLimit is the default maximum number of undo groups.
const DefaultLimit = 1000

// DefaultGroupWindow is the default time window within which adjacent
// operations merge into one group.
const DefaultGroupWindow = 500 * time.Millisecond

// Stack manages undo and redo groups.
// Stack performs no locking; callers must serialize access.
type Stack struct {
	undo []*Group
	redo []*Group

	limit    int
	grouping bool
	sealed   bool
	window   time.Duration
}

// NewStack creates a stack holding at most limit undo groups, with
// grouping enabled.
func NewStack(limit int) *Stack {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Stack{
		limit:    limit,
		grouping: true,
		window:   DefaultGroupWindow,
	}
}

// Push records an edit. If grouping is enabled and op continues the
// most recent group, it merges into that group; otherwise a new group
// starts. Pushing clears the redo list. No-op operations are dropped.
func (s *Stack) Push(op *Operation) {
	if op == nil || op.IsNoop() {
		return
	}
	s.redo = nil

	if s.grouping && !s.sealed && len(s.undo) > 0 {
		last := s.undo[len(s.undo)-1]
		if last.canAbsorb(op, s.window) {
			last.absorb(op)
			return
		}
	}
	s.sealed = false

	s.undo = append(s.undo, newGroup(op))
	if len(s.undo) > s.limit {
		excess := len(s.undo) - s.limit
		s.undo = s.undo[excess:]
	}
}

// PopUndo removes the most recent undo group and moves it to the redo
// list. The caller is responsible for applying g.Inverted().
func (s *Stack) PopUndo() (*Group, bool) {
	if len(s.undo) == 0 {
		return nil, false
	}
	g := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.redo = append(s.redo, g)
	return g, true
}

// PopRedo removes the most recent redo group and moves it back to the
// undo list. The caller is responsible for applying g.Operations in
// forward order.
func (s *Stack) PopRedo() (*Group, bool) {
	if len(s.redo) == 0 {
		return nil, false
	}
	g := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.undo = append(s.undo, g)
	return g, true
}

// CanUndo returns true if undo is available.
func (s *Stack) CanUndo() bool {
	return len(s.undo) > 0
}

// CanRedo returns true if redo is available.
func (s *Stack) CanRedo() bool {
	return len(s.redo) > 0
}

// UndoCount returns the number of undo groups available.
func (s *Stack) UndoCount() int {
	return len(s.undo)
}

// RedoCount returns the number of redo groups available.
func (s *Stack) RedoCount() int {
	return len(s.redo)
}

// Clear removes all undo/redo history.
func (s *Stack) Clear() {
	s.undo = nil
	s.redo = nil
}

// SetLimit changes the maximum number of undo groups. If the current
// list is larger, the oldest groups are evicted.
func (s *Stack) SetLimit(limit int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	s.limit = limit
	if len(s.undo) > limit {
		excess := len(s.undo) - limit
		s.undo = s.undo[excess:]
	}
}

// Limit returns the maximum number of undo groups.
func (s *Stack) Limit() int {
	return s.limit
}

// SetGrouping enables or disables merging of adjacent operations.
// Already formed groups are unaffected; disabling also seals the
// current group, so a later Push always starts a new one even when
// grouping is re-enabled in between.
func (s *Stack) SetGrouping(enabled bool) {
	if !enabled {
		s.sealed = true
	}
	s.grouping = enabled
}

// Grouping returns true if adjacent operations merge into groups.
func (s *Stack) Grouping() bool {
	return s.grouping
}

// SetGroupWindow sets the maximum time between two operations for
// them to merge. Zero disables the time check.
func (s *Stack) SetGroupWindow(window time.Duration) {
	if window < 0 {
		window = 0
	}
	s.window = window
}

// GroupWindow returns the merge time window.
func (s *Stack) GroupWindow() time.Duration {
	return s.window
}
