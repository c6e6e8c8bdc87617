package cursor

import (
	"fmt"

	"github.com/quenchtext/quench/internal/engine/segment"
)

// Selection represents a range of selected text.
// Anchor is where the selection started; Active is the moving end
// (where typing occurs). When Anchor == Active, this represents a
// cursor with no selection. Selection is an immutable value type.
type Selection struct {
	Anchor int
	Active int
}

// NewSelection creates a selection from anchor to active.
func NewSelection(anchor, active int) Selection {
	return Selection{Anchor: anchor, Active: active}
}

// Collapsed creates a selection representing just a cursor (no extent).
func Collapsed(offset int) Selection {
	return Selection{Anchor: offset, Active: offset}
}

// IsEmpty returns true if the selection has no extent (just a cursor).
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Active
}

// Len returns the length of the selection in bytes.
func (s Selection) Len() int {
	if s.Anchor <= s.Active {
		return s.Active - s.Anchor
	}
	return s.Anchor - s.Active
}

// Range returns the selection as a range (always Start <= End).
func (s Selection) Range() segment.Range {
	if s.Anchor <= s.Active {
		return segment.Range{Start: s.Anchor, End: s.Active}
	}
	return segment.Range{Start: s.Active, End: s.Anchor}
}

// Start returns the lower bound of the selection.
func (s Selection) Start() int {
	if s.Anchor <= s.Active {
		return s.Anchor
	}
	return s.Active
}

// End returns the upper bound of the selection.
func (s Selection) End() int {
	if s.Anchor >= s.Active {
		return s.Anchor
	}
	return s.Active
}

// IsForward returns true if the selection extends forward (active >= anchor).
func (s Selection) IsForward() bool {
	return s.Active >= s.Anchor
}

// IsBackward returns true if the selection extends backward (active < anchor).
func (s Selection) IsBackward() bool {
	return s.Active < s.Anchor
}

// Extend returns a new selection with the active end at offset.
// The anchor remains fixed.
func (s Selection) Extend(offset int) Selection {
	return Selection{Anchor: s.Anchor, Active: offset}
}

// MoveTo returns a new collapsed selection (cursor) at the given offset.
func (s Selection) MoveTo(offset int) Selection {
	return Selection{Anchor: offset, Active: offset}
}

// Collapse collapses the selection to a cursor at the active end.
func (s Selection) Collapse() Selection {
	return Selection{Anchor: s.Active, Active: s.Active}
}

// CollapseToStart collapses the selection to its start position.
func (s Selection) CollapseToStart() Selection {
	start := s.Start()
	return Selection{Anchor: start, Active: start}
}

// CollapseToEnd collapses the selection to its end position.
func (s Selection) CollapseToEnd() Selection {
	end := s.End()
	return Selection{Anchor: end, Active: end}
}

// Flip returns a selection with anchor and active swapped.
func (s Selection) Flip() Selection {
	return Selection{Anchor: s.Active, Active: s.Anchor}
}

// Contains returns true if the given offset is within the selection.
// For empty selections (cursors), this always returns false.
func (s Selection) Contains(offset int) bool {
	return offset >= s.Start() && offset < s.End()
}

// Clamp returns a selection clamped to the valid range [0, maxOffset].
func (s Selection) Clamp(maxOffset int) Selection {
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > maxOffset {
			return maxOffset
		}
		return v
	}
	return Selection{Anchor: clamp(s.Anchor), Active: clamp(s.Active)}
}

// Snap returns the selection with both ends snapped to grapheme
// boundaries of text.
func (s Selection) Snap(text string) Selection {
	return Selection{Anchor: Snap(text, s.Anchor), Active: Snap(text, s.Active)}
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Cursor(%d)", s.Active)
	}
	dir := "->"
	if s.IsBackward() {
		dir = "<-"
	}
	return fmt.Sprintf("Selection(%d%s%d)", s.Anchor, dir, s.Active)
}

// Equals returns true if two selections have the same anchor and active end.
func (s Selection) Equals(other Selection) bool {
	return s.Anchor == other.Anchor && s.Active == other.Active
}
