package cursor

import (
	"fmt"

	"github.com/quenchtext/quench/internal/engine/segment"
)

// Affinity disambiguates a cursor at a soft-wrap boundary, where one
// byte offset has two visual positions.
type Affinity uint8

const (
	// Downstream anchors the cursor to the start of the following line.
	Downstream Affinity = iota
	// Upstream anchors the cursor to the end of the preceding line.
	Upstream
)

// String returns a human-readable affinity name.
func (a Affinity) String() string {
	if a == Upstream {
		return "upstream"
	}
	return "downstream"
}

// Position is an insertion point in the text.
// Position is an immutable value type.
type Position struct {
	Offset   int
	Affinity Affinity
}

// NewPosition creates a downstream position at the given offset.
func NewPosition(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	return Position{Offset: offset}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("Position(%d, %s)", p.Offset, p.Affinity)
}

// Snap clamps offset into [0, len(text)] and snaps it to the nearest
// grapheme cluster boundary at or before it.
func Snap(text string, offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset >= len(text) {
		return len(text)
	}
	return segment.SnapToBoundary(text, offset)
}

// MoveLeftChar returns the offset one grapheme cluster to the left,
// or 0 at the start of text.
func MoveLeftChar(text string, offset int) int {
	return segment.PrevBoundary(text, Snap(text, offset))
}

// MoveRightChar returns the offset one grapheme cluster to the right,
// or len(text) at the end of text.
func MoveRightChar(text string, offset int) int {
	return segment.NextBoundary(text, Snap(text, offset))
}

// MoveLeftWord returns the start of the word before offset, skipping
// any intervening non-word segments. At or before the first word it
// returns 0.
func MoveLeftWord(text string, offset int) int {
	offset = Snap(text, offset)
	if offset == 0 {
		return 0
	}
	target := 0
	for _, seg := range segment.Words(text) {
		if seg.Range.Start >= offset {
			break
		}
		if seg.IsWord() {
			target = seg.Range.Start
		}
	}
	return target
}

// MoveRightWord returns the end of the word at or after offset,
// skipping any intervening non-word segments. At or after the last
// word it returns len(text).
func MoveRightWord(text string, offset int) int {
	offset = Snap(text, offset)
	for _, seg := range segment.Words(text) {
		if seg.IsWord() && seg.Range.End > offset {
			return seg.Range.End
		}
	}
	return len(text)
}

// MoveFunc transforms one offset into another within the same text.
type MoveFunc func(offset int) int
