package segment

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// WordKind classifies a word segment.
type WordKind uint8

const (
	// Word is a run containing at least one alphanumeric rune.
	Word WordKind = iota
	// NonWord is a run of whitespace, punctuation, or symbols.
	NonWord
)

// WordSegment is a word or non-word segment of a string.
type WordSegment struct {
	Range Range
	Kind  WordKind
}

// IsWord returns true if the segment is a word (not whitespace/punctuation).
func (w WordSegment) IsWord() bool {
	return w.Kind == Word
}

// LineBreak is a line break opportunity in a string.
// Offset is the byte offset after the break, i.e. the position where
// the next line would start.
type LineBreak struct {
	Offset    int
	Mandatory bool
}

// GraphemeBoundaries returns the byte offsets of all grapheme cluster
// starts in s, in ascending order. The empty string yields no entries;
// len(s) is never included.
func GraphemeBoundaries(s string) []int {
	if s == "" {
		return nil
	}
	starts := make([]int, 0, len(s))
	off := 0
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(s, state)
		starts = append(starts, off)
		off += len(cluster)
		s = rest
		state = newState
	}
	return starts
}

// GraphemeWidths returns, for each grapheme cluster of s in order, its
// start byte offset and monospace cell width per UAX-11.
func GraphemeWidths(s string) (starts []int, widths []int) {
	off := 0
	state := -1
	for len(s) > 0 {
		cluster, rest, width, newState := uniseg.FirstGraphemeClusterInString(s, state)
		starts = append(starts, off)
		widths = append(widths, width)
		off += len(cluster)
		s = rest
		state = newState
	}
	return starts, widths
}

// PrevBoundary returns the largest grapheme boundary strictly before
// offset, or 0 if there is none.
func PrevBoundary(s string, offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset > len(s) {
		offset = len(s)
	}
	prev := 0
	pos := 0
	state := -1
	for len(s) > 0 && pos < offset {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(s, state)
		prev = pos
		pos += len(cluster)
		s = rest
		state = newState
	}
	return prev
}

// NextBoundary returns the smallest grapheme boundary strictly after
// offset, or len(s) if there is none.
func NextBoundary(s string, offset int) int {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(s) {
		return len(s)
	}
	pos := 0
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(s, state)
		pos += len(cluster)
		if pos > offset {
			return pos
		}
		s = rest
		state = newState
	}
	return pos
}

// SnapToBoundary snaps offset to the nearest grapheme boundary at or
// before it. Offsets beyond len(s) snap to len(s).
func SnapToBoundary(s string, offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset >= len(s) {
		return len(s)
	}
	pos := 0
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(s, state)
		next := pos + len(cluster)
		if pos == offset {
			return offset
		}
		if next > offset {
			return pos
		}
		pos = next
		s = rest
		state = newState
	}
	return len(s)
}

// IsBoundary returns true if offset is a valid grapheme cluster
// boundary of s (including 0 and len(s)).
func IsBoundary(s string, offset int) bool {
	if offset < 0 || offset > len(s) {
		return false
	}
	return SnapToBoundary(s, offset) == offset
}

// Words enumerates the word and non-word segments of s in order.
// Every byte of s belongs to exactly one segment. Segmentation follows
// UAX-29 word boundaries; a segment is classified Word when it contains
// at least one alphanumeric rune.
func Words(s string) []WordSegment {
	if s == "" {
		return nil
	}
	var segs []WordSegment
	off := 0
	state := -1
	for len(s) > 0 {
		word, rest, newState := uniseg.FirstWordInString(s, state)
		kind := NonWord
		for _, r := range word {
			if unicode.IsLetter(r) || unicode.IsNumber(r) {
				kind = Word
				break
			}
		}
		segs = append(segs, WordSegment{
			Range: Range{Start: off, End: off + len(word)},
			Kind:  kind,
		})
		off += len(word)
		s = rest
		state = newState
	}
	return segs
}

// LineBreaks returns all line break opportunities in s per UAX-14,
// in ascending order. The end of the text is always included as a
// mandatory break.
func LineBreaks(s string) []LineBreak {
	if s == "" {
		return nil
	}
	var breaks []LineBreak
	off := 0
	state := -1
	for len(s) > 0 {
		cluster, rest, boundaries, newState := uniseg.StepString(s, state)
		off += len(cluster)
		switch boundaries & uniseg.MaskLine {
		case uniseg.LineCanBreak:
			breaks = append(breaks, LineBreak{Offset: off})
		case uniseg.LineMustBreak:
			breaks = append(breaks, LineBreak{Offset: off, Mandatory: true})
		}
		s = rest
		state = newState
	}
	return breaks
}

// RuneToByte converts a rune index into s to a byte offset. Indexes
// past the end of s yield len(s).
func RuneToByte(s string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	count := 0
	for off := range s {
		if count == runeIndex {
			return off
		}
		count++
	}
	return len(s)
}

// RuneCount returns the number of runes in s.
func RuneCount(s string) int {
	return utf8.RuneCountInString(s)
}
