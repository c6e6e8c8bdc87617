package shaping

import (
	"sort"

	"golang.org/x/text/unicode/bidi"

	"github.com/quenchtext/quench/internal/engine/segment"
)

// BidiRun is a maximal run of text with a single resolved direction.
type BidiRun struct {
	Range     segment.Range
	Direction Direction
}

// SplitRuns resolves the bidirectional runs of text per UAX-9 and
// returns them in visual order, left to right. Byte ranges are in
// logical order within each run. The empty string yields no runs; text
// that fails bidi analysis is returned as a single run of the base
// direction.
func SplitRuns(text string, base Direction) []BidiRun {
	if text == "" {
		return nil
	}
	whole := []BidiRun{{Range: segment.NewRange(0, len(text)), Direction: base}}

	def := bidi.LeftToRight
	if base == RightToLeft {
		def = bidi.RightToLeft
	}
	var p bidi.Paragraph
	if _, err := p.SetString(text, bidi.DefaultDirection(def)); err != nil {
		return whole
	}
	ord, err := p.Order()
	if err != nil || ord.NumRuns() == 0 {
		return whole
	}

	// Rune positions from the analyzer map back to byte offsets
	// through a per-rune offset table.
	byteOf := make([]int, 0, len(text)+1)
	for i := range text {
		byteOf = append(byteOf, i)
	}
	byteOf = append(byteOf, len(text))

	runs := make([]BidiRun, 0, ord.NumRuns())
	for i := 0; i < ord.NumRuns(); i++ {
		r := ord.Run(i)
		startRune, endRune := r.Pos()
		if startRune < 0 || endRune+1 > len(byteOf)-1 {
			return whole
		}
		dir := LeftToRight
		if r.Direction() == bidi.RightToLeft {
			dir = RightToLeft
		}
		runs = append(runs, BidiRun{
			Range:     segment.NewRange(byteOf[startRune], byteOf[endRune+1]),
			Direction: dir,
		})
	}

	// Normalize to logical order first, then reorder visually.
	sort.Slice(runs, func(i, j int) bool { return runs[i].Range.Start < runs[j].Range.Start })
	return reorderVisual(runs)
}

// reorderVisual reverses each maximal sequence of consecutive
// right-to-left runs, turning logical run order into visual order.
func reorderVisual(runs []BidiRun) []BidiRun {
	for i := 0; i < len(runs); {
		if runs[i].Direction != RightToLeft {
			i++
			continue
		}
		j := i
		for j < len(runs) && runs[j].Direction == RightToLeft {
			j++
		}
		for lo, hi := i, j-1; lo < hi; lo, hi = lo+1, hi-1 {
			runs[lo], runs[hi] = runs[hi], runs[lo]
		}
		i = j
	}
	return runs
}
