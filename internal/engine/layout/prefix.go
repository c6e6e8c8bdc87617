package layout

import "sort"

// PrefixSums indexes line starts and vertical offsets for O(log n)
// line lookups by byte offset or y coordinate. It is rebuilt together
// with the lines it describes and holds no reference to them.
type PrefixSums struct {
	starts []int     // start byte offset per line
	ends   []int     // end byte offset per line
	tops   []float64 // y offset of each line's top
	height float64   // total stacked height
}

// BuildPrefixSums indexes lines in storage order.
func BuildPrefixSums(lines []LineBox) *PrefixSums {
	p := &PrefixSums{
		starts: make([]int, len(lines)),
		ends:   make([]int, len(lines)),
		tops:   make([]float64, len(lines)),
	}
	for i, l := range lines {
		p.starts[i] = l.Range.Start
		p.ends[i] = l.Range.End
		p.tops[i] = l.YOffset
		p.height = l.Bottom()
	}
	return p
}

// Len returns the number of indexed lines.
func (p *PrefixSums) Len() int {
	return len(p.starts)
}

// TotalHeight returns the stacked height of all lines.
func (p *PrefixSums) TotalHeight() float64 {
	return p.height
}

// StartOfLine returns the starting byte offset of line i, clamped to
// the valid line range.
func (p *PrefixSums) StartOfLine(i int) int {
	if len(p.starts) == 0 {
		return 0
	}
	if i < 0 {
		i = 0
	}
	if i >= len(p.starts) {
		i = len(p.starts) - 1
	}
	return p.starts[i]
}

// LineForOffset returns the index of the line owning the byte offset:
// the first line in storage order whose range contains it or whose end
// equals it. Offsets outside the text clamp to the first/last line.
// Returns 0 for an empty index.
func (p *PrefixSums) LineForOffset(offset int) int {
	n := len(p.starts)
	if n == 0 {
		return 0
	}
	if offset <= p.starts[0] {
		return 0
	}
	// Last line whose start is <= offset.
	i := sort.Search(n, func(j int) bool { return p.starts[j] > offset }) - 1
	// Prefer the earlier line when the offset sits exactly at its end
	// (a caret at a wrap boundary stays on the upper line).
	for i > 0 && p.ends[i-1] == offset {
		i--
	}
	return i
}

// LineForY returns the index of the line containing y, or -1 when y is
// outside the content and clamp is false. With clamp, out-of-range y
// snaps to the first or last line.
func (p *PrefixSums) LineForY(y float64, clamp bool) int {
	n := len(p.tops)
	if n == 0 {
		if clamp {
			return 0
		}
		return -1
	}
	if y < p.tops[0] {
		if clamp {
			return 0
		}
		return -1
	}
	if y >= p.height {
		if clamp {
			return n - 1
		}
		return -1
	}
	// Last line whose top is <= y.
	return sort.Search(n, func(j int) bool { return p.tops[j] > y }) - 1
}
