package shaping

import (
	"github.com/quenchtext/quench/internal/engine/segment"
)

// cellFraction is the advance of a single monospace cell as a
// fraction of the font size.
const cellFraction = 0.6

// MonoShaper is a fixed-advance shaper. Every grapheme cluster becomes
// one shaped cluster whose advance is a multiple of the cell width,
// with wide (CJK, emoji) clusters taking two cells. It needs no font
// data, which makes layout results deterministic across platforms.
type MonoShaper struct{}

// NewMonoShaper returns a shaper with fixed per-cell advances.
func NewMonoShaper() *MonoShaper {
	return &MonoShaper{}
}

// Metrics returns fixed metrics proportional to the face size.
func (s *MonoShaper) Metrics(face Face) Metrics {
	return Metrics{
		Ascent:  face.Size * 0.8,
		Descent: face.Size * 0.2,
		LineGap: face.Size * 0.2,
	}
}

// ShapeRun shapes text[rng.Start:rng.End] with one cluster per
// grapheme.
func (s *MonoShaper) ShapeRun(text string, rng segment.Range, face Face, dir Direction) Run {
	cell := face.Size * cellFraction
	sub := rng.Slice(text)
	starts, widths := segment.GraphemeWidths(sub)

	run := Run{
		Range:     rng,
		Direction: dir,
		Clusters:  make([]Cluster, 0, len(starts)),
	}
	for i, start := range starts {
		end := len(sub)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		cells := widths[i]
		if cells < 1 {
			cells = 1
		}
		adv := cell * float64(cells)
		run.Clusters = append(run.Clusters, Cluster{
			Range:   segment.NewRange(rng.Start+start, rng.Start+end),
			Advance: adv,
		})
		run.Width += adv
	}
	return run
}
