package shaping

import (
	"github.com/quenchtext/quench/internal/engine/segment"
)

// Direction is the visual direction of a run of text.
type Direction uint8

const (
	// LeftToRight runs render with ascending x for ascending byte offset.
	LeftToRight Direction = iota
	// RightToLeft runs render with descending x for ascending byte offset.
	RightToLeft
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	if d == RightToLeft {
		return "rtl"
	}
	return "ltr"
}

// Face identifies the font face and size used for shaping.
type Face struct {
	Name string
	Size float64
}

// DefaultFace returns the face used when no configuration is supplied.
func DefaultFace() Face {
	return Face{Name: "monospace", Size: 16}
}

// Metrics are the vertical metrics of a face at a given size,
// in pixels.
type Metrics struct {
	Ascent  float64
	Descent float64
	LineGap float64
}

// LineHeight returns the full height of a line box.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Cluster is an indivisible unit of shaped text. Its range covers one
// or more grapheme clusters of the source text (more than one when the
// shaper formed a ligature). Advance is the cluster's horizontal
// extent in pixels.
type Cluster struct {
	Range   segment.Range
	Advance float64
}

// Run is a shaped directional run. Clusters are stored in logical
// (byte) order regardless of direction; Width is the sum of their
// advances.
type Run struct {
	Range     segment.Range
	Direction Direction
	Width     float64
	Clusters  []Cluster
}

// ClusterAt returns the index of the cluster containing offset, or -1
// if offset is outside the run's range.
func (r Run) ClusterAt(offset int) int {
	for i, c := range r.Clusters {
		if c.Range.Contains(offset) {
			return i
		}
	}
	return -1
}

// Shaper maps directional runs of text to positioned clusters.
// Implementations must be safe for concurrent use.
type Shaper interface {
	// ShapeRun shapes text[rng.Start:rng.End] as a single run of the
	// given direction. Cluster ranges in the result are absolute byte
	// offsets into text.
	ShapeRun(text string, rng segment.Range, face Face, dir Direction) Run

	// Metrics returns the vertical metrics of face.
	Metrics(face Face) Metrics
}
