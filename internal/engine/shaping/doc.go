// Package shaping converts text into positioned glyph clusters.
//
// The package defines the Shaper interface, which maps a directional
// run of text to a Run of clusters with horizontal advances, and a
// bidi splitter that resolves a paragraph into directional runs in
// visual order. Cluster boundaries follow grapheme clusters but a
// shaper may merge several graphemes into one cluster (ligatures).
//
// MonoShaper is a deterministic fixed-advance shaper used by tests
// and by callers that do not load real fonts.
package shaping
