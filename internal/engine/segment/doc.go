// Package segment provides Unicode text segmentation for the layout
// and editing engine. It wraps the rivo/uniseg segmenter to answer the
// three questions the engine keeps asking about a string:
//
//   - Where are the grapheme cluster boundaries? (cursor positions,
//     backspace/delete units, wrap fallback granularity)
//   - Where are the word segments, and which of them are "words" as
//     opposed to whitespace/punctuation runs? (word movement,
//     double-click selection, Ctrl+Backspace)
//   - Where may a line legally break? (UAX-14 line break opportunities
//     consumed by the word-wrap pass)
//
// All offsets in this package are byte offsets into the string that was
// segmented. Functions never panic on out-of-range offsets; they clamp.
package segment
