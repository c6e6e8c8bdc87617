// Package layout turns text into positioned line boxes and implements
// the editing surface on top of them.
//
// The paragraph layout function Compute is pure: given text, a shaper,
// and Params it produces a slice of LineBox values. TextLayout is the
// stateful wrapper owning the text buffer; every mutation edits the
// buffer, records an undo operation, and rebuilds the layout wholesale.
// There is no incremental reflow.
//
// Offsets are UTF-8 byte offsets, snapped to grapheme cluster
// boundaries before use as caret positions. Line ranges never include
// the newline byte that ends a paragraph; an empty LineBox follows
// every newline so consecutive newlines produce visible blank lines.
//
// Runs within a LineBox are stored in visual order with BiDi resolved
// at layout time. Geometry code walks this flat list and only mirrors
// the X coordinate inside right-to-left runs.
//
// TextLayout is exclusively owned by its caller and performs no
// locking; callers needing concurrent access must serialize externally.
package layout
