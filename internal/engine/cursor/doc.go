// Package cursor provides cursor and selection primitives for text
// editing.
//
// The cursor package handles:
//
//   - Cursor positions as byte offsets snapped to grapheme boundaries
//   - Text selections with the anchor/active model via Selection
//   - Pure horizontal movement (by grapheme cluster, by word)
//
// Selection Model:
//
// Selections use an anchor/active model where:
//   - Anchor: the position where the selection started
//   - Active: the moving end (where typing would occur)
//
// When Anchor == Active, the selection represents just a cursor with no
// selected text. The selection can extend forward (active > anchor) or
// backward (active < anchor), preserving the user's selection direction.
//
// Movement functions are pure: they take the text and an offset and
// return a new offset. Vertical movement and visual line bounds depend
// on geometry and live in the layout package.
//
// Basic usage:
//
//	sel := cursor.Collapsed(10)               // Cursor at offset 10
//	sel = sel.Extend(20)                      // Select from 10 to 20
//	off := cursor.MoveRightWord(text, sel.Active)
//	sel = sel.Extend(off)
//
// Thread Safety:
//
// Position and Selection are immutable value types and safe for
// concurrent use. The movement functions read only their arguments.
package cursor
