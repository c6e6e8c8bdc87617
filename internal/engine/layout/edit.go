package layout

import (
	"github.com/quenchtext/quench/internal/engine/cursor"
	"github.com/quenchtext/quench/internal/engine/history"
	"github.com/quenchtext/quench/internal/engine/segment"
)

// record pushes op with the given selections, applies it to the text,
// and relayouts.
func (l *TextLayout) record(op *history.Operation, before, after cursor.Selection) {
	op.WithSelection(before, after)
	l.stack.Push(op)
	l.text = op.Apply(l.text)
	l.relayout()
}

// InsertString inserts s at offset and returns the cursor position
// after the inserted text. Out-of-range offsets clamp; an empty string
// is a no-op returning the snapped offset.
func (l *TextLayout) InsertString(offset int, s string) int {
	offset = l.snap(offset)
	if s == "" {
		return offset
	}
	after := offset + len(s)
	l.record(history.NewInsert(offset, s), cursor.Collapsed(offset), cursor.Collapsed(after))
	return after
}

// InsertChar inserts a single rune at offset and returns the cursor
// position after it.
func (l *TextLayout) InsertChar(offset int, r rune) int {
	return l.InsertString(offset, string(r))
}

// InsertNewline inserts a line break at offset.
func (l *TextLayout) InsertNewline(offset int) int {
	return l.InsertString(offset, "\n")
}

// InsertTab inserts a tab at offset.
func (l *TextLayout) InsertTab(offset int) int {
	return l.InsertString(offset, "\t")
}

// ReplaceSelection replaces the selected range with s and returns the
// cursor position after the inserted text. A collapsed selection
// degrades to a plain insert at the collapsed point.
func (l *TextLayout) ReplaceSelection(sel cursor.Selection, s string) int {
	r := l.snapRange(sel.Range())
	if r.IsEmpty() {
		return l.InsertString(r.Start, s)
	}
	after := r.Start + len(s)
	op := history.NewReplace(r, r.Slice(l.text), s)
	l.record(op, sel.Clamp(len(l.text)), cursor.Collapsed(after))
	return after
}

// DeleteBackward deletes one grapheme cluster before offset and
// returns the new cursor position. At the start of text it is a no-op.
func (l *TextLayout) DeleteBackward(offset int) int {
	offset = l.snap(offset)
	if offset == 0 {
		return 0
	}
	start := segment.PrevBoundary(l.text, offset)
	return l.deleteRange(segment.NewRange(start, offset), offset)
}

// DeleteForward deletes one grapheme cluster after offset and returns
// the cursor position. At the end of text it is a no-op.
func (l *TextLayout) DeleteForward(offset int) int {
	offset = l.snap(offset)
	if offset == len(l.text) {
		return offset
	}
	end := segment.NextBoundary(l.text, offset)
	return l.deleteRange(segment.NewRange(offset, end), offset)
}

// DeleteWordBackward deletes from the previous word boundary to offset.
func (l *TextLayout) DeleteWordBackward(offset int) int {
	offset = l.snap(offset)
	start := cursor.MoveLeftWord(l.text, offset)
	if start == offset {
		return offset
	}
	return l.deleteRange(segment.NewRange(start, offset), offset)
}

// DeleteWordForward deletes from offset to the next word boundary.
func (l *TextLayout) DeleteWordForward(offset int) int {
	offset = l.snap(offset)
	end := cursor.MoveRightWord(l.text, offset)
	if end == offset {
		return offset
	}
	return l.deleteRange(segment.NewRange(offset, end), offset)
}

// DeleteSelection deletes the selected range and returns the cursor
// position at its start. A collapsed selection is a no-op.
func (l *TextLayout) DeleteSelection(sel cursor.Selection) int {
	r := l.snapRange(sel.Range())
	if r.IsEmpty() {
		return r.Start
	}
	op := history.NewDelete(r, r.Slice(l.text))
	l.record(op, sel.Clamp(len(l.text)), cursor.Collapsed(r.Start))
	return r.Start
}

// DeleteLine deletes the visual line owning offset including its
// trailing newline, and returns the cursor at the deletion point.
func (l *TextLayout) DeleteLine(offset int) int {
	line, _ := l.LineAtOffset(offset)
	r := line.Range
	if r.End < len(l.text) && l.text[r.End] == '\n' {
		r.End++
	}
	if r.IsEmpty() {
		return r.Start
	}
	return l.deleteRange(r, l.snap(offset))
}

// deleteRange removes r from the text, recording the cursor that
// initiated the deletion.
func (l *TextLayout) deleteRange(r segment.Range, before int) int {
	op := history.NewDelete(r, r.Slice(l.text))
	l.record(op, cursor.Collapsed(before), cursor.Collapsed(r.Start))
	return r.Start
}
