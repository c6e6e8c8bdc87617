package history

import (
	"time"

	"github.com/quenchtext/quench/internal/engine/cursor"
	"github.com/quenchtext/quench/internal/engine/segment"
)

// Operation represents a single undoable edit.
// It captures all information needed to undo or redo the edit.
type Operation struct {
	// Edit data
	Range   segment.Range // Range that was modified (in the original text)
	OldText string        // Text that was replaced (for undo)
	NewText string        // Text that was inserted (for redo)

	// Selection state for restore
	SelBefore cursor.Selection
	SelAfter  cursor.Selection

	// Metadata
	Timestamp time.Time
}

// NewInsert creates an operation for an insertion at offset.
func NewInsert(offset int, text string) *Operation {
	return &Operation{
		Range:     segment.Range{Start: offset, End: offset},
		NewText:   text,
		Timestamp: time.Now(),
	}
}

// NewDelete creates an operation for a deletion of r.
func NewDelete(r segment.Range, deletedText string) *Operation {
	return &Operation{
		Range:     r,
		OldText:   deletedText,
		Timestamp: time.Now(),
	}
}

// NewReplace creates an operation for a replacement of r.
func NewReplace(r segment.Range, oldText, newText string) *Operation {
	return &Operation{
		Range:     r,
		OldText:   oldText,
		NewText:   newText,
		Timestamp: time.Now(),
	}
}

// WithSelection sets the selection state and returns the operation for
// chaining.
func (op *Operation) WithSelection(before, after cursor.Selection) *Operation {
	op.SelBefore = before
	op.SelAfter = after
	return op
}

// IsInsert returns true if this operation is a pure insertion.
func (op *Operation) IsInsert() bool {
	return op.Range.IsEmpty() && len(op.NewText) > 0
}

// IsDelete returns true if this operation is a pure deletion.
func (op *Operation) IsDelete() bool {
	return !op.Range.IsEmpty() && len(op.NewText) == 0
}

// IsReplace returns true if this operation replaces text.
func (op *Operation) IsReplace() bool {
	return !op.Range.IsEmpty() && len(op.NewText) > 0
}

// IsNoop returns true if this operation makes no changes.
func (op *Operation) IsNoop() bool {
	return op.Range.IsEmpty() && len(op.NewText) == 0
}

// BytesDelta returns the change in text length.
func (op *Operation) BytesDelta() int {
	return len(op.NewText) - op.Range.Len()
}

// NewRange returns the range the new text occupies after the operation.
func (op *Operation) NewRange() segment.Range {
	return segment.Range{
		Start: op.Range.Start,
		End:   op.Range.Start + len(op.NewText),
	}
}

// Invert returns an operation that undoes this one.
func (op *Operation) Invert() *Operation {
	return &Operation{
		Range:     op.NewRange(),
		OldText:   op.NewText,
		NewText:   op.OldText,
		SelBefore: op.SelAfter,
		SelAfter:  op.SelBefore,
		Timestamp: op.Timestamp,
	}
}

// Apply replaces the operation's range in text with its new text.
// The range is clamped into [0, len(text)].
func (op *Operation) Apply(text string) string {
	start, end := op.Range.Start, op.Range.End
	if start < 0 {
		start = 0
	}
	if start > len(text) {
		start = len(text)
	}
	if end < start {
		end = start
	}
	if end > len(text) {
		end = len(text)
	}
	return text[:start] + op.NewText + text[end:]
}
