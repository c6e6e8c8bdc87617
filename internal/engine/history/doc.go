// Package history provides grouped undo/redo for text editing.
//
// # Operations
//
// An Operation records a single atomic edit with before/after state:
//   - The range that was modified in the original text
//   - The old and new text
//   - The selection before and after the edit
//
// Operations are pure data. Applying and inverting them is text
// manipulation only; the owner of the text decides when to relayout.
//
// # Groups
//
// Consecutive operations that form one logical user action, such as
// typing a run of characters or holding backspace, are merged into a
// Group. A Group undoes and redoes as a single unit: undo applies its
// operations' inverses in reverse order and restores the selection
// captured before the group's first operation.
//
// # Stack
//
// The Stack manages the undo and redo lists:
//
//	stack := history.NewStack(history.DefaultLimit)
//	stack.Push(op)              // merge or start a group
//	g, ok := stack.PopUndo()    // caller applies g.Inverted()
//	g, ok = stack.PopRedo()     // caller applies g.Operations
//
// Pushing a new operation clears the redo list. When the number of
// groups exceeds the configured limit, the oldest group is evicted.
//
// The Stack performs no locking; callers that share a stack across
// goroutines must serialize access externally.
package history
