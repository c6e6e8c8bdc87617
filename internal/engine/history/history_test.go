package history

import (
	"testing"
	"time"

	"github.com/quenchtext/quench/internal/engine/cursor"
	"github.com/quenchtext/quench/internal/engine/segment"
)

func TestOperationKinds(t *testing.T) {
	ins := NewInsert(5, "x")
	del := NewDelete(segment.NewRange(5, 6), "x")
	rep := NewReplace(segment.NewRange(5, 6), "x", "yz")

	if !ins.IsInsert() || ins.IsDelete() || ins.IsReplace() {
		t.Error("expected pure insert")
	}
	if !del.IsDelete() || del.IsInsert() || del.IsReplace() {
		t.Error("expected pure delete")
	}
	if !rep.IsReplace() || rep.IsInsert() || rep.IsDelete() {
		t.Error("expected replace")
	}
	if got := rep.BytesDelta(); got != 1 {
		t.Errorf("expected delta 1, got %d", got)
	}
}

func TestOperationApply(t *testing.T) {
	if got := NewInsert(5, "!").Apply("Hello"); got != "Hello!" {
		t.Errorf("expected Hello!, got %q", got)
	}
	if got := NewDelete(segment.NewRange(5, 11), " World").Apply("Hello World"); got != "Hello" {
		t.Errorf("expected Hello, got %q", got)
	}
	if got := NewReplace(segment.NewRange(0, 5), "Hello", "Bye").Apply("Hello World"); got != "Bye World" {
		t.Errorf("expected Bye World, got %q", got)
	}
	// Out-of-range offsets clamp instead of panicking.
	if got := NewDelete(segment.NewRange(3, 99), "").Apply("abcd"); got != "abc" {
		t.Errorf("expected abc, got %q", got)
	}
}

func TestOperationInvertRoundTrip(t *testing.T) {
	text := "Hello World"
	op := NewReplace(segment.NewRange(6, 11), "World", "Go")
	edited := op.Apply(text)
	if edited != "Hello Go" {
		t.Fatalf("expected Hello Go, got %q", edited)
	}
	if got := op.Invert().Apply(edited); got != text {
		t.Errorf("expected round trip to %q, got %q", text, got)
	}
}

func TestOperationInvertSelections(t *testing.T) {
	op := NewInsert(5, "!").WithSelection(cursor.Collapsed(5), cursor.Collapsed(6))
	inv := op.Invert()
	if !inv.SelBefore.Equals(cursor.Collapsed(6)) || !inv.SelAfter.Equals(cursor.Collapsed(5)) {
		t.Errorf("expected selections swapped, got %v / %v", inv.SelBefore, inv.SelAfter)
	}
}

func TestGroupInverted(t *testing.T) {
	g := newGroup(NewInsert(0, "a"))
	g.absorb(NewInsert(1, "b"))
	inv := g.Inverted()
	if len(inv) != 2 {
		t.Fatalf("expected 2 inverted ops, got %d", len(inv))
	}
	// Reverse order: the second insert is undone first.
	if inv[0].Range.Start != 1 {
		t.Errorf("expected first inverse at offset 1, got %d", inv[0].Range.Start)
	}
	text := "ab"
	for _, op := range inv {
		text = op.Apply(text)
	}
	if text != "" {
		t.Errorf("expected empty text after undo, got %q", text)
	}
}

func TestPushGroupsAdjacentInserts(t *testing.T) {
	s := NewStack(0)
	s.Push(NewInsert(0, "a").WithSelection(cursor.Collapsed(0), cursor.Collapsed(1)))
	s.Push(NewInsert(1, "b").WithSelection(cursor.Collapsed(1), cursor.Collapsed(2)))
	s.Push(NewInsert(2, "c").WithSelection(cursor.Collapsed(2), cursor.Collapsed(3)))

	if s.UndoCount() != 1 {
		t.Fatalf("expected 1 group, got %d", s.UndoCount())
	}
	g, ok := s.PopUndo()
	if !ok {
		t.Fatal("expected undo group")
	}
	if len(g.Operations) != 3 {
		t.Errorf("expected 3 operations, got %d", len(g.Operations))
	}
	if !g.SelectionBefore().Equals(cursor.Collapsed(0)) {
		t.Errorf("expected selection before at 0, got %v", g.SelectionBefore())
	}
	if !g.SelectionAfter().Equals(cursor.Collapsed(3)) {
		t.Errorf("expected selection after at 3, got %v", g.SelectionAfter())
	}
}

func TestPushWithoutGrouping(t *testing.T) {
	s := NewStack(0)
	s.SetGrouping(false)
	s.Push(NewInsert(0, "a"))
	s.Push(NewInsert(1, "b"))
	s.Push(NewInsert(2, "c"))

	if s.UndoCount() != 3 {
		t.Errorf("expected 3 groups, got %d", s.UndoCount())
	}
}

func TestDisableGroupingSealsCurrentGroup(t *testing.T) {
	s := NewStack(0)
	s.Push(NewInsert(0, "a"))
	s.SetGrouping(false)
	s.SetGrouping(true)
	// The pre-disable group is sealed; an otherwise mergeable insert
	// starts a new one.
	s.Push(NewInsert(1, "b"))
	if s.UndoCount() != 2 {
		t.Errorf("expected 2 groups after seal, got %d", s.UndoCount())
	}
	// Grouping resumes within the new group.
	s.Push(NewInsert(2, "c"))
	if s.UndoCount() != 2 {
		t.Errorf("expected later inserts to merge again, got %d groups", s.UndoCount())
	}
}

func TestPushNonAdjacentInsertsSplit(t *testing.T) {
	s := NewStack(0)
	s.Push(NewInsert(0, "a"))
	s.Push(NewInsert(5, "b"))
	if s.UndoCount() != 2 {
		t.Errorf("expected 2 groups for non-adjacent inserts, got %d", s.UndoCount())
	}
}

func TestPushNewlineSplitsGroup(t *testing.T) {
	s := NewStack(0)
	s.Push(NewInsert(0, "a"))
	s.Push(NewInsert(1, "\n"))
	s.Push(NewInsert(2, "b"))
	if s.UndoCount() != 3 {
		t.Errorf("expected newline to split groups, got %d", s.UndoCount())
	}
}

func TestPushGroupsBackspaces(t *testing.T) {
	// Backspacing "abc" from the end: delete [2:3), then [1:2), then [0:1).
	s := NewStack(0)
	s.Push(NewDelete(segment.NewRange(2, 3), "c"))
	s.Push(NewDelete(segment.NewRange(1, 2), "b"))
	s.Push(NewDelete(segment.NewRange(0, 1), "a"))

	if s.UndoCount() != 1 {
		t.Fatalf("expected 1 group, got %d", s.UndoCount())
	}
	g, _ := s.PopUndo()
	text := ""
	for _, op := range g.Inverted() {
		text = op.Apply(text)
	}
	if text != "abc" {
		t.Errorf("expected abc restored, got %q", text)
	}
}

func TestPushTimeWindow(t *testing.T) {
	s := NewStack(0)
	op1 := NewInsert(0, "a")
	op2 := NewInsert(1, "b")
	op2.Timestamp = op1.Timestamp.Add(5 * time.Second)
	s.Push(op1)
	s.Push(op2)
	if s.UndoCount() != 2 {
		t.Errorf("expected time gap to split groups, got %d", s.UndoCount())
	}

	s.Clear()
	s.SetGroupWindow(0)
	s.Push(op1)
	s.Push(op2)
	if s.UndoCount() != 1 {
		t.Errorf("expected zero window to disable time check, got %d", s.UndoCount())
	}
}

func TestUndoRedoFlow(t *testing.T) {
	s := NewStack(0)
	s.SetGrouping(false)
	s.Push(NewInsert(0, "a"))
	s.Push(NewInsert(1, "b"))

	if !s.CanUndo() || s.CanRedo() {
		t.Fatal("expected undo available, redo empty")
	}
	g, ok := s.PopUndo()
	if !ok || g.last().NewText != "b" {
		t.Fatalf("expected most recent group first, got %v", g)
	}
	if !s.CanRedo() {
		t.Fatal("expected redo available after undo")
	}
	g2, ok := s.PopRedo()
	if !ok || g2 != g {
		t.Error("expected redo to return the undone group")
	}
	if s.UndoCount() != 2 || s.RedoCount() != 0 {
		t.Errorf("expected stacks restored, got %d/%d", s.UndoCount(), s.RedoCount())
	}
}

func TestPushClearsRedo(t *testing.T) {
	s := NewStack(0)
	s.Push(NewInsert(0, "a"))
	s.PopUndo()
	s.Push(NewInsert(0, "b"))
	if s.CanRedo() {
		t.Error("expected push to clear redo list")
	}
}

func TestLimitEvictsOldest(t *testing.T) {
	s := NewStack(2)
	s.SetGrouping(false)
	s.Push(NewInsert(0, "a"))
	s.Push(NewInsert(10, "b"))
	s.Push(NewInsert(20, "c"))
	if s.UndoCount() != 2 {
		t.Fatalf("expected 2 groups after eviction, got %d", s.UndoCount())
	}
	g, _ := s.PopUndo()
	if g.first().NewText != "c" {
		t.Errorf("expected newest group kept, got %q", g.first().NewText)
	}
}

func TestSetLimitShrinks(t *testing.T) {
	s := NewStack(0)
	s.SetGrouping(false)
	for i := 0; i < 5; i++ {
		s.Push(NewInsert(i*10, "x"))
	}
	s.SetLimit(3)
	if s.UndoCount() != 3 {
		t.Errorf("expected 3 groups after SetLimit, got %d", s.UndoCount())
	}
}
