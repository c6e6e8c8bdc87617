package layout

import (
	"testing"

	"github.com/quenchtext/quench/internal/engine/cursor"
)

func TestSelectionRectsSingleLine(t *testing.T) {
	l, _ := newTestLayout(t, "Hello World")
	rects := l.SelectionRects(cursor.NewSelection(6, 11))
	if len(rects) != 1 {
		t.Fatalf("expected 1 rect, got %d", len(rects))
	}
	r := rects[0]
	if r.X != 36 || r.Width != 30 {
		t.Errorf("expected rect x36 w30, got %v", r)
	}
	if r.Y != 1 || r.Height != 10 {
		t.Errorf("expected rect y1 h10, got %v", r)
	}
}

func TestSelectionRectsBackwardEqualsForward(t *testing.T) {
	l, _ := newTestLayout(t, "Hello World")
	fwd := l.SelectionRects(cursor.NewSelection(2, 8))
	back := l.SelectionRects(cursor.NewSelection(8, 2))
	if len(fwd) != len(back) {
		t.Fatalf("expected equal rect counts, got %d/%d", len(fwd), len(back))
	}
	for i := range fwd {
		if fwd[i] != back[i] {
			t.Errorf("rect %d: expected %v, got %v", i, fwd[i], back[i])
		}
	}
}

func TestSelectionRectsMultiLine(t *testing.T) {
	// A selection across the newline also covers the empty line row at
	// the newline, as a zero-width rect.
	l, _ := newTestLayout(t, "Hello\nWorld")
	rects := l.SelectionRects(cursor.NewSelection(3, 8))
	if len(rects) != 3 {
		t.Fatalf("expected 3 rects, got %d", len(rects))
	}
	if rects[0].X != 18 || rects[0].Width != 12 {
		t.Errorf("expected first rect x18 w12, got %v", rects[0])
	}
	if rects[1].Width != 0 || rects[1].Y != 13 {
		t.Errorf("expected zero-width newline rect at y13, got %v", rects[1])
	}
	if rects[2].X != 0 || rects[2].Width != 12 {
		t.Errorf("expected last rect x0 w12, got %v", rects[2])
	}
	if rects[2].Y != 25 {
		t.Errorf("expected last rect y25, got %v", rects[2])
	}
}

func TestSelectionRectsEmptyLine(t *testing.T) {
	// "a\n\nb" lays out as [0,1), [1,1), [2,2), [2,2), [3,4); the three
	// middle rows select as zero-width rects.
	l, _ := newTestLayout(t, "a\n\nb")
	rects := l.SelectionRects(cursor.NewSelection(0, 4))
	if len(rects) != 5 {
		t.Fatalf("expected 5 rects, got %d", len(rects))
	}
	for i := 1; i <= 3; i++ {
		if rects[i].Width != 0 {
			t.Errorf("expected zero-width rect %d for the empty row, got %v", i, rects[i])
		}
	}
}

func TestSelectionRectsCollapsed(t *testing.T) {
	l, _ := newTestLayout(t, "Hello")
	if rects := l.SelectionRects(cursor.Collapsed(3)); rects != nil {
		t.Errorf("expected no rects for a collapsed selection, got %v", rects)
	}
}

func TestSelectWordAt(t *testing.T) {
	l, _ := newTestLayout(t, "Hello World")
	cases := []struct {
		offset int
		want   cursor.Selection
	}{
		{7, cursor.NewSelection(6, 11)},  // inside a word
		{6, cursor.NewSelection(6, 11)},  // at a word start
		{5, cursor.NewSelection(0, 5)},   // at a word's exclusive end
		{11, cursor.NewSelection(6, 11)}, // end of text after a word
	}
	for _, c := range cases {
		if got := l.SelectWordAt(c.offset); !got.Equals(c.want) {
			t.Errorf("SelectWordAt(%d): expected %v, got %v", c.offset, c.want, got)
		}
	}
}

func TestSelectWordAtWhitespace(t *testing.T) {
	l, _ := newTestLayout(t, "a   b")
	got := l.SelectWordAt(2)
	if !got.Equals(cursor.NewSelection(1, 4)) {
		t.Errorf("expected the whitespace run [1,4), got %v", got)
	}
}

func TestSelectLineAt(t *testing.T) {
	l, _ := newTestLayout(t, "one\ntwo\nthree")
	got := l.SelectLineAt(5)
	if !got.Equals(cursor.NewSelection(4, 7)) {
		t.Errorf("expected line [4,7), got %v", got)
	}
}

func TestSelectParagraphAt(t *testing.T) {
	l, _ := newTestLayout(t, "one\ntwo\nthree")
	got := l.SelectParagraphAt(5)
	if !got.Equals(cursor.NewSelection(4, 7)) {
		t.Errorf("expected paragraph [4,7), got %v", got)
	}
	got = l.SelectParagraphAt(0)
	if !got.Equals(cursor.NewSelection(0, 3)) {
		t.Errorf("expected paragraph [0,3), got %v", got)
	}
	got = l.SelectParagraphAt(10)
	if !got.Equals(cursor.NewSelection(8, 13)) {
		t.Errorf("expected paragraph [8,13), got %v", got)
	}
}

func TestStartWordSelection(t *testing.T) {
	l, _ := newTestLayout(t, "Hello World")
	sel, ok := l.StartWordSelection(Point{X: 40, Y: 5})
	if !ok {
		t.Fatal("expected a hit")
	}
	if !sel.Equals(cursor.NewSelection(6, 11)) {
		t.Errorf("expected word [6,11), got %v", sel)
	}
	if _, ok := l.StartWordSelection(Point{X: 0, Y: 99}); ok {
		t.Error("expected strict miss below the text")
	}
}

func TestStartLineSelection(t *testing.T) {
	l, _ := newTestLayout(t, "one\ntwo")
	sel, ok := l.StartLineSelection(Point{X: 2, Y: 30})
	if !ok {
		t.Fatal("expected a hit")
	}
	if !sel.Equals(cursor.NewSelection(4, 7)) {
		t.Errorf("expected line [4,7), got %v", sel)
	}
	// The zero-width newline row refuses a strict gesture start.
	if _, ok := l.StartLineSelection(Point{X: 2, Y: 15}); ok {
		t.Error("expected strict miss on the empty row")
	}
}

func TestExtendWordSelectionForward(t *testing.T) {
	l, _ := newTestLayout(t, "one two three")
	sel := l.SelectWordAt(1) // [0,3)
	got := l.ExtendWordSelection(sel, Point{X: 9 * 6, Y: 5})
	if !got.Equals(cursor.NewSelection(0, 13)) {
		t.Errorf("expected [0,13), got %v", got)
	}
}

func TestExtendWordSelectionBackward(t *testing.T) {
	l, _ := newTestLayout(t, "one two three")
	sel := l.SelectWordAt(9) // [8,13)
	got := l.ExtendWordSelection(sel, Point{X: 1, Y: 5})
	if got.Anchor != 13 || got.Active != 0 {
		t.Errorf("expected 13<-0, got %v", got)
	}
}

func TestExtendWordSelectionInsideAnchorUnit(t *testing.T) {
	l, _ := newTestLayout(t, "one two three")
	sel := l.SelectWordAt(5) // [4,7)
	got := l.ExtendWordSelection(sel, Point{X: 5 * 6, Y: 5})
	if !got.Equals(sel) {
		t.Errorf("expected selection unchanged, got %v", got)
	}
}

func TestExtendLineSelection(t *testing.T) {
	l, _ := newTestLayout(t, "one\ntwo\nthree")
	sel := l.SelectLineAt(0) // [0,3)
	got := l.ExtendLineSelection(sel, Point{X: 2, Y: 50})
	if !got.Equals(cursor.NewSelection(0, 13)) {
		t.Errorf("expected [0,13), got %v", got)
	}
}

func TestExtendSelectionWithMove(t *testing.T) {
	l, _ := newTestLayout(t, "Hello World")
	sel := cursor.Collapsed(6)
	sel = ExtendSelection(sel, func(off int) int {
		return cursor.MoveRightWord(l.Text(), off)
	})
	if !sel.Equals(cursor.NewSelection(6, 11)) {
		t.Errorf("expected [6,11), got %v", sel)
	}
}
