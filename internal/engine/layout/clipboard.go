package layout

import (
	"github.com/quenchtext/quench/internal/engine/cursor"
	"github.com/quenchtext/quench/internal/platform/clipboard"
)

// Copy writes the selected text to the clipboard unmodified. A
// collapsed selection is a no-op.
func (l *TextLayout) Copy(sel cursor.Selection) error {
	r := l.snapRange(sel.Range())
	if r.IsEmpty() {
		return nil
	}
	return l.clip.WriteText(r.Slice(l.text))
}

// Cut copies the selected text and deletes it, returning the cursor
// position. On clipboard failure the text is left unmodified and the
// cursor stays at the selection's active end.
func (l *TextLayout) Cut(sel cursor.Selection) (int, error) {
	r := l.snapRange(sel.Range())
	if r.IsEmpty() {
		return r.Start, nil
	}
	if err := l.clip.WriteText(r.Slice(l.text)); err != nil {
		return l.snap(sel.Active), err
	}
	return l.DeleteSelection(sel), nil
}

// Paste inserts the clipboard text at offset with line endings
// normalized to LF, returning the cursor after the inserted text. On
// clipboard failure the text is left unmodified.
func (l *TextLayout) Paste(offset int) (int, error) {
	text, err := l.clip.ReadText()
	if err != nil {
		return l.snap(offset), err
	}
	return l.InsertString(offset, clipboard.NormalizeLineEndings(text)), nil
}

// PasteReplaceSelection replaces the selection with the normalized
// clipboard text, returning the cursor after the inserted text.
func (l *TextLayout) PasteReplaceSelection(sel cursor.Selection) (int, error) {
	text, err := l.clip.ReadText()
	if err != nil {
		return l.snap(sel.Active), err
	}
	return l.ReplaceSelection(sel, clipboard.NormalizeLineEndings(text)), nil
}
