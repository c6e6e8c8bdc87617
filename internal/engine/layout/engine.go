package layout

import (
	"github.com/quenchtext/quench/internal/engine/segment"
	"github.com/quenchtext/quench/internal/engine/shaping"
)

// Compute lays text out into line boxes. It is a pure function of its
// inputs: the mutation layer calls it after every edit instead of
// reflowing in place.
//
// Text splits on '\n' into paragraphs; the newline byte itself belongs
// to no line. Every newline is followed by a synthetic empty LineBox
// anchored at the newline's offset, preserving vertical rhythm, and
// empty text still produces one empty LineBox so an empty document has
// a caret row.
func Compute(text string, shaper shaping.Shaper, p Params) []LineBox {
	m := shaper.Metrics(p.Face)
	lineHeight := m.Ascent + m.Descent
	if p.LineHeight > lineHeight {
		lineHeight = p.LineHeight
	}
	lineHeight += m.LineGap
	leading := lineHeight - m.Ascent - m.Descent
	if leading < 0 {
		leading = 0
	}

	var lines []LineBox
	y := 0.0
	emit := func(l LineBox) {
		l.Height = lineHeight
		l.Ascent = m.Ascent
		l.Descent = m.Descent
		l.Leading = leading
		l.Baseline = leading/2 + m.Ascent
		l.YOffset = y
		y += lineHeight
		lines = append(lines, l)
	}

	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '\n' {
			continue
		}
		for _, l := range layoutParagraph(text, segment.NewRange(start, i), shaper, p) {
			emit(l)
		}
		// Synthetic empty line after the newline.
		emit(LineBox{Range: segment.NewRange(i, i)})
		start = i + 1
	}
	for _, l := range layoutParagraph(text, segment.NewRange(start, len(text)), shaper, p) {
		emit(l)
	}
	return lines
}

// layoutParagraph breaks one newline-free paragraph into lines
// according to the wrap policy.
func layoutParagraph(text string, para segment.Range, shaper shaping.Shaper, p Params) []LineBox {
	if para.IsEmpty() {
		return []LineBox{{Range: para}}
	}
	if p.Wrap == NoWrap || p.MaxWidth <= 0 {
		return []LineBox{shapeLine(text, para, shaper, p)}
	}
	if p.Wrap == BreakAll {
		return wrapGraphemes(text, para, shaper, p)
	}
	return wrapWords(text, para, shaper, p)
}

// wrapWords greedily extends each line to the furthest break
// opportunity whose shaped width fits MaxWidth. A chunk with no
// fitting boundary falls back to grapheme packing.
func wrapWords(text string, para segment.Range, shaper shaping.Shaper, p Params) []LineBox {
	breaks := segment.LineBreaks(para.Slice(text))
	var lines []LineBox
	pos := para.Start
	for pos < para.End {
		fit := -1
		next := -1
		for _, b := range breaks {
			end := para.Start + b.Offset
			if end <= pos {
				continue
			}
			if next < 0 {
				next = end
			}
			if measureWidth(text, segment.NewRange(pos, end), shaper, p) <= p.MaxWidth {
				fit = end
			} else {
				break
			}
		}
		switch {
		case fit >= 0:
			lines = append(lines, shapeLine(text, segment.NewRange(pos, fit), shaper, p))
			pos = fit
		case next >= 0:
			// The first chunk alone overflows; pack graphemes.
			end := packGraphemes(text, segment.NewRange(pos, next), shaper, p)
			lines = append(lines, shapeLine(text, segment.NewRange(pos, end), shaper, p))
			pos = end
		default:
			// No break opportunities remain; take the rest.
			lines = append(lines, shapeLine(text, segment.NewRange(pos, para.End), shaper, p))
			pos = para.End
		}
	}
	return lines
}

// wrapGraphemes packs grapheme clusters greedily, ignoring word
// boundaries.
func wrapGraphemes(text string, para segment.Range, shaper shaping.Shaper, p Params) []LineBox {
	var lines []LineBox
	pos := para.Start
	for pos < para.End {
		end := packGraphemes(text, segment.NewRange(pos, para.End), shaper, p)
		lines = append(lines, shapeLine(text, segment.NewRange(pos, end), shaper, p))
		pos = end
	}
	return lines
}

// packGraphemes returns the end offset of the longest prefix of rng
// whose shaped cluster widths sum to at most MaxWidth. It always
// consumes at least one cluster, so progress is guaranteed even when a
// single cluster exceeds the wrap width.
func packGraphemes(text string, rng segment.Range, shaper shaping.Shaper, p Params) int {
	run := shaper.ShapeRun(text, rng, p.Face, shaping.LeftToRight)
	if len(run.Clusters) == 0 {
		return rng.End
	}
	width := 0.0
	end := run.Clusters[0].Range.End
	for i, c := range run.Clusters {
		width += c.Advance
		if width > p.MaxWidth && i > 0 {
			break
		}
		end = c.Range.End
		if width > p.MaxWidth {
			break
		}
	}
	return end
}

// measureWidth returns the shaped width of text[rng]. Re-shaping the
// same slice must reproduce the same width; determinism of the shaper
// is part of its contract.
func measureWidth(text string, rng segment.Range, shaper shaping.Shaper, p Params) float64 {
	width := 0.0
	for _, r := range splitLineRuns(text, rng, p.BaseDirection) {
		width += shaper.ShapeRun(text, r.Range, p.Face, r.Direction).Width
	}
	return width
}

// shapeLine shapes one line's text into runs in visual order.
func shapeLine(text string, rng segment.Range, shaper shaping.Shaper, p Params) LineBox {
	line := LineBox{Range: rng}
	for _, r := range splitLineRuns(text, rng, p.BaseDirection) {
		run := shaper.ShapeRun(text, r.Range, p.Face, r.Direction)
		line.Runs = append(line.Runs, run)
		line.Width += run.Width
	}
	return line
}

// splitLineRuns resolves BiDi runs for the line slice, shifting the
// relative ranges to absolute text offsets.
func splitLineRuns(text string, rng segment.Range, base shaping.Direction) []shaping.BidiRun {
	runs := shaping.SplitRuns(rng.Slice(text), base)
	for i := range runs {
		runs[i].Range.Start += rng.Start
		runs[i].Range.End += rng.Start
	}
	return runs
}
