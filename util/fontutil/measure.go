package fontutil

import (
	"image"
	"strings"

	"golang.org/x/image/math/fixed"
)

var TabWidth = 8 // n times the space glyph

// Width of a single line of text.
func (ff *FontFace) TextWidth(s string) int {
	var w fixed.Int26_6
	prev := rune(-1)
	for _, ru := range s {
		if prev >= 0 {
			w += ff.Face.Kern(prev, ru)
		}
		w += ff.advance(ru)
		prev = ru
	}
	return w.Ceil()
}

func (ff *FontFace) advance(ru rune) fixed.Int26_6 {
	if ru == '\t' {
		adv, _ := ff.Face.GlyphAdvance(' ')
		return adv * fixed.Int26_6(TabWidth)
	}
	adv, ok := ff.Face.GlyphAdvance(ru)
	if !ok {
		adv, _ = ff.Face.GlyphAdvance('?')
	}
	return adv
}

// Size of the text, lines split at newlines. If maxWidth is positive, lines are wrapped at spaces to fit.
func (ff *FontFace) TextSize(s string, maxWidth int) image.Point {
	lines := ff.Lines(s, maxWidth)
	var size image.Point
	for _, l := range lines {
		size.X = max(size.X, ff.TextWidth(l))
	}
	size.Y = len(lines) * ff.LineHeightInt()
	return size
}

func (ff *FontFace) Lines(s string, maxWidth int) []string {
	u := []string{}
	for _, l := range strings.Split(s, "\n") {
		if maxWidth <= 0 {
			u = append(u, l)
			continue
		}
		u = append(u, ff.wrap(l, maxWidth)...)
	}
	return u
}

// A word wider than maxWidth takes a line of its own.
func (ff *FontFace) wrap(line string, maxWidth int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}
	u := []string{}
	cur := words[0]
	for _, w := range words[1:] {
		next := cur + " " + w
		if ff.TextWidth(next) > maxWidth {
			u = append(u, cur)
			cur = w
			continue
		}
		cur = next
	}
	return append(u, cur)
}
