package ui

import (
	"image"

	"github.com/jmigpin/formlayout/util/fontutil"
	"github.com/jmigpin/formlayout/util/uiutil/widget"
)

// Text leaf measured with the session font.
type Label struct {
	widget.ENode
	widgetBase

	// Wrap lines when measured with a width hint.
	Wrap bool

	text string
	face *fontutil.FontFace
}

func NewLabel(s *Session, text string) *Label {
	l := &Label{widgetBase: newWidgetBase(s, TypeLabel), text: text, face: s.Font}
	l.SetLayout(&labelLayout{l: l})
	return l
}

func (l *Label) Text() string {
	return l.text
}

func (l *Label) SetText(text string) {
	if text == l.text {
		return
	}
	l.text = text
	l.InvalidateLayoutTree(true)
}

func (l *Label) SetFontFace(ff *fontutil.FontFace) {
	l.face = ff
	l.InvalidateLayoutTree(true)
}

//----------

type labelLayout struct {
	widget.AbstractLayout
	l *Label
}

func (ll *labelLayout) Layout(en *widget.EmbedNode) {}

func (ll *labelLayout) PreferredLayoutSize(en *widget.EmbedNode, opts widget.PrefSizeOptions) image.Point {
	maxw := 0
	if ll.l.Wrap {
		maxw = opts.WidthHint
	}
	return ll.l.face.TextSize(ll.l.text, maxw).Add(en.Insets().Size())
}
