package ui

import (
	"image"

	"github.com/jmigpin/formlayout/util/uiutil/widget"
)

// Vertically scrollable validate root. The content is laid out at its preferred height and shifted by the scroll offset.
type ScrollArea struct {
	widget.ENode
	widgetBase

	scrollY int
}

func NewScrollArea(s *Session) *ScrollArea {
	sa := &ScrollArea{widgetBase: newWidgetBase(s, TypeScrollArea)}
	sa.SetValidateRoot(true)
	sa.SetScrollable(true)
	sa.SetLayout(&scrollAreaLayout{sa: sa})
	return sa
}

func (sa *ScrollArea) ScrollY() int {
	return sa.scrollY
}

func (sa *ScrollArea) SetScrollY(y int) {
	if y == sa.scrollY {
		return
	}
	sa.scrollY = y
	sa.InvalidateLayoutTree(false)
}

// Height that can be scrolled.
func (sa *ScrollArea) ScrollRange() int {
	return imax(sa.AvailableSize().Y-sa.Size().Y, 0)
}

//----------

type scrollAreaLayout struct {
	widget.SingleLayout
	sa *ScrollArea
}

func (l *scrollAreaLayout) Layout(en *widget.EmbedNode) {
	c := en.FirstChild()
	for c != nil && !c.IsVisible() {
		c = c.NextSibling()
	}
	if c == nil {
		return
	}
	avail := en.AvailableSize()
	l.sa.scrollY = imax(imin(l.sa.scrollY, avail.Y-en.Size().Y), 0)

	r := en.Insets().Shrink(image.Rectangle{Max: avail})
	r = r.Sub(image.Point{0, l.sa.scrollY})
	c.SetBounds(c.Margins().Shrink(r))
}
