package ui

import (
	"image"

	"github.com/jmigpin/formlayout/util/imageutil"
	"github.com/jmigpin/formlayout/util/uiutil/widget"
)

// Desktop is the attached root of a session. Forms fill the desktop, popups position themselves relative to their anchors.
type Desktop struct {
	widget.ENode
	session *Session
}

func newDesktop(s *Session) *Desktop {
	d := &Desktop{session: s}
	d.SetWrapperForRoot(d)
	d.SetLayoutValidatorForRoot(s.Validator)
	d.SetValidateRoot(true)
	d.SetLayout(&desktopLayout{})
	d.SetAttachedForRoot(true)
	return d
}

// Sets the desktop size, the layout is validated right away.
func (d *Desktop) Resize(size image.Point) {
	d.SetBounds(image.Rectangle{Max: size})
}

func (d *Desktop) OpenForm(f *Form) {
	d.Append(f)
}

func (d *Desktop) CloseForm(f *Form) {
	d.Remove(f)
}

func (d *Desktop) Forms() []*Form {
	u := []*Form{}
	d.IterateWrappers2(func(n widget.Node) {
		if f, ok := n.(*Form); ok {
			u = append(u, f)
		}
	})
	return u
}

//----------

type desktopLayout struct {
	widget.AbstractLayout
}

func (l *desktopLayout) Layout(en *widget.EmbedNode) {
	r := en.Insets().Shrink(image.Rectangle{Max: en.Size()})
	popups := []*Popup{}
	en.IterateWrappers2(func(n widget.Node) {
		if p, ok := n.(*Popup); ok {
			popups = append(popups, p)
			return
		}
		c := n.Embed()
		c.SetBounds(c.Margins().Shrink(r))
	})
	// anchors may have moved without being laid out again
	for _, p := range popups {
		p.Reposition(PositionOptions{})
	}
}

func (l *desktopLayout) PreferredLayoutSize(en *widget.EmbedNode, opts widget.PrefSizeOptions) image.Point {
	var size image.Point
	en.IterateWrappers2(func(n widget.Node) {
		if _, ok := n.(*Popup); ok {
			return
		}
		ps := n.Embed().PrefSize(widget.PrefSizeOptions{WidthHint: opts.WidthHint, IncludeMargin: true})
		size = imageutil.MaxPoint(size, ps)
	})
	return size.Add(en.Insets().Size())
}
