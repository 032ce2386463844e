package ui

import (
	"image"

	"github.com/jmigpin/formlayout/util/imageutil"
	"github.com/jmigpin/formlayout/util/uiutil/widget"
	"go.uber.org/zap"
)

type PositionOptions struct {
	// Node whose layout requested the new position, nil if unknown.
	Origin *widget.EmbedNode
}

// Popup is a validate root on the desktop, placed below its anchor field (above if there is no room below) and kept inside the desktop.
type Popup struct {
	widget.ENode
	widgetBase

	Anchor *FormField

	content     widget.Node
	open        bool
	repositions int
}

func NewPopup(s *Session) *Popup {
	p := &Popup{widgetBase: newWidgetBase(s, TypePopup)}
	p.SetValidateRoot(true)
	p.SetLayout(&popupLayout{p: p})
	return p
}

func (p *Popup) Content() widget.Node {
	return p.content
}

func (p *Popup) SetContent(n widget.Node) {
	if p.content != nil {
		p.Remove(p.content)
	}
	p.content = n
	if n != nil {
		p.Append(n)
	}
}

// The field is shown inside the popup. Its layout requests a reposition of the popup which is ignored.
func (p *Popup) SetEmbeddedField(ff *FormField) {
	ff.popup = p
	p.SetContent(ff)
}

func (p *Popup) IsOpen() bool {
	return p.open
}

func (p *Popup) Open(anchor *FormField) {
	if p.open {
		return
	}
	p.open = true
	p.Anchor = anchor
	anchor.popup = p
	p.session.Desktop.Append(p)
	p.Reposition(PositionOptions{Origin: anchor.Embed()})
}

func (p *Popup) Close() {
	if !p.open {
		return
	}
	p.open = false
	if p.Anchor != nil && p.Anchor.popup == p {
		p.Anchor.popup = nil
	}
	p.session.Desktop.Remove(p)
}

//----------

// Places the popup relative to its anchor.
func (p *Popup) Reposition(opts PositionOptions) {
	if !p.open || p.Anchor == nil {
		return
	}
	pe := p.Embed()
	if o := opts.Origin; o != nil && (o == pe || o.IsDescendantOf(pe)) {
		// requested by the layout of a node inside the popup
		return
	}
	p.repositions++

	de := p.session.Desktop.Embed()
	desk := image.Rectangle{Max: de.Size()}
	anchor := p.Anchor.Embed().AbsoluteBounds().Sub(de.Bounds.Min)

	ps := pe.PrefSize(widget.PrefSizeOptions{})
	r := image.Rectangle{Max: ps}.Add(image.Point{anchor.Min.X, anchor.Max.Y})
	if r.Max.Y > desk.Max.Y && anchor.Min.Y-ps.Y >= desk.Min.Y {
		r = r.Sub(image.Point{0, ps.Y + anchor.Dy()})
	}
	r = imageutil.FitInside(r, desk)

	p.session.Log.Debug("popup repositioned",
		zap.String("id", p.id),
		zap.Stringer("bounds", r))
	pe.SetBounds(r)
}
