package ui

import (
	"image"

	"github.com/jmigpin/formlayout/util/uiutil/widget"
)

// Title on top, the body with the logical grid below.
type groupBoxLayout struct {
	widget.AbstractLayout
	gb *GroupBox
}

func (l *groupBoxLayout) Layout(en *widget.EmbedNode) {
	r := en.Insets().Shrink(image.Rectangle{Max: en.Size()})
	l.gb.updateCompact(r.Dx())

	title, body := l.gb.Title.Embed(), l.gb.body.Embed()
	th := title.PrefSize(widget.PrefSizeOptions{WidthHint: r.Dx(), IncludeMargin: true}).Y
	title.SetBounds(title.Margins().Shrink(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+th)))
	r.Min.Y += th
	body.SetBounds(body.Margins().Shrink(r))
}

func (l *groupBoxLayout) PreferredLayoutSize(en *widget.EmbedNode, opts widget.PrefSizeOptions) image.Point {
	// the measured width decides the mode, the scroll area measures before laying out
	if opts.WidthHint > 0 {
		l.gb.updateCompact(opts.WidthHint)
	}

	title, body := l.gb.Title.Embed(), l.gb.body.Embed()
	popts := widget.PrefSizeOptions{WidthHint: opts.WidthHint, IncludeMargin: true}
	tps := title.PrefSize(popts)
	bps := body.PrefSize(popts)
	size := image.Point{imax(tps.X, bps.X), tps.Y + bps.Y}
	return size.Add(en.Insets().Size())
}
