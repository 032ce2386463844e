package ui

import (
	"image"

	"github.com/jmigpin/formlayout/util/imageutil"
	"github.com/jmigpin/formlayout/util/uiutil/widget"
)

// The content fills the popup. The preferred size never exceeds the desktop.
type popupLayout struct {
	widget.SingleLayout
	p *Popup
}

func (l *popupLayout) PreferredLayoutSize(en *widget.EmbedNode, opts widget.PrefSizeOptions) image.Point {
	ps := l.SingleLayout.PreferredLayoutSize(en, opts)
	ds := l.p.session.Desktop.Size()
	if ds == (image.Point{}) {
		return ps
	}
	return imageutil.MinPoint(ps, ds)
}
