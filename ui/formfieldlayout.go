package ui

import (
	"fmt"
	"image"

	"github.com/jmigpin/formlayout/util/uiutil/widget"
)

// Lays out the label column (left or top), the body and the status column.
type formFieldLayout struct {
	widget.AbstractLayout
	ff *FormField
}

func (l *formFieldLayout) Layout(en *widget.EmbedNode) {
	ff := l.ff
	env := ff.session.Env
	r := en.Insets().Shrink(image.Rectangle{Max: en.Size()})
	label, body, status := ff.Label.Embed(), ff.body.Embed(), ff.Status.Embed()

	statusW := 0
	if status.IsVisible() {
		statusW = env.StatusWidth
	}
	rowH := imin(env.RowHeight, r.Dy())

	switch ff.effectiveLabelPosition() {
	case LabelPositionTop:
		label.SetStyleProp("width", "")
		lh := 0
		if label.IsVisible() {
			lh = label.PrefSize(widget.PrefSizeOptions{WidthHint: r.Dx() - statusW, IncludeMargin: true}).Y
		}
		label.SetBounds(label.Margins().Shrink(image.Rect(r.Min.X, r.Min.Y, r.Max.X-statusW, r.Min.Y+lh)))
		r.Min.Y += lh
		rowH = imin(env.RowHeight, r.Dy())
	default:
		lw := l.labelWidth()
		if label.IsVisible() && !ff.LabelUseUIWidth {
			label.SetStyleProp("width", fmt.Sprintf("%dpx", lw))
		}
		label.SetBounds(label.Margins().Shrink(image.Rect(r.Min.X, r.Min.Y, r.Min.X+lw, r.Min.Y+rowH)))
		r.Min.X += lw
	}

	body.SetBounds(body.Margins().Shrink(image.Rect(r.Min.X, r.Min.Y, r.Max.X-statusW, r.Max.Y)))
	status.SetBounds(image.Rect(r.Max.X-statusW, r.Min.Y, r.Max.X, r.Min.Y+rowH))

	if ff.popup != nil {
		ff.popup.Reposition(PositionOptions{Origin: en})
	}
}

// Width of the label column in the left position.
func (l *formFieldLayout) labelWidth() int {
	ff := l.ff
	label := ff.Label.Embed()
	if !label.IsVisible() || ff.effectiveLabelPosition() == LabelPositionOnField {
		return 0
	}
	if ff.LabelUseUIWidth {
		// measure without the width set by a previous layout
		w := 0
		widget.WithStyleProps(label, map[string]string{"width": ""}, func() {
			w = label.PrefSize(widget.PrefSizeOptions{IncludeMargin: true}).X
		})
		return w
	}
	if ff.LabelWidthInPixel > 0 {
		return ff.LabelWidthInPixel
	}
	return ff.session.Env.LabelWidth
}

func (l *formFieldLayout) PreferredLayoutSize(en *widget.EmbedNode, opts widget.PrefSizeOptions) image.Point {
	ff := l.ff
	label, body, status := ff.Label.Embed(), ff.body.Embed(), ff.Status.Embed()

	statusW := 0
	if status.IsVisible() {
		statusW = ff.session.Env.StatusWidth
	}
	hint := func(used int) int {
		if opts.WidthHint <= 0 {
			return 0
		}
		return imax(opts.WidthHint-used, 1)
	}

	var size image.Point
	switch ff.effectiveLabelPosition() {
	case LabelPositionTop:
		lps := image.Point{}
		if label.IsVisible() {
			widget.WithStyleProps(label, map[string]string{"width": ""}, func() {
				lps = label.PrefSize(widget.PrefSizeOptions{WidthHint: hint(statusW), IncludeMargin: true})
			})
		}
		bps := body.PrefSize(widget.PrefSizeOptions{WidthHint: hint(statusW), IncludeMargin: true})
		size.X = imax(lps.X, bps.X) + statusW
		size.Y = lps.Y + bps.Y
	default:
		lw := l.labelWidth()
		lps := label.PrefSize(widget.PrefSizeOptions{IncludeMargin: true})
		bps := body.PrefSize(widget.PrefSizeOptions{WidthHint: hint(lw + statusW), IncludeMargin: true})
		size.X = lw + bps.X + statusW
		size.Y = imax(lps.Y, bps.Y)
	}
	return size.Add(en.Insets().Size())
}

//----------

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func imin(a, b int) int {
	if a < b {
		return a
	}
	return b
}
