package ui

import (
	"image"

	"github.com/jmigpin/formlayout/util/uiutil/widget"
)

type LabelPosition int

const (
	LabelPositionDefault LabelPosition = iota // left of the field body
	LabelPositionLeft
	LabelPositionTop
	LabelPositionOnField // no label column, the body shows the label itself
)

// FormField is a labeled field inside a group box: label, body and status column.
type FormField struct {
	widget.ENode
	widgetBase
	gridWidget

	Label  *Label
	Status *widget.Rectangle

	body          widget.Node
	labelPosition LabelPosition
	popup         *Popup

	// Label column width, zero uses the session label width.
	LabelWidthInPixel int
	// Label column as wide as the label text.
	LabelUseUIWidth bool
}

func NewFormField(s *Session) *FormField {
	ff := &FormField{
		widgetBase: newWidgetBase(s, TypeFormField),
		gridWidget: newGridWidget(),
	}
	ff.Label = NewLabel(s, "")
	ff.Label.SetVisible(false)
	ff.body = widget.NewRectangle(image.Point{0, s.Env.RowHeight})
	ff.Status = widget.NewRectangle(image.Point{s.Env.StatusWidth, 0})
	ff.Append(ff.Label, ff.body, ff.Status)
	ff.SetLayout(&formFieldLayout{ff: ff})
	return ff
}

//----------

func (ff *FormField) LabelText() string {
	return ff.Label.Text()
}

// An empty label hides the label column.
func (ff *FormField) SetLabel(text string) {
	ff.Label.SetText(text)
	ff.Label.SetVisible(text != "")
}

func (ff *FormField) LabelPosition() LabelPosition {
	return ff.labelPosition
}

func (ff *FormField) SetLabelPosition(p LabelPosition) {
	if p == ff.labelPosition {
		return
	}
	ff.labelPosition = p
	ff.InvalidateLayoutTree(true)
}

// Position used by the layout, group boxes in compact mode move the labels to the top.
func (ff *FormField) effectiveLabelPosition() LabelPosition {
	if ff.labelPosition == LabelPositionOnField {
		return LabelPositionOnField
	}
	if ff.box != nil && ff.box.compact {
		return LabelPositionTop
	}
	return ff.labelPosition
}

func (ff *FormField) SetStatusVisible(v bool) {
	ff.Status.SetVisible(v)
}

//----------

func (ff *FormField) Body() widget.Node {
	return ff.body
}

func (ff *FormField) SetBody(n widget.Node) {
	next := ff.body.Embed().NextSibling()
	ff.Remove(ff.body)
	ff.body = n
	ff.InsertBefore(n, next)
}

//----------

// Hiding a field removes it from the grid of its group box.
func (ff *FormField) SetVisible(v bool) {
	if ff.IsVisible() == v {
		return
	}
	ff.ENode.SetVisible(v)
	ff.invalidateBoxGrid()
}

func (ff *FormField) Popup() *Popup {
	return ff.popup
}
