package ui

import (
	"github.com/jmigpin/formlayout/util/uiutil/widget"
)

// Form is a validate root: title on top and a scroll area with the root group box.
type Form struct {
	widget.ENode
	widgetBase

	Title  *Label
	Scroll *ScrollArea

	root *GroupBox
}

func NewForm(s *Session) *Form {
	f := &Form{widgetBase: newWidgetBase(s, TypeForm)}
	f.SetValidateRoot(true)
	f.Title = NewLabel(s, "")
	f.Title.SetVisible(false)
	f.Scroll = NewScrollArea(s)
	f.Append(f.Title, f.Scroll)

	// title on top, the scroll area takes the remaining height
	bl := widget.NewBoxLayout()
	bl.YAxis = true
	bl.SetChildFill(f.Title, true, false)
	bl.SetChildFlex(f.Scroll, true, true)
	f.SetLayout(bl)
	return f
}

func (f *Form) SetTitle(text string) {
	f.Title.SetText(text)
	f.Title.SetVisible(text != "")
}

func (f *Form) RootGroupBox() *GroupBox {
	return f.root
}

func (f *Form) SetRootGroupBox(gb *GroupBox) {
	if f.root != nil {
		f.Scroll.Remove(f.root)
	}
	f.root = gb
	if gb != nil {
		f.Scroll.Append(gb)
	}
}
