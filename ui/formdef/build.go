package formdef

import (
	"fmt"
	"image"

	"github.com/jmigpin/formlayout/ui"
	"github.com/jmigpin/formlayout/util/uiutil/widget"
	"github.com/jmigpin/formlayout/util/uiutil/widget/logicalgrid"
)

// Creates the form and its widgets with the session registry. The form is not opened.
func (f *File) Build(s *ui.Session) (*ui.Form, error) {
	w, err := s.Create(ui.TypeForm)
	if err != nil {
		return nil, err
	}
	form, ok := w.(*ui.Form)
	if !ok {
		return nil, fmt.Errorf("form factory returned %T", w)
	}
	form.SetTitle(f.Form.Title)

	gbs := f.Form.GroupBoxes
	if len(gbs) == 1 {
		root, err := buildGroupBox(s, &gbs[0])
		if err != nil {
			return nil, err
		}
		form.SetRootGroupBox(root)
		return form, nil
	}

	root, err := buildGroupBox(s, &ItemDef{Columns: 1})
	if err != nil {
		return nil, err
	}
	for _, it := range gbs {
		it.Type = ui.TypeGroupBox.String()
		if err := addItem(s, root, &it); err != nil {
			return nil, err
		}
	}
	form.SetRootGroupBox(root)
	return form, nil
}

// Form size from the definition, zero values taken from the form preferred size.
func (f *File) Size(form *ui.Form) image.Point {
	size := image.Point{f.Form.Width, f.Form.Height}
	if size.X == 0 || size.Y == 0 {
		ps := form.PrefSize(widget.PrefSizeOptions{WidthHint: size.X})
		if size.X == 0 {
			size.X = ps.X
		}
		if size.Y == 0 {
			size.Y = ps.Y
		}
	}
	return size
}

//----------

func buildGroupBox(s *ui.Session, it *ItemDef) (*ui.GroupBox, error) {
	w, err := s.Create(ui.TypeGroupBox)
	if err != nil {
		return nil, err
	}
	gb, ok := w.(*ui.GroupBox)
	if !ok {
		return nil, fmt.Errorf("group box factory returned %T", w)
	}
	gb.SetTitle(it.Label)
	if it.Columns > 0 {
		gb.SetColumnCount(it.Columns)
	}
	gb.SetFlow(it.Flow)
	gb.SetRowCount(it.Rows)
	gb.Responsive = it.Responsive
	gb.SetGridDataHints(gridHints(gb.GridDataHints(), it.Grid))
	for i := range it.Items {
		if err := addItem(s, gb, &it.Items[i]); err != nil {
			return nil, err
		}
	}
	gb.SetVisible(!it.Hidden)
	return gb, nil
}

func addItem(s *ui.Session, gb *ui.GroupBox, it *ItemDef) error {
	typ := ui.TypeFormField
	if it.Type != "" {
		t, err := ui.ParseObjectType(it.Type)
		if err != nil {
			return err
		}
		typ = t
	}
	switch typ {
	case ui.TypeGroupBox:
		u, err := buildGroupBox(s, it)
		if err != nil {
			return err
		}
		gb.AddField(u)
		return nil
	case ui.TypeFormField:
		ff, err := buildField(s, it)
		if err != nil {
			return err
		}
		gb.AddField(ff)
		return nil
	}
	return fmt.Errorf("%w: %v can't be a group box item", ErrInvalidDef, typ)
}

func buildField(s *ui.Session, it *ItemDef) (*ui.FormField, error) {
	w, err := s.Create(ui.TypeFormField)
	if err != nil {
		return nil, err
	}
	ff, ok := w.(*ui.FormField)
	if !ok {
		return nil, fmt.Errorf("field factory returned %T", w)
	}
	ff.SetLabel(it.Label)
	lp, _ := parseLabelPosition(it.LabelPosition) // validated
	ff.SetLabelPosition(lp)
	ff.LabelWidthInPixel = it.LabelWidth
	ff.LabelUseUIWidth = it.LabelUIWidth
	ff.SetStatusVisible(!it.HideStatus)
	if it.BodyHeight > 0 {
		ff.SetBody(widget.NewRectangle(image.Point{0, it.BodyHeight}))
	}
	ff.SetGridDataHints(gridHints(ff.GridDataHints(), it.Grid))
	ff.SetVisible(!it.Hidden)
	return ff, nil
}

//----------

func gridHints(gd logicalgrid.GridData, g *GridDef) logicalgrid.GridData {
	if g == nil {
		return gd
	}
	setInt := func(v *int, p *int) {
		if p != nil {
			*v = *p
		}
	}
	setFloat := func(v *float64, p *float64) {
		if p != nil {
			*v = *p
		}
	}
	setBool := func(v *bool, p *bool) {
		if p != nil {
			*v = *p
		}
	}
	setInt(&gd.X, g.X)
	setInt(&gd.Y, g.Y)
	setInt(&gd.W, g.W)
	setInt(&gd.H, g.H)
	setFloat(&gd.WeightX, g.WeightX)
	setFloat(&gd.WeightY, g.WeightY)
	setBool(&gd.UseUIWidth, g.UseUIWidth)
	setBool(&gd.UseUIHeight, g.UseUIHeight)
	setBool(&gd.FillHorizontal, g.FillHorizontal)
	setBool(&gd.FillVertical, g.FillVertical)
	gd.WidthInPixel = g.WidthInPixel
	gd.HeightInPixel = g.HeightInPixel
	if a, err := parseAlignment(g.HorizontalAlignment); err == nil && g.HorizontalAlignment != "" {
		gd.HorizontalAlignment = a
	}
	if a, err := parseAlignment(g.VerticalAlignment); err == nil && g.VerticalAlignment != "" {
		gd.VerticalAlignment = a
	}
	return gd
}

func parseAlignment(s string) (int, error) {
	switch s {
	case "", "start":
		return logicalgrid.AlignStart, nil
	case "center":
		return logicalgrid.AlignCenter, nil
	case "end":
		return logicalgrid.AlignEnd, nil
	}
	return 0, fmt.Errorf("bad alignment: %q", s)
}

func parseLabelPosition(s string) (ui.LabelPosition, error) {
	switch s {
	case "":
		return ui.LabelPositionDefault, nil
	case "left":
		return ui.LabelPositionLeft, nil
	case "top":
		return ui.LabelPositionTop, nil
	case "on_field":
		return ui.LabelPositionOnField, nil
	}
	return 0, fmt.Errorf("bad label position: %q", s)
}
