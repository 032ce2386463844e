package ui

import (
	"errors"
	"fmt"

	"github.com/jmigpin/formlayout/util/uiutil/widget/logicalgrid"
)

// Model properties the widgets react to.
const (
	PropVisible       = "visible"
	PropLabel         = "label"
	PropGridDataHints = "gridDataHints"
)

var ErrUnsupportedProperty = errors.New("unsupported property")

// ModelAdapter forwards property changes of a model object to its widget.
type ModelAdapter interface {
	Widget() Widget
	OnModelPropertyChange(name string, value any) error
}

// Adapter for form fields and group boxes. Every handled property ends in a layout invalidation.
type FieldAdapter struct {
	w Widget
}

func NewFieldAdapter(w Widget) *FieldAdapter {
	return &FieldAdapter{w: w}
}

func (a *FieldAdapter) Widget() Widget {
	return a.w
}

func (a *FieldAdapter) OnModelPropertyChange(name string, value any) error {
	switch name {
	case PropVisible:
		v, ok := value.(bool)
		if !ok {
			return badValueErr(name, value)
		}
		w, ok := a.w.(interface{ SetVisible(bool) })
		if !ok {
			return a.unsupported(name)
		}
		w.SetVisible(v)
	case PropLabel:
		v, ok := value.(string)
		if !ok {
			return badValueErr(name, value)
		}
		w, ok := a.w.(interface{ SetLabel(string) })
		if !ok {
			return a.unsupported(name)
		}
		w.SetLabel(v)
	case PropGridDataHints:
		v, ok := value.(logicalgrid.GridData)
		if !ok {
			return badValueErr(name, value)
		}
		w, ok := a.w.(interface {
			SetGridDataHints(logicalgrid.GridData)
		})
		if !ok {
			return a.unsupported(name)
		}
		w.SetGridDataHints(v)
	default:
		return a.unsupported(name)
	}
	return nil
}

func (a *FieldAdapter) unsupported(name string) error {
	return fmt.Errorf("%w: %v.%v", ErrUnsupportedProperty, a.w.ObjectType(), name)
}

func badValueErr(name string, value any) error {
	return fmt.Errorf("property %v: unexpected value type %T", name, value)
}
