// Package formdef loads form definitions from toml files.
//
//	[form]
//	title = "Customer"
//	width = 872
//	height = 300
//
//	[[form.groupbox]]
//	label = "Address"
//	columns = 2
//
//	[[form.groupbox.item]]
//	label = "Street"
//	grid = { w = 0 }
//
//	[[form.groupbox.item]]
//	type = "groupbox"
//	columns = 3
package formdef

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

var ErrInvalidDef = errors.New("invalid form definition")

type File struct {
	Form FormDef `toml:"form"`
}

type FormDef struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	// One group box is the root, more are nested in an untitled root.
	GroupBoxes []ItemDef `toml:"groupbox"`
}

// Field or group box.
type ItemDef struct {
	Type  string   `toml:"type"` // object type, "field" if empty
	Label string   `toml:"label"`
	Grid  *GridDef `toml:"grid"`

	// fields
	LabelPosition string `toml:"label_position"` // "left", "top", "on_field"
	LabelWidth    int    `toml:"label_width"`
	LabelUIWidth  bool   `toml:"label_ui_width"`
	HideStatus    bool   `toml:"hide_status"`
	BodyHeight    int    `toml:"body_height"`
	Hidden        bool   `toml:"hidden"`

	// group boxes
	Columns    int       `toml:"columns"`
	Rows       int       `toml:"rows"` // starting row count of a flow box
	Flow       bool      `toml:"flow"` // column by column instead of row by row
	Responsive bool      `toml:"responsive"`
	Items      []ItemDef `toml:"item"`
}

// Grid hints, unset values keep the defaults.
type GridDef struct {
	X       *int     `toml:"x"`
	Y       *int     `toml:"y"`
	W       *int     `toml:"w"`
	H       *int     `toml:"h"`
	WeightX *float64 `toml:"weight_x"`
	WeightY *float64 `toml:"weight_y"`

	UseUIWidth  *bool `toml:"use_ui_width"`
	UseUIHeight *bool `toml:"use_ui_height"`

	WidthInPixel  int `toml:"width_in_pixel"`
	HeightInPixel int `toml:"height_in_pixel"`

	HorizontalAlignment string `toml:"halign"` // "start", "center", "end"
	VerticalAlignment   string `toml:"valign"`
	FillHorizontal      *bool  `toml:"fill_horizontal"`
	FillVertical        *bool  `toml:"fill_vertical"`
}

//----------

func Parse(data []byte) (*File, error) {
	f := &File{}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(f); err != nil {
		return nil, fmt.Errorf("formdef: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func Load(filename string) (*File, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("formdef: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	return f, nil
}

//----------

// Checks what would otherwise panic while building.
func (f *File) Validate() error {
	if f.Form.Width < 0 || f.Form.Height < 0 {
		return fmt.Errorf("%w: negative form size", ErrInvalidDef)
	}
	for i := range f.Form.GroupBoxes {
		if err := validateItem(&f.Form.GroupBoxes[i], fmt.Sprintf("groupbox[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func validateItem(it *ItemDef, path string) error {
	if it.Columns < 0 {
		return fmt.Errorf("%w: %v: negative columns", ErrInvalidDef, path)
	}
	if it.Rows < 0 {
		return fmt.Errorf("%w: %v: negative rows", ErrInvalidDef, path)
	}
	if g := it.Grid; g != nil {
		if g.W != nil && *g.W < 0 {
			return fmt.Errorf("%w: %v: negative grid width", ErrInvalidDef, path)
		}
		if g.H != nil && *g.H < 1 {
			return fmt.Errorf("%w: %v: grid height must be at least 1", ErrInvalidDef, path)
		}
		for _, a := range []string{g.HorizontalAlignment, g.VerticalAlignment} {
			if _, err := parseAlignment(a); err != nil {
				return fmt.Errorf("%w: %v: %v", ErrInvalidDef, path, err)
			}
		}
	}
	if _, err := parseLabelPosition(it.LabelPosition); err != nil {
		return fmt.Errorf("%w: %v: %v", ErrInvalidDef, path, err)
	}
	for i := range it.Items {
		if err := validateItem(&it.Items[i], fmt.Sprintf("%v.item[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}
