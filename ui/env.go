package ui

import (
	"github.com/jmigpin/formlayout/util/uiutil/widget/logicalgrid"
)

// Sizes shared by the layouts of a session.
type LayoutEnv struct {
	ColumnWidth int // logical width of a grid column
	RowHeight   int // logical height of a grid row
	HGap, VGap  int

	LabelWidth  int // default width of left positioned field labels
	StatusWidth int

	// Responsive group boxes switch to one column below this width.
	CompactWidth int
}

func DefaultLayoutEnv() LayoutEnv {
	return LayoutEnv{
		ColumnWidth:  420,
		RowHeight:    30,
		HGap:         32,
		VGap:         10,
		LabelWidth:   140,
		StatusWidth:  20,
		CompactWidth: 500,
	}
}

func (env LayoutEnv) gridLayoutOptions() logicalgrid.LayoutOptions {
	return logicalgrid.LayoutOptions{
		HGap:        env.HGap,
		VGap:        env.VGap,
		ColumnWidth: env.ColumnWidth,
		RowHeight:   env.RowHeight,
	}
}
