package ui

import (
	"github.com/jmigpin/formlayout/util/uiutil/widget/logicalgrid"
)

// Grid participation shared by the widgets a group box lays out.
type gridWidget struct {
	hints    logicalgrid.GridData
	gridData logicalgrid.GridData
	box      *GroupBox // owning group box, nil until added
}

func newGridWidget() gridWidget {
	return gridWidget{hints: logicalgrid.NewGridData(), gridData: logicalgrid.NewGridData()}
}

func (gw *gridWidget) GridDataHints() logicalgrid.GridData {
	return gw.hints
}

// The owning group box grid is recomputed on the next layout.
func (gw *gridWidget) SetGridDataHints(gd logicalgrid.GridData) {
	gd.Validate()
	if gd == gw.hints {
		return
	}
	gw.hints = gd
	gw.invalidateBoxGrid()
}

func (gw *gridWidget) GridData() logicalgrid.GridData {
	return gw.gridData
}

func (gw *gridWidget) SetGridData(gd logicalgrid.GridData) {
	gw.gridData = gd
}

func (gw *gridWidget) GroupBox() *GroupBox {
	return gw.box
}

func (gw *gridWidget) invalidateBoxGrid() {
	if gw.box != nil {
		gw.box.InvalidateLogicalGrid()
	}
}

func (gw *gridWidget) setGroupBox(b *GroupBox) {
	gw.box = b
}

//----------

// Widget that can be added to a group box.
type GroupBoxChild interface {
	Widget
	logicalgrid.GridWidget
	SetGridDataHints(logicalgrid.GridData)
	GroupBox() *GroupBox
	setGroupBox(*GroupBox)
}
