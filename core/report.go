package core

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/jmigpin/formlayout/ui"
	"github.com/jmigpin/formlayout/util/uiutil/widget/logicalgrid"
)

func (r *layoutRunner) report() error {
	if r.form == nil {
		return nil
	}
	rw := &reportWriter{w: r.out}
	rw.form(r.form)
	if r.opts.dump {
		rw.dump()
	}
	return rw.err
}

//----------

type dumpEntry struct {
	Label    string
	Hints    logicalgrid.GridData
	Resolved logicalgrid.GridData
}

type reportWriter struct {
	w       io.Writer
	err     error
	entries []dumpEntry
}

func (rw *reportWriter) printf(depth int, f string, args ...any) {
	if rw.err != nil {
		return
	}
	s := strings.Repeat("  ", depth) + fmt.Sprintf(f, args...) + "\n"
	_, rw.err = io.WriteString(rw.w, s)
}

func (rw *reportWriter) form(f *ui.Form) {
	size := f.Size()
	rw.printf(0, "form %q %dx%d", f.Title.Text(), size.X, size.Y)
	if gb := f.RootGroupBox(); gb != nil {
		rw.groupBox(gb, 1)
	}
}

func (rw *reportWriter) groupBox(gb *ui.GroupBox, depth int) {
	if !gb.IsVisible() {
		rw.printf(depth, "groupbox %q hidden", gb.Title.Text())
		return
	}
	rw.printf(depth, "groupbox %q cols=%d rows=%d grid=%v bounds=%v",
		gb.Title.Text(), gb.EffectiveColumnCount(), gb.Grid().GridRows(), gb.GridData(), gb.Bounds)
	rw.entries = append(rw.entries, dumpEntry{gb.Title.Text(), gb.GridDataHints(), gb.GridData()})
	for _, c := range gb.Fields() {
		switch t := c.(type) {
		case *ui.GroupBox:
			rw.groupBox(t, depth+1)
		case *ui.FormField:
			rw.field(t, depth+1)
		default:
			rw.printf(depth+1, "%v %q grid=%v bounds=%v", t.ObjectType(), t.ID(), t.GridData(), t.Embed().Bounds)
		}
	}
}

func (rw *reportWriter) field(ff *ui.FormField, depth int) {
	if !ff.IsVisible() {
		rw.printf(depth, "field %q hidden", ff.LabelText())
		return
	}
	rw.printf(depth, "field %q grid=%v bounds=%v", ff.LabelText(), ff.GridData(), ff.Bounds)
	rw.entries = append(rw.entries, dumpEntry{ff.LabelText(), ff.GridDataHints(), ff.GridData()})
}

func (rw *reportWriter) dump() {
	if rw.err != nil {
		return
	}
	cfg := spew.ConfigState{
		Indent:                  "\t",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		DisableMethods:          true,
	}
	cfg.Fdump(rw.w, rw.entries)
}
