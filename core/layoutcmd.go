package core

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"

	"github.com/jmigpin/formlayout/core/fswatcher"
	"github.com/jmigpin/formlayout/ui"
	"github.com/jmigpin/formlayout/ui/formdef"
	"github.com/jmigpin/formlayout/util/uiutil"
	"github.com/jmigpin/formlayout/util/uiutil/event"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type layoutOpts struct {
	width, height int
	watch         bool
	dump          bool
	fontFile      string
	fontSize      float64
}

func newLayoutCmd(app *cliApp) *cobra.Command {
	opts := &layoutOpts{}
	cmd := &cobra.Command{
		Use:   "layout FILE",
		Short: "Lays out a form definition and prints the resolved grid cells and bounds.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := &layoutRunner{app: app, opts: opts, filename: args[0], out: cmd.OutOrStdout()}
			return r.run(cmd.Context())
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.width, "width", 0, "desktop width, overrides the form definition")
	f.IntVar(&opts.height, "height", 0, "desktop height, overrides the form definition")
	f.BoolVarP(&opts.watch, "watch", "w", false, "lay out again when the file changes")
	f.BoolVar(&opts.dump, "dump", false, "dump the grid data hints and the resolved grid data")
	f.StringVar(&opts.fontFile, "font", "", "truetype font file used to measure labels")
	f.Float64Var(&opts.fontSize, "font-size", 0, "font size")
	return cmd
}

//----------

type layoutRunner struct {
	app      *cliApp
	opts     *layoutOpts
	filename string
	out      io.Writer

	bui     *uiutil.BasicUI
	session *ui.Session
	form    *ui.Form
	err     error

	onRebuilt func() // tests
}

func (r *layoutRunner) run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := r.app.log

	face, err := r.app.fontFace(r.opts.fontFile, r.opts.fontSize)
	if err != nil {
		return fmt.Errorf("font: %w", err)
	}

	r.bui = uiutil.NewBasicUI(log.Named("ui"))
	env := r.app.cfg.Layout.Env()
	r.session = ui.NewSession(r.bui, ui.SessionOptions{Log: log, Env: &env, Font: face})
	r.bui.RootNode = r.session.Desktop
	defer r.session.Close()

	if !r.opts.watch {
		r.bui.RunOnUIGoRoutine(func() {
			r.rebuild(r.bui.Close)
		})
		if err := r.bui.EventLoop(ctx); err != nil {
			return err
		}
		return r.err
	}

	w, abs, err := r.newWatcher()
	if err != nil {
		return err
	}
	r.bui.OnError = func(error) {} // logged by the ui, keep watching
	r.bui.OnEvent = func(ev any) {
		if fc, ok := ev.(*event.FileChange); ok {
			log.Info("file changed", zap.String("name", fc.Name))
			r.rebuild(nil)
		}
	}
	r.bui.RunOnUIGoRoutine(func() { r.rebuild(nil) })

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r.forwardEvents(w, abs, log)
		return nil
	})
	g.Go(func() error {
		defer w.Close()
		return r.bui.EventLoop(ctx)
	})
	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Builds the form from the file and replaces the open one. Runs on the ui goroutine; then is called after the report is written.
func (r *layoutRunner) rebuild(then func()) {
	size, err := r.build()
	if err != nil {
		r.err = err
		r.bui.Error(err)
		if then != nil {
			then()
		}
		return
	}
	r.bui.PostEvent(&event.WindowResize{Size: size})
	r.bui.RunOnUIGoRoutine(func() {
		r.session.ValidateLayout()
		r.err = r.report()
		if r.onRebuilt != nil {
			r.onRebuilt()
		}
		if then != nil {
			then()
		}
	})
}

func (r *layoutRunner) build() (image.Point, error) {
	def, err := formdef.Load(r.filename)
	if err != nil {
		return image.Point{}, err
	}
	form, err := def.Build(r.session)
	if err != nil {
		return image.Point{}, err
	}
	if r.opts.width > 0 {
		def.Form.Width = r.opts.width
	}
	if r.opts.height > 0 {
		def.Form.Height = r.opts.height
	}

	d := r.session.Desktop
	if r.form != nil {
		d.CloseForm(r.form)
	}
	r.form = form
	d.OpenForm(form)
	return def.Size(form), nil
}

//----------

// Watches the directory of the file since editors often replace the file on save.
func (r *layoutRunner) newWatcher() (*fswatcher.FsnWatcher, string, error) {
	abs, err := filepath.Abs(r.filename)
	if err != nil {
		return nil, "", err
	}
	w, err := fswatcher.NewFsnWatcher()
	if err != nil {
		return nil, "", err
	}
	w.SetOpMask(fswatcher.Create | fswatcher.Modify | fswatcher.Rename)
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, "", err
	}
	return w, abs, nil
}

// Posts the changes of the file to the ui goroutine until the watcher is closed.
func (r *layoutRunner) forwardEvents(w *fswatcher.FsnWatcher, abs string, log *zap.Logger) {
	for ev := range w.Events() {
		switch t := ev.(type) {
		case *fswatcher.Event:
			if t.JoinNames() == abs {
				log.Debug("watch", zap.Stringer("op", t.Op), zap.String("name", abs))
				r.bui.PostEvent(&event.FileChange{Name: abs})
			}
		case error:
			r.bui.PostEvent(t)
		}
	}
}
