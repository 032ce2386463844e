package ui

import (
	"github.com/jmigpin/formlayout/util/fontutil"
	"github.com/jmigpin/formlayout/util/uiutil/widget"
	"go.uber.org/zap"
)

type SessionOptions struct {
	Log      *zap.Logger
	Env      *LayoutEnv // nil for DefaultLayoutEnv
	Font     *fontutil.FontFace
	Registry *Registry
}

// Session is the widget tree of one host: the desktop root, the layout validator shared by every node of the tree and the factories used to create widgets.
type Session struct {
	Ctx       widget.UIContext
	Log       *zap.Logger
	Env       LayoutEnv
	Font      *fontutil.FontFace
	Registry  *Registry
	Validator *widget.LayoutValidator
	Desktop   *Desktop

	closed bool
}

func NewSession(ctx widget.UIContext, opts SessionOptions) *Session {
	s := &Session{Ctx: ctx, Log: opts.Log, Font: opts.Font, Registry: opts.Registry}
	if s.Log == nil {
		s.Log = zap.NewNop()
	}
	s.Env = DefaultLayoutEnv()
	if opts.Env != nil {
		s.Env = *opts.Env
	}
	if s.Font == nil {
		s.Font = fontutil.DefaultFontFace()
	}
	if s.Registry == nil {
		s.Registry = NewRegistry()
	}
	s.Validator = widget.NewLayoutValidator(ctx, s.Log.Named("layout"))
	s.Desktop = newDesktop(s)
	return s
}

func (s *Session) Create(t ObjectType) (Widget, error) {
	return s.Registry.Create(s, t)
}

// Lays out everything that was invalidated since the last validation.
func (s *Session) ValidateLayout() {
	s.Validator.Validate()
}

func (s *Session) Closed() bool {
	return s.closed
}

// Detaches the desktop, pending validations are dropped.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	de := s.Desktop.Embed()
	de.SetAttachedForRoot(false)
	s.Validator.CleanupInvalidComponents(de)
	s.Log.Debug("session closed")
}
