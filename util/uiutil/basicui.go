package uiutil

import (
	"context"
	"image"
	"sync"

	"github.com/jmigpin/formlayout/util/chanutil"
	"github.com/jmigpin/formlayout/util/uiutil/event"
	"github.com/jmigpin/formlayout/util/uiutil/widget"
	"go.uber.org/zap"
)

// BasicUI is a headless host: it owns the ui goroutine and implements widget.UIContext. Events are handled in the order they are posted.
type BasicUI struct {
	RootNode widget.Node
	EventsQ  *chanutil.Queue

	OnError func(error)
	OnEvent func(ev any) // events not handled here

	log       *zap.Logger
	closeOnce sync.Once
	close     chan struct{}
}

func NewBasicUI(log *zap.Logger) *BasicUI {
	if log == nil {
		log = zap.NewNop()
	}
	return &BasicUI{
		EventsQ: chanutil.NewQueue(16, 16),
		OnError: func(error) {},
		OnEvent: func(any) {},
		log:     log,
		close:   make(chan struct{}),
	}
}

func (ui *BasicUI) Close() {
	ui.closeOnce.Do(func() {
		close(ui.close)
		ui.EventsQ.Close()
	})
}

//----------

// Safe to call from any goroutine.
func (ui *BasicUI) PostEvent(ev any) {
	select {
	case ui.EventsQ.In() <- ev:
	case <-ui.close:
	}
}

// Implements widget.UIContext.
func (ui *BasicUI) RunOnUIGoRoutine(f func()) {
	ui.PostEvent(&event.UIRunFunc{Func: f})
}

// Implements widget.UIContext.
func (ui *BasicUI) Error(err error) {
	ui.log.Error("ui error", zap.Error(err))
	ui.OnError(err)
}

//----------

func (ui *BasicUI) HandleEvent(ev any) {
	switch t := ev.(type) {
	case *event.UIRunFunc:
		t.Func()
	case *event.WindowResize:
		if ui.RootNode != nil {
			ui.RootNode.Embed().SetBounds(image.Rectangle{Max: t.Size})
		}
	case *event.WindowClose:
		ui.Close()
	case error:
		ui.Error(t)
	case struct{}:
		// no op
	default:
		ui.OnEvent(ev)
	}
}

// Handles events until the ui is closed or the context is done.
func (ui *BasicUI) EventLoop(ctx context.Context) error {
	out := ui.EventsQ.Out()
	for {
		select {
		case <-ctx.Done():
			ui.Close()
			return ctx.Err()
		case <-ui.close:
			return nil
		case ev := <-out:
			ui.HandleEvent(ev)
		}
	}
}
