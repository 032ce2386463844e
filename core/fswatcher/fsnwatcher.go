package fswatcher

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher based on fsnotify. Events and errors are delivered on the same channel, filtered by the op mask.
type FsnWatcher struct {
	w      *fsnotify.Watcher
	events chan any
	quit   chan struct{}
	done   chan struct{}
	opMask Op
}

func NewFsnWatcher() (*FsnWatcher, error) {
	w0, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &FsnWatcher{
		w:      w0,
		events: make(chan any),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
		opMask: AllOps,
	}
	go w.eventLoop()
	return w, nil
}

func (w *FsnWatcher) Close() error {
	close(w.quit)
	err := w.w.Close()
	<-w.done
	return err
}

func (w *FsnWatcher) SetOpMask(op Op) {
	w.opMask = op
}

func (w *FsnWatcher) Add(name string) error {
	return w.w.Add(name)
}

func (w *FsnWatcher) Remove(name string) error {
	return w.w.Remove(name)
}

// Receives *Event or error values. Closed after Close.
func (w *FsnWatcher) Events() <-chan any {
	return w.events
}

//----------

func (w *FsnWatcher) eventLoop() {
	defer close(w.done)
	defer close(w.events)
	for {
		select {
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.send(err)
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if u := w.convert(ev); u != nil {
				w.send(u)
			}
		}
	}
}

func (w *FsnWatcher) send(v any) {
	select {
	case w.events <- v:
	case <-w.quit:
	}
}

func (w *FsnWatcher) convert(ev fsnotify.Event) *Event {
	name := ev.Name
	subName := ""

	var op Op
	if ev.Has(fsnotify.Create) {
		op.Add(Create)
		n, sn := filepath.Split(name)
		name, subName = filepath.Clean(n), sn
	}
	if ev.Has(fsnotify.Write) {
		op.Add(Modify)
	}
	if ev.Has(fsnotify.Remove) {
		op.Add(Remove)
	}
	if ev.Has(fsnotify.Rename) {
		op.Add(Rename)
	}
	if ev.Has(fsnotify.Chmod) {
		op.Add(Attrib)
	}
	if op&w.opMask == 0 {
		return nil
	}
	return &Event{Op: op, Name: name, SubName: subName}
}
