package fswatcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func readEvent(t *testing.T, w *FsnWatcher, fn func(*Event) bool) {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case <-timeout:
			t.Fatal("event timeout")
		case ev := <-w.Events():
			if err, ok := ev.(error); ok {
				t.Fatal(err)
			}
			if fn(ev.(*Event)) {
				return
			}
		}
	}
}

func mustNew(t *testing.T) *FsnWatcher {
	t.Helper()
	w, err := NewFsnWatcher()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { w.Close() })
	return w
}

//----------

func TestFsnWatcherCreateModify(t *testing.T) {
	dir := t.TempDir()
	w := mustNew(t)
	if err := w.Add(dir); err != nil {
		t.Fatal(err)
	}

	name := filepath.Join(dir, "form.toml")
	if err := os.WriteFile(name, []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}
	readEvent(t, w, func(ev *Event) bool {
		return ev.Op.HasAny(Create) && ev.Name == dir && ev.JoinNames() == name
	})

	if err := os.WriteFile(name, []byte("b"), 0o644); err != nil {
		t.Fatal(err)
	}
	readEvent(t, w, func(ev *Event) bool {
		return ev.Op.HasAny(Modify) && ev.JoinNames() == name
	})
}

func TestFsnWatcherOpMask(t *testing.T) {
	dir := t.TempDir()
	w := mustNew(t)
	w.SetOpMask(Remove)
	if err := w.Add(dir); err != nil {
		t.Fatal(err)
	}
	name := filepath.Join(dir, "a")
	if err := os.WriteFile(name, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(name); err != nil {
		t.Fatal(err)
	}
	readEvent(t, w, func(ev *Event) bool {
		if !ev.Op.HasAny(Remove) {
			t.Fatalf("unexpected event: %v", ev.Op)
		}
		return true
	})
}

func TestFsnWatcherCloseWithoutReader(t *testing.T) {
	dir := t.TempDir()
	w, err := NewFsnWatcher()
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Add(dir); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(50 * time.Millisecond)
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	// drained and closed
	for range w.Events() {
	}
}

func TestOpString(t *testing.T) {
	op := Create | Modify
	if s := op.String(); s != "create|modify" {
		t.Fatal(s)
	}
}
