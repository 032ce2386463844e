package event

import (
	"image"
)

// Events handled by the ui goroutine.

type WindowClose struct{}

// The host window (or the requested output size) changed.
type WindowResize struct {
	Size image.Point
}

// Runs a function on the ui goroutine.
type UIRunFunc struct {
	Func func()
}

// A watched file changed on disk.
type FileChange struct {
	Name string
}
