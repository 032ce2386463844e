package widget

// UIContext is the host environment. All tree mutations and layout passes happen on the ui goroutine.
type UIContext interface {
	Error(error)

	// Runs f later on the ui goroutine, after the current call stack.
	RunOnUIGoRoutine(f func())
}
