package execctx

import "errors"

// Errors reported by actions.
var (
	// ErrQuit asks the event loop to stop.
	ErrQuit = errors.New("quit requested")

	// ErrUnsavedChanges refuses a quit while a buffer is dirty.
	ErrUnsavedChanges = errors.New("a file has unsaved changes")

	// ErrReadOnly indicates an edit of a read-only buffer.
	ErrReadOnly = errors.New("buffer is read-only")

	// ErrNoBuffer indicates an action that needs a document ran without one.
	ErrNoBuffer = errors.New("no buffer is open")
)
