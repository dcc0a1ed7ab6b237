// Package watcher reports changes made on disk to the files open in the
// editor.
//
// Editors and tools often replace a file by writing a temporary and
// renaming it over the original, which drops a watch placed on the file
// itself. The watcher therefore watches each file's directory and filters
// the directory's events down to the files it was asked about.
//
// Poll never blocks, so the watcher fits a single-goroutine event loop:
//
//	w, _ := watcher.New()
//	_ = w.Watch("notes.txt")
//	for {
//	    events, err := w.Poll()
//	    ...
//	}
package watcher

import (
	"errors"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Common errors returned by watcher operations.
var (
	ErrWatcherClosed = errors.New("watcher is closed")
	ErrNotWatching   = errors.New("path is not being watched")
)

// Op represents the type of file system operation.
type Op uint32

const (
	// OpCreate indicates a file was created.
	OpCreate Op = 1 << iota
	// OpWrite indicates a file was written to.
	OpWrite
	// OpRemove indicates a file was removed.
	OpRemove
	// OpRename indicates a file was renamed.
	OpRename
	// OpChmod indicates file permissions were changed.
	OpChmod
)

var opNames = []struct {
	op   Op
	name string
}{
	{OpCreate, "CREATE"},
	{OpWrite, "WRITE"},
	{OpRemove, "REMOVE"},
	{OpRename, "RENAME"},
	{OpChmod, "CHMOD"},
}

// String returns the names of the operations joined by "|".
func (op Op) String() string {
	var names []string
	for _, n := range opNames {
		if op.Has(n.op) {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "UNKNOWN"
	}
	return strings.Join(names, "|")
}

// Has returns true if the operation includes the given op.
func (op Op) Has(o Op) bool {
	return op&o == o
}

// Event is a change to a watched file.
type Event struct {
	// Path is the absolute path of the file.
	Path string

	// Op is the combined set of operations seen since the last poll.
	Op Op
}

// Watcher watches a set of files through their directories.
type Watcher struct {
	fs    *fsnotify.Watcher
	files map[string]bool
	dirs  map[string]int // directory -> watched files in it

	closed bool
}

// New creates a watcher with nothing watched.
func New() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fs:    fsw,
		files: make(map[string]bool),
		dirs:  make(map[string]int),
	}, nil
}

// Watch starts reporting changes to the file at path. The file need not
// exist yet, but its directory must. Watching a file twice does nothing.
func (w *Watcher) Watch(path string) error {
	if w.closed {
		return ErrWatcherClosed
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if w.files[abs] {
		return nil
	}

	dir := filepath.Dir(abs)
	if w.dirs[dir] == 0 {
		if err := w.fs.Add(dir); err != nil {
			return err
		}
	}
	w.dirs[dir]++
	w.files[abs] = true
	return nil
}

// Unwatch stops reporting changes to the file at path.
func (w *Watcher) Unwatch(path string) error {
	if w.closed {
		return ErrWatcherClosed
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if !w.files[abs] {
		return ErrNotWatching
	}

	delete(w.files, abs)
	dir := filepath.Dir(abs)
	w.dirs[dir]--
	if w.dirs[dir] == 0 {
		delete(w.dirs, dir)
		// The directory may already be gone, which removes the watch.
		_ = w.fs.Remove(dir)
	}
	return nil
}

// Sync makes the watched set equal to paths. Empty paths are skipped.
// Every path is attempted; the errors are joined.
func (w *Watcher) Sync(paths []string) error {
	want := make(map[string]bool, len(paths))
	var errs []error
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		want[abs] = true
		if err := w.Watch(abs); err != nil {
			errs = append(errs, err)
		}
	}
	for _, p := range w.WatchedPaths() {
		if !want[p] {
			errs = append(errs, w.Unwatch(p))
		}
	}
	return errors.Join(errs...)
}

// IsWatching returns true if the file at path is being watched.
func (w *Watcher) IsWatching(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	return w.files[abs]
}

// WatchedPaths returns all watched files in sorted order.
func (w *Watcher) WatchedPaths() []string {
	paths := make([]string, 0, len(w.files))
	for p := range w.files {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

// Poll returns the changes to watched files that arrived since the last
// call, one event per file in first-seen order, without blocking.
// Watcher errors received meanwhile are joined into err.
func (w *Watcher) Poll() ([]Event, error) {
	if w.closed {
		return nil, ErrWatcherClosed
	}

	var events []Event
	index := make(map[string]int)
	var errs []error
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return events, errors.Join(errs...)
			}
			op := convertOp(ev.Op)
			path := filepath.Clean(ev.Name)
			if op == 0 || !w.files[path] {
				continue
			}
			if i, seen := index[path]; seen {
				events[i].Op |= op
				continue
			}
			index[path] = len(events)
			events = append(events, Event{Path: path, Op: op})

		case err, ok := <-w.fs.Errors:
			if !ok {
				return events, errors.Join(errs...)
			}
			errs = append(errs, err)

		default:
			return events, errors.Join(errs...)
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.fs.Close()
}

func convertOp(op fsnotify.Op) Op {
	var out Op
	if op.Has(fsnotify.Create) {
		out |= OpCreate
	}
	if op.Has(fsnotify.Write) {
		out |= OpWrite
	}
	if op.Has(fsnotify.Remove) {
		out |= OpRemove
	}
	if op.Has(fsnotify.Rename) {
		out |= OpRename
	}
	if op.Has(fsnotify.Chmod) {
		out |= OpChmod
	}
	return out
}
