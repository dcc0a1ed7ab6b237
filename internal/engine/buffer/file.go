package buffer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Errors returned by file operations.
var (
	ErrNoPath   = errors.New("buffer has no associated file")
	ErrReadOnly = errors.New("buffer is read-only")
)

// IOError reports a failed open or write. The buffer operation was
// abandoned; Err holds the cause.
type IOError struct {
	Op   string // "open" or "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Open replaces the buffer's content with the lines of the file at path.
// The buffer is reset first, so on failure it is left as a single empty
// line with no associated file.
func (b *Buffer) Open(path string, readOnly bool) error {
	b.Close()

	f, err := os.Open(path)
	if err != nil {
		return &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	if err := b.readLines(bufio.NewReader(f)); err != nil {
		b.Close()
		return &IOError{Op: "open", Path: path, Err: err}
	}

	b.filePath = path
	b.isReadOnly = readOnly
	if info, err := f.Stat(); err == nil {
		b.modTime = info.ModTime()
	}
	return nil
}

// readLines appends every line read from r, dropping line terminators.
// The first line read replaces the initial empty line.
func (b *Buffer) readLines(r *bufio.Reader) error {
	first := true
	for {
		s, err := r.ReadString('\n')
		if len(s) > 0 {
			s = strings.TrimSuffix(s, "\n")
			s = strings.TrimSuffix(s, "\r")
			if first {
				b.lines[b.firstLine].text = []rune(s)
				first = false
			} else {
				id := b.newLine([]rune(s))
				b.link(b.lastLine, id)
				b.lastLine = id
				b.numberOfLines++
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Write saves every line, each followed by a single "\n", to the
// associated file, replacing its content. With create the file is created
// when missing; otherwise it must already exist.
func (b *Buffer) Write(create bool) error {
	if b.filePath == "" {
		return &IOError{Op: "write", Err: ErrNoPath}
	}
	return b.writeFile(b.filePath, create)
}

// WriteAs saves the document to path, creating the file when missing, and
// associates the buffer with it. On failure the buffer keeps its previous
// file.
func (b *Buffer) WriteAs(path string) error {
	if path == "" {
		return &IOError{Op: "write", Err: ErrNoPath}
	}
	return b.writeFile(path, true)
}

func (b *Buffer) writeFile(path string, create bool) error {
	if b.isReadOnly {
		return &IOError{Op: "write", Path: path, Err: ErrReadOnly}
	}

	flags := os.O_WRONLY | os.O_TRUNC
	if create {
		flags |= os.O_CREATE
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}

	if err := b.writeLines(f); err != nil {
		f.Close()
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}

	b.filePath = path
	b.hasUnsavedChanges = false
	b.isNewFile = false
	b.modTime = time.Time{}
	if info, err := os.Stat(path); err == nil {
		b.modTime = info.ModTime()
	}
	return nil
}

// WriteTo writes the document to w in file format.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := b.writeLines(cw)
	return cw.n, err
}

func (b *Buffer) writeLines(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for id := b.firstLine; id != noLine; id = b.lines[id].next {
		if _, err := bw.WriteString(string(b.lines[id].text)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
