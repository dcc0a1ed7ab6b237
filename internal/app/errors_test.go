package app

import (
	"errors"
	"io/fs"
	"testing"
)

func TestOperationError(t *testing.T) {
	err := NewOperationError("bind", "file.write", fs.ErrInvalid).WithContext("keymap.yaml line 3")
	if got := err.Error(); got != "bind file.write (keymap.yaml line 3): invalid argument" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, fs.ErrInvalid) {
		t.Error("wrapped error not found")
	}

	var nilErr *OperationError
	if nilErr.WithContext("x") != nil || nilErr.Error() != "" {
		t.Error("nil receiver not handled")
	}
}

func TestInitError(t *testing.T) {
	err := &InitError{Component: "config", Err: fs.ErrNotExist}
	if err.Error() != "init config: file does not exist" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("wrapped error not found")
	}
}
