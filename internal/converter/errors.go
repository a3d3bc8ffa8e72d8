package converter

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrEmptyFile indicates no header row was found after the skipped lines.
var ErrEmptyFile = errors.New("empty file")

// ErrMalformed indicates a row that does not fit the header.
var ErrMalformed = errors.New("malformed table")

// FileError records the file and operation that failed.
type FileError struct {
	Path string
	Op   string // "read", "write"
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Skippable reports whether err affects only its own file. Missing and empty
// files are skipped; everything else stops the batch.
func Skippable(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, ErrEmptyFile)
}
