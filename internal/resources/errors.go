package resources

import (
	"errors"
	"fmt"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrParse        = errors.New("xml parse error")
	ErrRead         = errors.New("file read error")
)

// FileError is returned for every failure to load a resource file.
// Kind is one of ErrFileNotFound, ErrParse or ErrRead.
type FileError struct {
	Path string
	Kind error
	Err  error
}

func (e *FileError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *FileError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newFileError(path string, kind error, err error) *FileError {
	return &FileError{Path: path, Kind: kind, Err: err}
}
