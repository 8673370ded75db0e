package convert

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFileKind is returned for inputs outside the supported extensions.
var ErrUnsupportedFileKind = errors.New("unsupported file type")

// MalformedInputError reports a structured document that failed to parse.
type MalformedInputError struct {
	Kind Kind
	Name string
	Err  error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed %s document %s: %v", e.Kind, e.Name, e.Err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}
