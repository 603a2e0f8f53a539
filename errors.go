package rindex

import (
	"errors"
	"fmt"
)

// ErrNoInputs is returned when an input location holds no .tsv files.
var ErrNoInputs = errors.New("no .tsv files found")

// InputFormatError reports a row that does not follow the fixed six-column
// coordinates layout. A single bad row fails the whole file.
type InputFormatError struct {
	Path   string
	Line   int
	Reason string
}

func (e *InputFormatError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Reason)
}
