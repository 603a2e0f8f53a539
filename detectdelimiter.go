package rindex

import (
	"fmt"
	"io"
	"strings"

	"github.com/csimplestring/go-csv/detector"
)

// DetermineDelimiter returns the single most likely rune that would delimit the
// values in the reader, assuming a CSV-like file.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return ','
}

// delimiterHint explains a wrong column count when the offending line looks
// like it was written with some other delimiter. Returns "" otherwise.
func delimiterHint(line string) string {
	delim := DetermineDelimiter(strings.NewReader(line + "\n"))
	if delim == '\t' || !strings.ContainsRune(line, delim) {
		return ""
	}

	return fmt.Sprintf(" (the line appears to be delimited by %q rather than tabs)", delim)
}
