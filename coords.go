package rindex

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// Coordinates reads GeneRecords from a tab-delimited coordinates file. Every
// row is validated; the first malformed row stops the reader and is reported
// by Err as an *InputFormatError.
type Coordinates struct {
	path string
	rc   io.ReadCloser
	cr   *csv.Reader
	err  error
}

// OpenCoordinates opens a local or gs:// coordinates file, decompressing it
// if needed. client may be nil when path is local.
func OpenCoordinates(ctx context.Context, path string, client *storage.Client) (*Coordinates, error) {
	rc, err := OpenInput(ctx, path, client)
	if err != nil {
		return nil, err
	}

	return NewCoordinates(rc, path), nil
}

// NewCoordinates wraps an already opened reader. path is only used in error
// messages. If r is an io.Closer, Close will close it.
func NewCoordinates(r io.Reader, path string) *Coordinates {
	rc, ok := r.(io.ReadCloser)
	if !ok {
		rc = &readCloserFaker{r}
	}

	cr := csv.NewReader(rc)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1 // Column count is checked per row below
	cr.ReuseRecord = true

	return &Coordinates{
		path: path,
		rc:   rc,
		cr:   cr,
	}
}

func (c *Coordinates) Close() error {
	return c.rc.Close()
}

func (c *Coordinates) Err() error {
	return c.err
}

// Read returns the next record, or nil at the end of the file or on error.
// Check Err after Read returns nil.
func (c *Coordinates) Read() *GeneRecord {
	if c.err != nil {
		return nil
	}

	cols, err := c.cr.Read()
	if errors.Is(err, io.EOF) {
		return nil
	}

	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		c.err = &InputFormatError{Path: c.path, Line: parseErr.Line, Reason: parseErr.Err.Error()}
		return nil
	} else if err != nil {
		c.err = pfx.Err(fmt.Errorf("%s: %w", c.path, err))
		return nil
	}

	line, _ := c.cr.FieldPos(0)

	row, reason := parseRow(cols)
	if reason != "" {
		c.err = &InputFormatError{Path: c.path, Line: line, Reason: reason}
		return nil
	}

	return row
}

func parseRow(cols []string) (*GeneRecord, string) {
	if len(cols) != NumColumns {
		return nil, fmt.Sprintf("expected %d tab-delimited columns, found %d%s", NumColumns, len(cols), delimiterHint(strings.Join(cols, "\t")))
	}

	row := &GeneRecord{
		Status:     cols[Status],
		Chromosome: strings.TrimSpace(cols[Chromosome]),
		ALG:        strings.TrimSpace(cols[ALG]),
	}

	var err error
	if row.GeneID, err = strconv.Atoi(strings.TrimSpace(cols[GeneIndex])); err != nil {
		return nil, fmt.Sprintf("gene index %q is not an integer", cols[GeneIndex])
	}
	if row.Start, err = strconv.Atoi(strings.TrimSpace(cols[Start])); err != nil {
		return nil, fmt.Sprintf("start %q is not an integer", cols[Start])
	}
	if row.End, err = strconv.Atoi(strings.TrimSpace(cols[End])); err != nil {
		return nil, fmt.Sprintf("end %q is not an integer", cols[End])
	}

	if row.Chromosome == "" {
		return nil, "chromosome is empty"
	}
	if row.ALG == "" {
		return nil, "ALG is empty"
	}

	return row, ""
}

// ReadGeneRecords reads every row of r. It fails on the first malformed row
// rather than skipping it.
func ReadGeneRecords(r io.Reader, path string) ([]GeneRecord, error) {
	c := NewCoordinates(r, path)

	out := make([]GeneRecord, 0)
	for row := c.Read(); row != nil; row = c.Read() {
		out = append(out, *row)
	}

	if err := c.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
