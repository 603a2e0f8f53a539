package batch

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/carbocation/rindex/rearrangement"
	"github.com/gocarina/gocsv"
	"gopkg.in/guregu/null.v3"
)

// Table is one measure laid out with a row per ALG and a column per genome.
type Table struct {
	Measure rearrangement.Measure
	ALGs    []string // Row labels, sorted
	Genomes []string // Column labels, sorted
	cells   map[string]map[string]null.Float
}

// Cell returns the value for (alg, genome), or null if either is unknown.
func (t *Table) Cell(alg, genome string) null.Float {
	return t.cells[alg][genome]
}

// WriteTSV writes the table with a header of genome names after an empty
// corner cell, then one row per ALG. Null cells are left blank.
func (t *Table) WriteTSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	header := append([]string{""}, t.Genomes...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, alg := range t.ALGs {
		row := make([]string, 0, len(t.Genomes)+1)
		row = append(row, alg)
		for _, name := range t.Genomes {
			row = append(row, NullFloatFormatter(t.cells[alg][name]))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// NullFloatFormatter renders a value at full precision, or "" when null.
func NullFloatFormatter(n null.Float) string {
	if !n.Valid {
		return ""
	}

	return strconv.FormatFloat(n.Float64, 'f', -1, 64)
}

// Cell renders through NullFloatFormatter when marshalled by gocsv.
type Cell struct {
	null.Float
}

func (c Cell) MarshalCSV() (string, error) {
	return NullFloatFormatter(c.Float), nil
}

// GenomeSummary is one row of the per-genome Ri table.
type GenomeSummary struct {
	Genome string `csv:"Genome"`
	NALGs  int    `csv:"N_ALGs"`
	Ri     Cell   `csv:"Ri"`
	SD     Cell   `csv:"RiSD"`
	Min    Cell   `csv:"RiMin"`
	Max    Cell   `csv:"RiMax"`
}

func newGenomeSummary(name string, s rearrangement.Summary) GenomeSummary {
	return GenomeSummary{
		Genome: name,
		NALGs:  s.NALGs,
		Ri:     Cell{s.Ri},
		SD:     Cell{s.SD},
		Min:    Cell{s.Min},
		Max:    Cell{s.Max},
	}
}

// WriteSummaryTSV writes the per-genome Ri table.
func WriteSummaryTSV(w io.Writer, rows []GenomeSummary) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	return gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(cw))
}
