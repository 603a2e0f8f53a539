// Package batch runs the rearrangement calculator over a set of genomes and
// outer-joins the per-genome results into wide ALG × genome tables.
package batch

import (
	"errors"
	"fmt"
	"sort"

	"github.com/carbocation/rindex/rearrangement"
	"gopkg.in/guregu/null.v3"
)

// ErrDuplicateGenome is returned when two genomes share a column name.
var ErrDuplicateGenome = errors.New("duplicate genome name")

// Aggregator collects per-genome results. Genomes are independent: the only
// thing they share is the union of ALG labels that pads every column. The
// tables it builds do not depend on the order genomes were added in. It is
// not safe for concurrent use.
type Aggregator struct {
	genomes map[string]*rearrangement.Genome
}

func NewAggregator() *Aggregator {
	return &Aggregator{genomes: make(map[string]*rearrangement.Genome)}
}

// Add appends one genome's column to the batch.
func (a *Aggregator) Add(g *rearrangement.Genome) error {
	if _, exists := a.genomes[g.Name]; exists {
		return fmt.Errorf("%s: %w", g.Name, ErrDuplicateGenome)
	}

	a.genomes[g.Name] = g

	return nil
}

// Genomes returns the column names, sorted.
func (a *Aggregator) Genomes() []string {
	out := make([]string, 0, len(a.genomes))
	for name := range a.genomes {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// ALGs returns the union of ALGs over every genome, sorted.
func (a *Aggregator) ALGs() []string {
	seen := make(map[string]struct{})
	for _, g := range a.genomes {
		for alg := range g.Metrics {
			seen[alg] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for alg := range seen {
		out = append(out, alg)
	}
	sort.Strings(out)

	return out
}

// Table outer-joins one measure across all genomes. Every ALG seen in any
// genome gets a row; a genome without that ALG gets a null cell.
func (a *Aggregator) Table(measure rearrangement.Measure) *Table {
	t := &Table{
		Measure: measure,
		ALGs:    a.ALGs(),
		Genomes: a.Genomes(),
		cells:   make(map[string]map[string]null.Float),
	}

	for _, alg := range t.ALGs {
		row := make(map[string]null.Float, len(t.Genomes))
		for _, name := range t.Genomes {
			row[name] = a.genomes[name].Metric(alg).Value(measure)
		}
		t.cells[alg] = row
	}

	return t
}

// Summaries returns the genome-level Ri statistics, one per genome, sorted by
// name.
func (a *Aggregator) Summaries() ([]GenomeSummary, error) {
	out := make([]GenomeSummary, 0, len(a.genomes))
	for _, name := range a.Genomes() {
		s, err := a.genomes[name].Summarize()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out = append(out, newGenomeSummary(name, s))
	}

	return out, nil
}
