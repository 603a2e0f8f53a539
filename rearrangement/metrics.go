// Package rearrangement computes the Rearrangement Index of Lewin, Liao & Luo
// (2024) for a single genome.
//
// For each ALG, with its dominant chromosome being the one that carries the
// most of its genes:
//
//	SCHR = genes of the ALG on the dominant chromosome / genes of the ALG
//	CCHR = genes of the ALG on the dominant chromosome / genes on that chromosome
//	RALG = 1 - SCHR*CCHR
//
// RALG is 0 when an ALG sits alone, intact, on a single chromosome and
// approaches 1 as it is split apart or mixed with other ALGs. The genome-wide
// Ri is the mean RALG.
package rearrangement

import (
	"github.com/carbocation/rindex"
	"gopkg.in/guregu/null.v3"
)

// Measure selects one of the three per-ALG values.
type Measure int

const (
	RearrangementIndex Measure = iota
	SplittingParameter
	CombiningParameter
)

// Measures lists every Measure in output order.
var Measures = []Measure{RearrangementIndex, SplittingParameter, CombiningParameter}

func (m Measure) String() string {
	switch m {
	case RearrangementIndex:
		return "RALG"
	case SplittingParameter:
		return "SCHR"
	case CombiningParameter:
		return "CCHR"
	}

	return "unknown"
}

// Metrics holds the values for one ALG in one genome. All three fields are
// null when the ALG has no genes in the genome.
type Metrics struct {
	Splitting null.Float // SCHR
	Combining null.Float // CCHR
	Index     null.Float // RALG
}

func (m Metrics) Value(measure Measure) null.Float {
	switch measure {
	case SplittingParameter:
		return m.Splitting
	case CombiningParameter:
		return m.Combining
	}

	return m.Index
}

// Genome is the result of running the calculator over one coordinates file.
type Genome struct {
	Name    string
	Table   *ContingencyTable
	Metrics map[string]Metrics // Keyed by canonical ALG
}

// Metric returns the values for alg. An ALG absent from this genome yields
// null values rather than zeros.
func (g *Genome) Metric(alg string) Metrics {
	return g.Metrics[alg]
}

// ALGs returns the ALGs present in this genome, sorted.
func (g *Genome) ALGs() []string {
	return g.Table.ALGs()
}

// Calculate computes the per-ALG metrics for one genome. records must already
// be validated and normalized. logger may be nil.
func Calculate(name string, records []rindex.GeneRecord, logger rindex.Logger) *Genome {
	if logger == nil {
		logger = rindex.Discard
	}

	table := NewContingencyTable(records)

	g := &Genome{
		Name:    name,
		Table:   table,
		Metrics: make(map[string]Metrics, len(table.algs)),
	}

	for _, alg := range table.algs {
		logger.Printf("Calculating metrics for ALG: %s\n", alg)
		g.Metrics[alg] = calculateALG(table, alg)
	}

	return g
}

func calculateALG(table *ContingencyTable, alg string) Metrics {
	chrom, onDominant, ok := table.DominantChromosome(alg)
	if !ok {
		return Metrics{}
	}

	// Both denominators are >= onDominant >= 1 here
	splitting := float64(onDominant) / float64(table.ALGTotal(alg))
	combining := float64(onDominant) / float64(table.ChromosomeTotal(chrom))

	// The explicit conversion forbids a fused multiply-add, keeping
	// RALG == 1 - SCHR*CCHR bit for bit.
	return Metrics{
		Splitting: null.FloatFrom(splitting),
		Combining: null.FloatFrom(combining),
		Index:     null.FloatFrom(1 - float64(splitting*combining)),
	}
}
