package rearrangement

import (
	"sort"

	"github.com/carbocation/rindex"
)

// ContingencyTable cross-tabulates one genome's genes by chromosome and ALG.
// It is dense: every chromosome has a (possibly zero) count for every ALG
// observed anywhere in the genome. It is read-only once built.
type ContingencyTable struct {
	counts      map[string]map[string]int // Chromosome => ALG => genes
	chromTotal  map[string]int
	algTotal    map[string]int
	chromosomes []string // Sorted
	algs        []string // Sorted
}

// NewContingencyTable counts records by (chromosome, ALG). ALG labels are
// used as given, so records should already be normalized.
func NewContingencyTable(records []rindex.GeneRecord) *ContingencyTable {
	t := &ContingencyTable{
		counts:     make(map[string]map[string]int),
		chromTotal: make(map[string]int),
		algTotal:   make(map[string]int),
	}

	for _, rec := range records {
		row, exists := t.counts[rec.Chromosome]
		if !exists {
			row = make(map[string]int)
			t.counts[rec.Chromosome] = row
			t.chromosomes = append(t.chromosomes, rec.Chromosome)
		}
		row[rec.ALG]++

		if _, seen := t.algTotal[rec.ALG]; !seen {
			t.algs = append(t.algs, rec.ALG)
		}
		t.algTotal[rec.ALG]++
		t.chromTotal[rec.Chromosome]++
	}

	sort.Strings(t.chromosomes)
	sort.Strings(t.algs)

	return t
}

// Count returns the number of genes from alg on chrom. Pairs that were never
// observed count as zero.
func (t *ContingencyTable) Count(chrom, alg string) int {
	return t.counts[chrom][alg]
}

// ALGs returns every observed ALG in ascending lexical order.
func (t *ContingencyTable) ALGs() []string {
	return append([]string(nil), t.algs...)
}

// ChromosomeTotal is the number of genes on chrom, summed over all ALGs.
func (t *ContingencyTable) ChromosomeTotal(chrom string) int {
	return t.chromTotal[chrom]
}

// ALGTotal is the number of genes assigned to alg, genome-wide.
func (t *ContingencyTable) ALGTotal(alg string) int {
	return t.algTotal[alg]
}

// DominantChromosome returns the chromosome holding the most genes from alg,
// and that count. Ties go to the chromosome that sorts first lexically. That
// choice is arbitrary but reproducible, and matches the row order of a
// grouped cross-tabulation. ok is false if alg was never observed.
func (t *ContingencyTable) DominantChromosome(alg string) (chrom string, count int, ok bool) {
	if t.algTotal[alg] < 1 {
		return "", 0, false
	}

	count = -1
	for _, c := range t.chromosomes {
		if n := t.counts[c][alg]; n > count {
			chrom, count = c, n
		}
	}

	return chrom, count, true
}
