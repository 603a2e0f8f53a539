// Package alg maps ancestral linkage group (ALG) labels onto their canonical
// names. Some nomenclatures split an ALG into sub-groups (A1a and A1b, for
// instance); those are collapsed before any counting happens.
package alg

import "github.com/carbocation/rindex"

// subgroups maps each known sub-group label to its canonical ALG. Matching is
// exact and case-sensitive.
var subgroups = map[string]string{
	"A1a": "A1",
	"A1b": "A1",
	"Ea":  "E",
	"Eb":  "E",
	"Qa":  "Q",
	"Qb":  "Q",
	"Qc":  "Q",
	"Qd":  "Q",
}

// Normalize returns the canonical form of label. Labels that are not known
// sub-groups are returned unchanged, so genomes using other ALG nomenclatures
// still process.
func Normalize(label string) string {
	if canonical, exists := subgroups[label]; exists {
		return canonical
	}

	return label
}

// NormalizeRecords returns a copy of records with every ALG label normalized.
func NormalizeRecords(records []rindex.GeneRecord) []rindex.GeneRecord {
	out := make([]rindex.GeneRecord, len(records))
	for i, rec := range records {
		rec.ALG = Normalize(rec.ALG)
		out[i] = rec
	}

	return out
}
