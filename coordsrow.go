package rindex

// Map columns in the coordinates file to their positions
const (
	GeneIndex int = iota
	Status
	Chromosome
	Start
	End
	ALG

	// NumColumns is the exact number of tab-delimited fields on every row.
	NumColumns
)

// GeneRecord is one row of a coordinates file, such as the
// Species_coordinates.tsv files produced by SyntenyFinder.
type GeneRecord struct {
	GeneID     int
	Status     string // Not used by any metric
	Chromosome string
	Start      int // Carried through, but not used by any metric yet
	End        int
	ALG        string // Raw label until it has passed through alg.Normalize
}
