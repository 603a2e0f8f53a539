// rearrangementindexer computes the Rearrangement Index (Ri) of Lewin, Liao &
// Luo (2024) for every coordinates file in a directory. Each .tsv file holds
// one genome, one gene per row:
//
//	geneIndex  status  chromosome  start  end  ALG
//
// such as the Species_coordinates.tsv files written by SyntenyFinder. For
// every ALG in every genome it reports the splitting parameter (SCHR), the
// combining parameter (CCHR) and the rearrangement index RALG = 1 - SCHR*CCHR,
// written to Splitting_parameter.tsv, Combining_parameter.tsv and
// Rearrangement_index.tsv in the current directory. The genome-wide Ri, the
// mean RALG, is written to Genome_rearrangement_index.tsv.
//
// The directory may also be a gs://bucket/prefix location. Inputs may be
// gzip, zlib, bzip2, xz or zip (first member only) compressed as long as their
// names still end in .tsv.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"github.com/carbocation/rindex"
	"github.com/carbocation/rindex/batch"
	_ "github.com/carbocation/rindex/compileinfoprint"
)

const citation = "If you use this script in your work, please cite: Lewin TD, Liao IJY, Luo YJ. Annelid comparative genomics and the evolution of massive lineage-specific genome rearrangement in bilaterians. BioRxiv (2024)"

const usage = "Usage: rearrangementindexer input_directory"

func main() {
	os.Exit(run(os.Args[1:], ".", os.Stderr))
}

// run returns the process exit code. Outputs go to outDir; messages go to
// stderr.
func run(args []string, outDir string, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, usage)
		return 1
	}

	logger := log.New(stderr, "", log.LstdFlags)
	logger.Println(citation)

	if err := indexDirectory(context.Background(), args[0], outDir, logger); err != nil {
		logger.Println(err)
		return 1
	}

	logger.Println(citation)

	return 0
}

func indexDirectory(ctx context.Context, location, outDir string, logger *log.Logger) error {
	location, err := rindex.ExpandHome(location)
	if err != nil {
		return err
	}

	var client *storage.Client
	if rindex.IsGoogleStorage(location) {
		client, err = storage.NewClient(ctx)
		if err != nil {
			return pfx.Err(err)
		}
		defer client.Close()
	}

	inputs, err := rindex.ListInputs(ctx, location, client)
	if err != nil {
		return err
	}
	logger.Printf("Found %d coordinates files in %s\n", len(inputs), location)

	agg, err := batch.Run(ctx, inputs, client, logger)
	if err != nil {
		return err
	}

	return batch.WriteOutputs(outDir, agg, logger)
}
