package batch

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/carbocation/pfx"
	"github.com/carbocation/rindex"
	"github.com/carbocation/rindex/rearrangement"
)

// Output file names, one per measure.
var OutputFilenames = map[rearrangement.Measure]string{
	rearrangement.RearrangementIndex: "Rearrangement_index.tsv",
	rearrangement.SplittingParameter: "Splitting_parameter.tsv",
	rearrangement.CombiningParameter: "Combining_parameter.tsv",
}

// SummaryFilename holds the genome-level Ri table.
const SummaryFilename = "Genome_rearrangement_index.tsv"

type renderedOutput struct {
	name string
	data []byte
}

// WriteOutputs writes the three measure tables and the genome summary into
// dir. Every file is rendered and staged in a temporary file before any
// destination is replaced, so a failure while rendering or staging leaves dir
// as it was. The final renames happen one file at a time.
func WriteOutputs(dir string, agg *Aggregator, logger rindex.Logger) error {
	if logger == nil {
		logger = rindex.Discard
	}

	outputs := make([]renderedOutput, 0, len(rearrangement.Measures)+1)
	for _, measure := range rearrangement.Measures {
		var buf bytes.Buffer
		if err := agg.Table(measure).WriteTSV(&buf); err != nil {
			return pfx.Err(err)
		}
		outputs = append(outputs, renderedOutput{name: OutputFilenames[measure], data: buf.Bytes()})
	}

	summaries, err := agg.Summaries()
	if err != nil {
		return pfx.Err(err)
	}
	for _, s := range summaries {
		logger.Printf("%s: Ri = %s over %d ALGs\n", s.Genome, NullFloatFormatter(s.Ri.Float), s.NALGs)
	}

	var buf bytes.Buffer
	if err := WriteSummaryTSV(&buf, summaries); err != nil {
		return pfx.Err(err)
	}
	outputs = append(outputs, renderedOutput{name: SummaryFilename, data: buf.Bytes()})

	staged := make([]string, 0, len(outputs))
	cleanup := func() {
		for _, tmpPath := range staged {
			os.Remove(tmpPath)
		}
	}

	for _, out := range outputs {
		dest := filepath.Join(dir, out.name)
		if info, err := os.Stat(dest); err == nil && info.IsDir() {
			cleanup()
			return pfx.Err(fmt.Errorf("%s: destination is a directory", dest))
		}

		tmpPath, err := stage(dir, out.data)
		if err != nil {
			cleanup()
			return pfx.Err(fmt.Errorf("%s: %w", dest, err))
		}
		staged = append(staged, tmpPath)
	}

	for i, out := range outputs {
		dest := filepath.Join(dir, out.name)
		if err := os.Rename(staged[i], dest); err != nil {
			staged = staged[i:]
			cleanup()
			return pfx.Err(err)
		}
		logger.Printf("Saved %s\n", dest)
	}

	return nil
}

// stage writes data to a new temporary file in dir and returns its path.
func stage(dir string, data []byte) (string, error) {
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return "", err
	}
	tmpPath := tmp.Name()

	// CreateTemp makes the file private; the tables are meant to be shared.
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", err
	}

	return tmpPath, nil
}
