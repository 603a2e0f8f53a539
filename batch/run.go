package batch

import (
	"context"

	"cloud.google.com/go/storage"
	"github.com/carbocation/rindex"
	"github.com/carbocation/rindex/alg"
	"github.com/carbocation/rindex/rearrangement"
)

// ProcessFile reads, validates and normalizes one coordinates file and runs
// the calculator over it. The genome is named after the input's base name.
func ProcessFile(ctx context.Context, in rindex.Input, client *storage.Client, logger rindex.Logger) (*rearrangement.Genome, error) {
	c, err := rindex.OpenCoordinates(ctx, in.Path, client)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	records := make([]rindex.GeneRecord, 0)
	for row := c.Read(); row != nil; row = c.Read() {
		records = append(records, *row)
	}
	if err := c.Err(); err != nil {
		return nil, err
	}

	return rearrangement.Calculate(in.Name, alg.NormalizeRecords(records), logger), nil
}

// Run processes every input in order and collects the results. The first
// failure aborts the batch and nothing is returned, so callers never see a
// partial set of columns.
func Run(ctx context.Context, inputs []rindex.Input, client *storage.Client, logger rindex.Logger) (*Aggregator, error) {
	if logger == nil {
		logger = rindex.Discard
	}

	agg := NewAggregator()
	for _, in := range inputs {
		logger.Printf("Processing file: %s\n", in.Path)

		g, err := ProcessFile(ctx, in, client, logger)
		if err != nil {
			return nil, err
		}

		if err := agg.Add(g); err != nil {
			return nil, err
		}
	}

	return agg, nil
}
