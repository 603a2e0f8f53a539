package rearrangement

import (
	"sort"

	"github.com/montanaflynn/stats"
	"gopkg.in/guregu/null.v3"
)

// Summary describes the distribution of RALG across the ALGs of one genome.
// Ri, the genome's Rearrangement Index, is the mean. Every statistic is null
// for a genome with no genes.
type Summary struct {
	NALGs int
	Ri    null.Float
	SD    null.Float // Population standard deviation
	Min   null.Float
	Max   null.Float
}

// Summarize computes Ri over the ALGs present in the genome.
func (g *Genome) Summarize() (Summary, error) {
	algs := make([]string, 0, len(g.Metrics))
	for alg, m := range g.Metrics {
		if m.Index.Valid {
			algs = append(algs, alg)
		}
	}
	sort.Strings(algs)

	out := Summary{NALGs: len(algs)}
	if len(algs) < 1 {
		return out, nil
	}

	data := make(stats.Float64Data, 0, len(algs))
	for _, alg := range algs {
		data = append(data, g.Metrics[alg].Index.Float64)
	}

	mean, err := data.Mean()
	if err != nil {
		return out, err
	}
	sd, err := data.StandardDeviation()
	if err != nil {
		return out, err
	}
	min, err := data.Min()
	if err != nil {
		return out, err
	}
	max, err := data.Max()
	if err != nil {
		return out, err
	}

	out.Ri = null.FloatFrom(mean)
	out.SD = null.FloatFrom(sd)
	out.Min = null.FloatFrom(min)
	out.Max = null.FloatFrom(max)

	return out, nil
}
