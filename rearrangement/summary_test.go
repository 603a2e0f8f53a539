package rearrangement

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	// A: RALG 0. B: chr2 holds 3 of 4 B genes plus 1 C gene, so
	// SCHR = 0.75, CCHR = 0.75, RALG = 0.4375. C: SCHR 1, CCHR 0.25, RALG 0.75.
	g := Calculate("summary.tsv", concat(
		genes("chr1", "A", 5),
		genes("chr2", "B", 3),
		genes("chr3", "B", 1),
		genes("chr2", "C", 1),
	), nil)

	s, err := g.Summarize()
	if err != nil {
		t.Fatal(err)
	}

	if s.NALGs != 3 {
		t.Errorf("Expected 3 ALGs, got %d", s.NALGs)
	}

	expectedRi := (0 + 0.4375 + 0.75) / 3
	if !s.Ri.Valid || math.Abs(s.Ri.Float64-expectedRi) > tolerance {
		t.Errorf("Ri %v, expected %v", s.Ri.Float64, expectedRi)
	}
	if s.Min.Float64 != 0 || math.Abs(s.Max.Float64-0.75) > tolerance {
		t.Errorf("Unexpected range %v - %v", s.Min.Float64, s.Max.Float64)
	}
	if !s.SD.Valid || s.SD.Float64 <= 0 {
		t.Errorf("Expected a positive SD, got %+v", s.SD)
	}
}

func TestSummarizeEmptyGenome(t *testing.T) {
	g := Calculate("empty.tsv", nil, nil)

	s, err := g.Summarize()
	if err != nil {
		t.Fatal(err)
	}
	if s.NALGs != 0 || s.Ri.Valid || s.SD.Valid || s.Min.Valid || s.Max.Valid {
		t.Errorf("Expected null statistics for an empty genome, got %+v", s)
	}
}
