package models

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// NewPitchRange builds a [PitchRange] from an ordered sequence of pitch samples.
//
// An empty sequence yields a zero summary.
func NewPitchRange(pitches []float64) PitchRange {
	if len(pitches) == 0 {
		return PitchRange{}
	}

	samples := make([]float64, len(pitches))
	copy(samples, pitches)

	return PitchRange{
		Avg:     stat.Mean(samples, nil),
		Max:     floats.Max(samples),
		Min:     floats.Min(samples),
		Pitches: samples,
	}
}
