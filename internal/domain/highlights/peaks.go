package highlights

import (
	"fmt"
	"math"
)

// DetectPeaks returns the time of every sample whose absolute amplitude is
// strictly above threshold*max(|sample|). Times are index/(sampleRate*rateCorrection)
// and come out in ascending order. A silent sequence yields no peaks.
func DetectPeaks(samples []float64, sampleRate int, threshold, rateCorrection float64) ([]float64, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: empty sample sequence", ErrMalformedInput)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate must be > 0, got %d", ErrMalformedInput, sampleRate)
	}
	if !(threshold > 0 && threshold <= 1) {
		return nil, fmt.Errorf("%w: threshold must be in (0,1], got %v", ErrInvalidParams, threshold)
	}
	if !(rateCorrection > 0) {
		return nil, fmt.Errorf("%w: rate correction must be > 0, got %v", ErrInvalidParams, rateCorrection)
	}

	var peak float64
	for _, s := range samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		return nil, nil
	}

	limit := threshold * peak
	rate := float64(sampleRate) * rateCorrection
	var out []float64
	for i, s := range samples {
		if math.Abs(s) > limit {
			out = append(out, float64(i)/rate)
		}
	}
	return out, nil
}

// Coalesce collapses bursts of raw peak times. The first time is kept and each
// later one only if it is at least minGap after the last kept time. Input must
// be sorted ascending.
func Coalesce(times []float64, minGap float64) []float64 {
	if len(times) == 0 {
		return nil
	}
	out := []float64{times[0]}
	last := times[0]
	for _, t := range times[1:] {
		if t-last >= minGap {
			out = append(out, t)
			last = t
		}
	}
	return out
}
