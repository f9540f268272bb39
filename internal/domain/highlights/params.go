package highlights

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput reports input the detectors cannot work with: an empty
	// sample sequence or a transcript word with missing or impossible fields.
	ErrMalformedInput = errors.New("malformed input")
	// ErrInvalidParams reports tunables outside their allowed range.
	ErrInvalidParams = errors.New("invalid detection params")
)

const (
	DefaultThreshold = 0.7
	// DefaultRateCorrection compensates for the decoder handing over an
	// interleaved two-channel stream while reporting the per-channel rate.
	// It is a compensating factor for that quirk, not a property of the audio.
	DefaultRateCorrection = 2.0
	DefaultMinGap         = 1.5
	DefaultMinSeparation  = 3.0
	DefaultHalfWidth      = 3.0
)

// Params holds every tunable of the extraction and fusion passes. All times
// are in seconds.
type Params struct {
	Threshold      float64
	RateCorrection float64
	MinGap         float64
	MinSeparation  float64
	HalfWidth      float64
	Vocabulary     Vocabulary
}

func DefaultParams() Params {
	return Params{
		Threshold:      DefaultThreshold,
		RateCorrection: DefaultRateCorrection,
		MinGap:         DefaultMinGap,
		MinSeparation:  DefaultMinSeparation,
		HalfWidth:      DefaultHalfWidth,
		Vocabulary:     DefaultVocabulary(),
	}
}

func (p Params) Validate() error {
	if !(p.Threshold > 0 && p.Threshold <= 1) {
		return fmt.Errorf("%w: threshold must be in (0,1], got %v", ErrInvalidParams, p.Threshold)
	}
	if !(p.RateCorrection > 0) {
		return fmt.Errorf("%w: rate correction must be > 0, got %v", ErrInvalidParams, p.RateCorrection)
	}
	if p.MinGap < 0 {
		return fmt.Errorf("%w: min gap must be >= 0, got %v", ErrInvalidParams, p.MinGap)
	}
	if p.MinSeparation < 0 {
		return fmt.Errorf("%w: min separation must be >= 0, got %v", ErrInvalidParams, p.MinSeparation)
	}
	if !(p.HalfWidth > 0) {
		return fmt.Errorf("%w: half width must be > 0, got %v", ErrInvalidParams, p.HalfWidth)
	}
	return nil
}
