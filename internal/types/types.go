package types

import (
	"strconv"
	"time"
)

// TranscriptWord is one recognized spoken word as emitted by the recognizer.
type TranscriptWord struct {
	Text       string  `json:"word" validate:"required"`
	Start      float64 `json:"start" validate:"gte=0"`
	End        float64 `json:"end" validate:"gtefield=Start"`
	Confidence float64 `json:"conf" validate:"gte=0,lte=1"`
}

// Samples is a decoded PCM stream. Data holds every sample in decoder order
// (interleaved when Channels > 1) and SampleRate is the nominal rate in Hz.
type Samples struct {
	Data       []float64
	SampleRate int
	Channels   int
}

// ClipWindow is the time range rendered around one highlight. Bounds are
// integer durations so every window of the same half width has the same length.
type ClipWindow struct {
	Highlight float64
	Start     time.Duration
	End       time.Duration
}

// Label is the window start in seconds with millisecond precision. Callers
// naming files must handle windows that share a label.
func (w ClipWindow) Label() string {
	return strconv.FormatFloat(w.Start.Seconds(), 'f', 3, 64)
}

type Manifest struct {
	Input       string         `json:"input"`
	RunID       string         `json:"run_id"`
	DurationSec float64        `json:"duration_sec"`
	Params      ManifestParams `json:"params"`
	PeakCount   int            `json:"peak_count"`
	KeywordHits int            `json:"keyword_hits"`
	Clips       []ManifestClip `json:"clips"`
}

type ManifestParams struct {
	Threshold      float64 `json:"threshold"`
	RateCorrection float64 `json:"rate_correction"`
	MinGapSec      float64 `json:"min_gap_sec"`
	MinSepSec      float64 `json:"min_separation_sec"`
	HalfWidthSec   float64 `json:"half_width_sec"`
	VocabularySize int     `json:"vocabulary_size"`
}

type ManifestClip struct {
	ID           string   `json:"id"`
	HighlightSec float64  `json:"highlight_sec"`
	StartSec     float64  `json:"start_sec"`
	EndSec       float64  `json:"end_sec"`
	Keywords     []string `json:"keywords,omitempty"`
	File         string   `json:"file"`
	Subtitles    string   `json:"subtitles,omitempty"`
}
