package ports

import (
	"context"
	"time"

	"github.com/forPelevin/goalcut/internal/types"
)

type RenderOptions struct {
	// Format is "gif" or "mp4".
	Format string
	Width  int
	Height int
	FPS    int
	// BurnASS, when set, is an ASS subtitle file burned into the clip.
	BurnASS string
}

type VideoTool interface {
	// ExtractSpeechAudio writes mono 16 kHz PCM for speech recognition.
	ExtractSpeechAudio(ctx context.Context, inVideo, outWav string) error
	// ExtractPeakAudio writes the source's native-rate stereo PCM used for
	// amplitude peaks.
	ExtractPeakAudio(ctx context.Context, inVideo, outWav string) error
	RenderClip(ctx context.Context, inVideo string, w types.ClipWindow, outPath string, opts RenderOptions) error
	ProbeDuration(ctx context.Context, inVideo string) (time.Duration, error)
}

type ASR interface {
	Transcribe(ctx context.Context, wavPath, cacheDir string) ([]types.TranscriptWord, error)
}

type SampleReader interface {
	ReadSamples(ctx context.Context, wavPath string) (types.Samples, error)
}
