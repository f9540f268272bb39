package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/forPelevin/goalcut/internal/domain/highlights"
	"github.com/forPelevin/goalcut/internal/domain/subtitles"
	"github.com/forPelevin/goalcut/internal/ports"
	"github.com/forPelevin/goalcut/internal/types"
)

type Deps struct {
	Video   ports.VideoTool
	ASR     ports.ASR
	Samples ports.SampleReader
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase { return Usecase{d: d} }

type Input struct {
	InputVideo string
	Params     highlights.Params
	Render     ports.RenderOptions
	// SkipSpeechAudio skips the 16 kHz extraction when the ASR does not read
	// audio (a saved transcript).
	SkipSpeechAudio bool
	BurnSubtitles   bool
	CacheDir        string
	OutDir          string
	Logf            func(format string, args ...any)
}

type Result struct {
	Manifest types.Manifest
	Fusion   highlights.Result
}

func (u Usecase) Run(ctx context.Context, in Input) (Result, error) {
	logf := in.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	duration, err := u.d.Video.ProbeDuration(ctx, in.InputVideo)
	if err != nil {
		return Result{}, err
	}
	logf("input duration: %s", duration.Round(time.Millisecond))

	var (
		samples types.Samples
		words   []types.TranscriptWord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		wav := filepath.Join(in.CacheDir, "peak.wav")
		logf("extracting audio for peak detection")
		if err := u.d.Video.ExtractPeakAudio(gctx, in.InputVideo, wav); err != nil {
			return err
		}
		s, err := u.d.Samples.ReadSamples(gctx, wav)
		if err != nil {
			return err
		}
		logf("decoded %d samples at %d Hz (%d ch)", len(s.Data), s.SampleRate, s.Channels)
		samples = s
		return nil
	})
	g.Go(func() error {
		wav := filepath.Join(in.CacheDir, "speech.wav")
		if !in.SkipSpeechAudio {
			logf("extracting audio for speech recognition")
			if err := u.d.Video.ExtractSpeechAudio(gctx, in.InputVideo, wav); err != nil {
				return err
			}
		}
		w, err := u.d.ASR.Transcribe(gctx, wav, in.CacheDir)
		if err != nil {
			return err
		}
		logf("transcript: %d words", len(w))
		words = w
		return nil
	})
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	fused, err := highlights.Fuse(ctx, highlights.Signals{Samples: &samples, Words: words}, in.Params)
	if err != nil {
		return Result{}, err
	}
	logf("peaks: %d raw, %d coalesced; keyword hits: %d; highlights: %d; windows: %d",
		len(fused.RawPeaks), len(fused.Peaks), len(fused.Keywords), len(fused.Highlights), len(fused.Windows))

	ext := in.Render.Format
	if ext == "" {
		ext = "gif"
	}
	m := types.Manifest{
		Input:       in.InputVideo,
		DurationSec: duration.Seconds(),
		Params: types.ManifestParams{
			Threshold:      in.Params.Threshold,
			RateCorrection: in.Params.RateCorrection,
			MinGapSec:      in.Params.MinGap,
			MinSepSec:      in.Params.MinSeparation,
			HalfWidthSec:   in.Params.HalfWidth,
			VocabularySize: len(in.Params.Vocabulary),
		},
		PeakCount:   len(fused.Peaks),
		KeywordHits: len(fused.Keywords),
	}
	stems := make(map[string]int, len(fused.Windows))
	for i, w := range fused.Windows {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		id := fmt.Sprintf("%03d", i+1)
		stem := uniqueStem(stems, w.Label())
		name := stem + "." + ext
		clipPath := filepath.Join(in.OutDir, "clips", name)
		if duration > 0 && w.End > duration {
			logf("clip %s ends past the input (%s > %s), output will be short", id, w.End, duration)
		}

		opts := in.Render
		opts.Format = ext
		subsRel := ""
		if in.BurnSubtitles {
			subsRel = filepath.ToSlash(filepath.Join("subtitles", stem+".ass"))
			assPath := filepath.Join(in.OutDir, "subtitles", stem+".ass")
			ass := subtitles.RenderCommentaryASS(words, w, in.Params.Vocabulary)
			if err := writeFile(assPath, []byte(ass)); err != nil {
				return Result{}, err
			}
			opts.BurnASS = assPath
		}

		logf("rendering clip %s [%s, %s]", id, w.Start, w.End)
		if err := u.d.Video.RenderClip(ctx, in.InputVideo, w, clipPath, opts); err != nil {
			return Result{}, err
		}

		m.Clips = append(m.Clips, types.ManifestClip{
			ID:           id,
			HighlightSec: w.Highlight,
			StartSec:     w.Start.Seconds(),
			EndSec:       w.End.Seconds(),
			Keywords:     subtitles.HitTerms(words, w, in.Params.Vocabulary),
			File:         filepath.ToSlash(filepath.Join("clips", name)),
			Subtitles:    subsRel,
		})
	}

	return Result{Manifest: m, Fusion: fused}, nil
}

// uniqueStem suffixes repeated labels with -2, -3 and so on. Windows closer
// than a millisecond share a label when min separation is zero.
func uniqueStem(seen map[string]int, label string) string {
	seen[label]++
	if n := seen[label]; n > 1 {
		return fmt.Sprintf("%s-%d", label, n)
	}
	return label
}

func writeFile(path string, b []byte) error {
	return os.WriteFile(path, b, 0o644)
}
