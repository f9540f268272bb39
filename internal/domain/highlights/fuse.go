package highlights

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/forPelevin/goalcut/internal/types"
)

// Signals are the two inputs of a fusion pass. A nil or empty Samples skips
// the amplitude branch; a nil Words skips the keyword branch.
type Signals struct {
	Samples *types.Samples
	Words   []types.TranscriptWord
}

type Result struct {
	// RawPeaks are amplitude detections before coalescing.
	RawPeaks   []float64
	Peaks      []float64
	Keywords   []float64
	Highlights []float64
	Windows    []types.ClipWindow
}

// Fuse runs the amplitude path (DetectPeaks then Coalesce) and the keyword
// path concurrently, then merges both into highlights and clip windows.
func Fuse(ctx context.Context, sig Signals, p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	var res Result
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if sig.Samples == nil || len(sig.Samples.Data) == 0 {
			return nil
		}
		raw, err := DetectPeaks(sig.Samples.Data, sig.Samples.SampleRate, p.Threshold, p.RateCorrection)
		if err != nil {
			return fmt.Errorf("amplitude peaks: %w", err)
		}
		if err := gctx.Err(); err != nil {
			return err
		}
		res.RawPeaks = raw
		res.Peaks = Coalesce(raw, p.MinGap)
		return nil
	})

	g.Go(func() error {
		kw, err := ExtractKeywords(sig.Words, p.Vocabulary)
		if err != nil {
			return fmt.Errorf("keywords: %w", err)
		}
		res.Keywords = kw
		return nil
	})

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res.Highlights = Merge(res.Peaks, res.Keywords, p.MinSeparation)
	res.Windows = BuildWindows(res.Highlights, p.HalfWidth)
	return res, nil
}
