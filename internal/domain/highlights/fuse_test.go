package highlights

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/forPelevin/goalcut/internal/types"
)

func TestFuse_EmptySignals(t *testing.T) {
	res, err := Fuse(context.Background(), Signals{}, DefaultParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Highlights) != 0 || len(res.Windows) != 0 {
		t.Fatalf("expected no highlights, got %+v", res)
	}

	res, err = Fuse(context.Background(), Signals{Samples: &types.Samples{SampleRate: 16000}}, DefaultParams())
	if err != nil {
		t.Fatalf("unexpected error for empty stream: %v", err)
	}
	if len(res.Windows) != 0 {
		t.Fatalf("expected no windows, got %v", res.Windows)
	}
}

func TestFuse_CombinesBothBranches(t *testing.T) {
	// 10 Hz nominal with x2 correction: 20 samples per second.
	data := make([]float64, 400)
	data[200] = 1
	data[201] = -0.9
	sig := Signals{
		Samples: &types.Samples{Data: data, SampleRate: 10, Channels: 2},
		Words: []types.TranscriptWord{
			{Text: "superb", Start: 11.0, End: 11.4, Confidence: 0.8},
			{Text: "goal", Start: 30, End: 30.5, Confidence: 0.9},
			{Text: "rabona", Start: 42.3, End: 42.8, Confidence: 0.6},
		},
	}

	res, err := Fuse(context.Background(), sig, DefaultParams())
	if err != nil {
		t.Fatalf("fuse: %v", err)
	}
	if !reflect.DeepEqual(res.RawPeaks, []float64{10, 10.05}) {
		t.Fatalf("raw peaks = %v", res.RawPeaks)
	}
	if !reflect.DeepEqual(res.Peaks, []float64{10}) {
		t.Fatalf("peaks = %v", res.Peaks)
	}
	if !reflect.DeepEqual(res.Keywords, []float64{11.0, 42.3}) {
		t.Fatalf("keywords = %v", res.Keywords)
	}
	if !reflect.DeepEqual(res.Highlights, []float64{10, 42.3}) {
		t.Fatalf("highlights = %v", res.Highlights)
	}
	if !reflect.DeepEqual(res.Windows, BuildWindows([]float64{10, 42.3}, DefaultHalfWidth)) {
		t.Fatalf("windows = %v", res.Windows)
	}
}

func TestFuse_Deterministic(t *testing.T) {
	data := make([]float64, 2000)
	for i := range data {
		data[i] = float64((i*7919)%201 - 100)
	}
	sig := Signals{
		Samples: &types.Samples{Data: data, SampleRate: 20},
		Words:   []types.TranscriptWord{{Text: "volley", Start: 12, End: 12.5}},
	}
	first, err := Fuse(context.Background(), sig, DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := Fuse(context.Background(), sig, DefaultParams())
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs from first run", i)
		}
	}
}

func TestFuse_Errors(t *testing.T) {
	bad := DefaultParams()
	bad.HalfWidth = 0
	if _, err := Fuse(context.Background(), Signals{}, bad); !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("expected ErrInvalidParams, got %v", err)
	}

	sig := Signals{Words: []types.TranscriptWord{{Text: "", Start: 1, End: 2}}}
	if _, err := Fuse(context.Background(), sig, DefaultParams()); !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}

	sig = Signals{Samples: &types.Samples{Data: []float64{1}, SampleRate: 0}}
	if _, err := Fuse(context.Background(), sig, DefaultParams()); !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput for zero rate, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Fuse(ctx, Signals{}, DefaultParams()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
