package wavpcm

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func writeWav(t *testing.T, path string, rate, channels int, data []int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create wav: %v", err)
	}
	defer f.Close()
	enc := wav.NewEncoder(f, rate, 16, channels, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("encode wav: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close encoder: %v", err)
	}
}

func TestReadSamples_KeepsInterleavedOrder(t *testing.T) {
	p := filepath.Join(t.TempDir(), "peak.wav")
	writeWav(t, p, 8000, 2, []int{0, 1, -200, 300, 32000, -32000})

	s, err := New().ReadSamples(context.Background(), p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if s.SampleRate != 8000 || s.Channels != 2 {
		t.Fatalf("unexpected format: rate=%d channels=%d", s.SampleRate, s.Channels)
	}
	want := []float64{0, 1, -200, 300, 32000, -32000}
	if len(s.Data) != len(want) {
		t.Fatalf("expected %d samples, got %d", len(want), len(s.Data))
	}
	for i := range want {
		if s.Data[i] != want[i] {
			t.Fatalf("sample %d = %v, want %v", i, s.Data[i], want[i])
		}
	}
}

func TestReadSamples_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := New().ReadSamples(context.Background(), filepath.Join(dir, "missing.wav")); err == nil {
		t.Fatalf("expected error for missing file")
	}

	junk := filepath.Join(dir, "junk.wav")
	if err := os.WriteFile(junk, []byte("not a wav"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := New().ReadSamples(context.Background(), junk); err == nil {
		t.Fatalf("expected error for invalid wav")
	}

	empty := filepath.Join(dir, "empty.wav")
	writeWav(t, empty, 16000, 1, nil)
	if _, err := New().ReadSamples(context.Background(), empty); err == nil {
		t.Fatalf("expected error for a wav without samples")
	}
}

func TestReadSamples_AcrossChunks(t *testing.T) {
	prev := chunkSamples
	chunkSamples = 4
	t.Cleanup(func() { chunkSamples = prev })

	in := []int{5, -5, 10, -10, 20, -20, 30, -30, 40, -40, 50}
	p := filepath.Join(t.TempDir(), "peak.wav")
	writeWav(t, p, 16000, 1, in)

	s, err := New().ReadSamples(context.Background(), p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(s.Data) != len(in) {
		t.Fatalf("expected %d samples, got %d", len(in), len(s.Data))
	}
	for i, v := range in {
		if s.Data[i] != float64(v) {
			t.Fatalf("sample %d = %v, want %d", i, s.Data[i], v)
		}
	}
}
