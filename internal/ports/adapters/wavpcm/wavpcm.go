package wavpcm

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/forPelevin/goalcut/internal/types"
)

var ErrNoSamples = errors.New("wav has no PCM samples")

// chunkSamples bounds the int scratch buffer reused across PCM reads.
var chunkSamples = 64 * 1024

// maxPrealloc caps the capacity taken on trust from the header.
const maxPrealloc = 1 << 28

// Reader decodes a PCM WAV file into raw samples. Samples are left in file
// order, so multi-channel audio stays interleaved, and SampleRate is the
// per-channel rate from the header.
type Reader struct{}

func New() *Reader { return &Reader{} }

func (r *Reader) ReadSamples(ctx context.Context, wavPath string) (types.Samples, error) {
	if err := ctx.Err(); err != nil {
		return types.Samples{}, err
	}
	f, err := os.Open(wavPath)
	if err != nil {
		return types.Samples{}, fmt.Errorf("open wav: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return types.Samples{}, fmt.Errorf("%s: not a valid wav file", wavPath)
	}
	if err := dec.FwdToPCM(); err != nil {
		return types.Samples{}, fmt.Errorf("seek pcm chunk: %w", err)
	}
	format := dec.Format()
	if format == nil {
		return types.Samples{}, fmt.Errorf("%s: %w", wavPath, ErrNoSamples)
	}

	var data []float64
	if n := dec.PCMLen(); n > 0 && n <= maxPrealloc {
		data = make([]float64, 0, n)
	}
	buf := &audio.IntBuffer{Format: format, Data: make([]int, chunkSamples)}
	for {
		if err := ctx.Err(); err != nil {
			return types.Samples{}, err
		}
		n, err := dec.PCMBuffer(buf)
		if err != nil {
			return types.Samples{}, fmt.Errorf("read pcm buffer: %w", err)
		}
		if n == 0 {
			break
		}
		for _, v := range buf.Data[:n] {
			data = append(data, float64(v))
		}
	}
	if len(data) == 0 {
		return types.Samples{}, fmt.Errorf("%s: %w", wavPath, ErrNoSamples)
	}
	return types.Samples{
		Data:       data,
		SampleRate: format.SampleRate,
		Channels:   format.NumChannels,
	}, nil
}
