// Package voskjson reads word-level results saved from a Kaldi/Vosk
// recognizer run with word timings enabled.
package voskjson

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/forPelevin/goalcut/internal/domain/highlights"
	"github.com/forPelevin/goalcut/internal/types"
)

type result struct {
	Text   string    `json:"text"`
	Result []rawWord `json:"result"`
}

// rawWord keeps absent keys distinguishable from zero values.
type rawWord struct {
	Word  *string  `json:"word"`
	Start *float64 `json:"start"`
	End   *float64 `json:"end"`
	Conf  *float64 `json:"conf"`
}

func (w rawWord) word() (types.TranscriptWord, error) {
	switch {
	case w.Word == nil:
		return types.TranscriptWord{}, missing("word")
	case w.Start == nil:
		return types.TranscriptWord{}, missing("start")
	case w.End == nil:
		return types.TranscriptWord{}, missing("end")
	case w.Conf == nil:
		return types.TranscriptWord{}, missing("conf")
	}
	return types.TranscriptWord{
		Text:       *w.Word,
		Start:      *w.Start,
		End:        *w.End,
		Confidence: *w.Conf,
	}, nil
}

func missing(key string) error {
	return fmt.Errorf("%w: missing %q", highlights.ErrMalformedInput, key)
}

// Adapter serves a transcript from a file instead of running recognition. It
// satisfies ports.ASR so a saved transcript can stand in for whisper.cpp.
type Adapter struct {
	path string
}

func New(path string) *Adapter { return &Adapter{path: path} }

func (a *Adapter) Transcribe(ctx context.Context, _, _ string) ([]types.TranscriptWord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(a.path)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	words, err := Parse(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("transcript %s: %w", a.path, err)
	}
	return words, nil
}

// Parse accepts either a JSON array of recognizer results or a stream of
// concatenated result objects (one per AcceptWaveform/FinalResult call).
// Results without a word list are empty recognitions and are skipped. A word
// entry lacking any of word, start, end or conf fails with
// highlights.ErrMalformedInput.
func Parse(r io.Reader) ([]types.TranscriptWord, error) {
	dec := json.NewDecoder(r)
	var out []types.TranscriptWord
	n := 0
	for {
		var raw json.RawMessage
		err := dec.Decode(&raw)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decode recognizer output: %w", err)
		}
		results, err := decodeResults(raw)
		if err != nil {
			return nil, err
		}
		for _, res := range results {
			for i, rw := range res.Result {
				w, err := rw.word()
				if err != nil {
					return nil, fmt.Errorf("result %d word %d: %w", n, i, err)
				}
				out = append(out, w)
			}
			n++
		}
	}
}

func decodeResults(raw json.RawMessage) ([]result, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		var arr []result
		if err := json.Unmarshal(raw, &arr); err != nil {
			return nil, fmt.Errorf("decode recognizer results: %w", err)
		}
		return arr, nil
	}
	var one result
	if err := json.Unmarshal(raw, &one); err != nil {
		return nil, fmt.Errorf("decode recognizer result: %w", err)
	}
	return []result{one}, nil
}
