package whispercpp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/forPelevin/goalcut/internal/types"
)

type Adapter struct {
	bin   string
	model string
}

func New(binPath, modelPath string) *Adapter {
	return &Adapter{bin: binPath, model: modelPath}
}

type transcript struct {
	Segments []segment `json:"segments"`
}

type segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
	Words []word  `json:"words,omitempty"`
}

type word struct {
	Start       float64  `json:"start"`
	End         float64  `json:"end"`
	Word        string   `json:"word"`
	Probability *float64 `json:"probability,omitempty"`
}

func (a *Adapter) Transcribe(ctx context.Context, wavPath, cacheDir string) ([]types.TranscriptWord, error) {
	outPrefix := filepath.Join(cacheDir, "whisper")
	args := []string{
		"-m", a.model,
		"-f", wavPath,
		"-oj",
		"-of", outPrefix,
		"-owts",
	}
	cmd := exec.CommandContext(ctx, a.bin, args...)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("whisper.cpp failed: %w\n%s", err, string(b))
	}

	jb, err := os.ReadFile(outPrefix + ".json")
	if err != nil {
		return nil, err
	}
	return parse(jb)
}

func parse(jb []byte) ([]types.TranscriptWord, error) {
	var tr transcript
	if err := json.Unmarshal(jb, &tr); err != nil {
		return nil, fmt.Errorf("decode whisper.cpp output: %w", err)
	}
	var out []types.TranscriptWord
	for _, s := range tr.Segments {
		for _, w := range s.Words {
			text := strings.TrimSpace(w.Word)
			if text == "" {
				continue
			}
			conf := 1.0
			if w.Probability != nil {
				conf = *w.Probability
			}
			out = append(out, types.TranscriptWord{Text: text, Start: w.Start, End: w.End, Confidence: conf})
		}
	}
	return out, nil
}
