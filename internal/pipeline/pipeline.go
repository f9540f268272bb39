package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/forPelevin/goalcut/internal/domain/highlights"
	"github.com/forPelevin/goalcut/internal/ports"
	"github.com/forPelevin/goalcut/internal/ports/adapters/ffmpeg"
	"github.com/forPelevin/goalcut/internal/ports/adapters/voskjson"
	"github.com/forPelevin/goalcut/internal/ports/adapters/wavpcm"
	"github.com/forPelevin/goalcut/internal/ports/adapters/whispercpp"
	"github.com/forPelevin/goalcut/internal/types"
	"github.com/forPelevin/goalcut/internal/usecase"
)

type Config struct {
	InputVideo    string
	OutDir        string
	Params        highlights.Params
	Render        ports.RenderOptions
	BurnSubtitles bool
	Logf          func(format string, args ...any)

	// TranscriptPath points at saved recognizer output (Vosk word JSON). When
	// set, whisper.cpp is not run.
	TranscriptPath string

	// CacheDir is the base directory for local artifacts (audio, transcripts, etc.).
	// If empty, defaults to ".cache".
	CacheDir string

	FFmpegPath  string
	FFprobePath string

	WhisperBin   string
	WhisperModel string
}

func (c Config) Validate() error {
	if c.InputVideo == "" {
		return errors.New("input is empty")
	}
	if _, err := os.Stat(c.InputVideo); err != nil {
		return fmt.Errorf("stat input: %w", err)
	}
	if err := c.Params.Validate(); err != nil {
		return err
	}
	switch c.Render.Format {
	case "", "gif", "mp4":
	default:
		return fmt.Errorf("format must be gif or mp4, got %q", c.Render.Format)
	}
	if c.TranscriptPath != "" {
		if _, err := os.Stat(c.TranscriptPath); err != nil {
			return fmt.Errorf("stat transcript: %w", err)
		}
		return nil
	}
	if c.WhisperModel == "" {
		return fmt.Errorf("whisper model path is required")
	}
	return nil
}

type Summary struct {
	RunDir   string
	Manifest types.Manifest
}

func Run(ctx context.Context, cfg Config) (Summary, error) {
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	// adapters
	v := ffmpeg.New(cfg.FFmpegPath, cfg.FFprobePath)
	var asr ports.ASR = whispercpp.New(cfg.WhisperBin, cfg.WhisperModel)
	if cfg.TranscriptPath != "" {
		asr = voskjson.New(cfg.TranscriptPath)
	}

	uc := usecase.New(usecase.Deps{
		Video:   v,
		ASR:     asr,
		Samples: wavpcm.New(),
	})

	jobID := hash(cfg.InputVideo)
	baseCache := cfg.CacheDir
	if baseCache == "" {
		baseCache = ".cache"
	}
	cacheDir := filepath.Join(baseCache, "runs", jobID)
	logf("preparing workspace")
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return Summary{}, err
	}
	logf("cache: %s", cacheDir)

	outDir := cfg.OutDir
	if outDir == "" {
		outDir = "out"
	}
	runOutDir := buildRunOutDir(outDir, cfg.InputVideo, time.Now().UTC())
	clipsDir := filepath.Join(runOutDir, "clips")
	subtitlesDir := filepath.Join(runOutDir, "subtitles")
	if err := os.MkdirAll(clipsDir, 0o755); err != nil {
		return Summary{}, err
	}
	if cfg.BurnSubtitles {
		if err := os.MkdirAll(subtitlesDir, 0o755); err != nil {
			return Summary{}, err
		}
		logf("output run dir: %s", runOutDir)
		logf("output dirs: %s, %s", clipsDir, subtitlesDir)
	} else {
		logf("output run dir: %s", runOutDir)
		logf("output dirs: %s", clipsDir)
	}

	res, err := uc.Run(ctx, usecase.Input{
		InputVideo:      cfg.InputVideo,
		Params:          cfg.Params,
		Render:          cfg.Render,
		SkipSpeechAudio: cfg.TranscriptPath != "",
		BurnSubtitles:   cfg.BurnSubtitles,
		CacheDir:        cacheDir,
		OutDir:          runOutDir,
		Logf:            logf,
	})
	if err != nil {
		return Summary{}, err
	}

	m := res.Manifest
	m.RunID = uuid.NewString()
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return Summary{}, fmt.Errorf("marshal manifest: %w", err)
	}
	manifestPath := filepath.Join(runOutDir, "manifest.json")
	if err := os.WriteFile(manifestPath, b, 0o644); err != nil {
		return Summary{}, err
	}
	logf("manifest written (%d clips): %s", len(m.Clips), manifestPath)
	return Summary{RunDir: runOutDir, Manifest: m}, nil
}

func buildRunOutDir(outRoot, input string, now time.Time) string {
	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	name = normalizePathSegment(name)
	if name == "" {
		name = "input"
	}
	ts := now.UTC().Format("20060102-150405Z")
	runSeed := fmt.Sprintf("%s|%d", input, now.UTC().UnixNano())
	suffix := hash(runSeed)[:6]
	return filepath.Join(outRoot, fmt.Sprintf("%s-%s-%s", name, ts, suffix))
}

func normalizePathSegment(s string) string {
	var b strings.Builder
	prevDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

func hash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])[:12]
}

// ensure adapters implement ports
var _ ports.VideoTool = (*ffmpeg.Adapter)(nil)
var _ ports.ASR = (*whispercpp.Adapter)(nil)
var _ ports.ASR = (*voskjson.Adapter)(nil)
var _ ports.SampleReader = (*wavpcm.Reader)(nil)
