// Package config loads the optional TOML file that tunes detection, the
// vocabulary, clip rendering and external tool paths.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/forPelevin/goalcut/internal/domain/highlights"
	"github.com/forPelevin/goalcut/internal/ports"
)

//go:embed sample_config.toml
var sampleConfig string

// SampleConfig returns an annotated config file with every default spelled out.
func SampleConfig() string { return sampleConfig }

// Detection holds the peak, coalescing, merge and window tunables in seconds.
type Detection struct {
	Threshold            float64 `toml:"threshold" validate:"gt=0,lte=1"`
	RateCorrection       float64 `toml:"rate_correction" validate:"gt=0"`
	MinGapSeconds        float64 `toml:"min_gap_seconds" validate:"gte=0"`
	MinSeparationSeconds float64 `toml:"min_separation_seconds" validate:"gte=0"`
	HalfWidthSeconds     float64 `toml:"half_width_seconds" validate:"gt=0"`
}

// Vocabulary replaces the built-in term list when Terms is non-empty and
// extends whichever list is in effect with ExtraTerms.
type Vocabulary struct {
	Terms      []string `toml:"terms" validate:"dive,required"`
	ExtraTerms []string `toml:"extra_terms" validate:"dive,required"`
}

type Render struct {
	Format    string `toml:"format" validate:"oneof=gif mp4"`
	Width     int    `toml:"width" validate:"gt=0"`
	Height    int    `toml:"height" validate:"gt=0"`
	FPS       int    `toml:"fps" validate:"gt=0,lte=60"`
	Subtitles bool   `toml:"subtitles"`
}

type Tools struct {
	FFmpeg       string `toml:"ffmpeg"`
	FFprobe      string `toml:"ffprobe"`
	WhisperBin   string `toml:"whisper_bin"`
	WhisperModel string `toml:"whisper_model"`
}

type Config struct {
	Detection  Detection  `toml:"detection"`
	Vocabulary Vocabulary `toml:"vocabulary"`
	Render     Render     `toml:"render"`
	Tools      Tools      `toml:"tools"`
}

func Default() Config {
	return Config{
		Detection: Detection{
			Threshold:            highlights.DefaultThreshold,
			RateCorrection:       highlights.DefaultRateCorrection,
			MinGapSeconds:        highlights.DefaultMinGap,
			MinSeparationSeconds: highlights.DefaultMinSeparation,
			HalfWidthSeconds:     highlights.DefaultHalfWidth,
		},
		Render: Render{
			Format: "gif",
			Width:  480,
			Height: 360,
			FPS:    10,
		},
		Tools: Tools{
			FFmpeg:       "ffmpeg",
			FFprobe:      "ffprobe",
			WhisperBin:   ".cache/bin/whisper.cpp",
			WhisperModel: ".cache/models/ggml-base.bin",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		dec := toml.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			var strict *toml.StrictMissingError
			if errors.As(err, &strict) {
				return Config{}, fmt.Errorf("config %s: %s", path, strict.String())
			}
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Normalize trims whitespace and lowercases the render format.
func (c *Config) Normalize() {
	c.Render.Format = strings.ToLower(strings.TrimSpace(c.Render.Format))
	c.Vocabulary.Terms = trimAll(c.Vocabulary.Terms)
	c.Vocabulary.ExtraTerms = trimAll(c.Vocabulary.ExtraTerms)
	c.Tools.FFmpeg = strings.TrimSpace(c.Tools.FFmpeg)
	c.Tools.FFprobe = strings.TrimSpace(c.Tools.FFprobe)
	c.Tools.WhisperBin = strings.TrimSpace(c.Tools.WhisperBin)
	c.Tools.WhisperModel = strings.TrimSpace(c.Tools.WhisperModel)
}

// Validate checks field ranges with struct tags.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Params converts the detection section and vocabulary into fusion params.
func (c Config) Params() highlights.Params {
	vocab := highlights.DefaultVocabulary()
	if len(c.Vocabulary.Terms) > 0 {
		vocab = highlights.NewVocabulary(c.Vocabulary.Terms...)
	}
	return highlights.Params{
		Threshold:      c.Detection.Threshold,
		RateCorrection: c.Detection.RateCorrection,
		MinGap:         c.Detection.MinGapSeconds,
		MinSeparation:  c.Detection.MinSeparationSeconds,
		HalfWidth:      c.Detection.HalfWidthSeconds,
		Vocabulary:     vocab.With(c.Vocabulary.ExtraTerms...),
	}
}

func (c Config) RenderOptions() ports.RenderOptions {
	return ports.RenderOptions{
		Format: c.Render.Format,
		Width:  c.Render.Width,
		Height: c.Render.Height,
		FPS:    c.Render.FPS,
	}
}

func trimAll(in []string) []string {
	out := in[:0]
	for _, s := range in {
		out = append(out, strings.TrimSpace(s))
	}
	return out
}
