package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/forPelevin/goalcut/internal/domain/highlights"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "goalcut.toml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.Params(), highlights.DefaultParams()) {
		t.Fatalf("default config params differ from detection defaults")
	}
}

func TestLoad_SampleConfigMatchesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, SampleConfig()))
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}
	if !reflect.DeepEqual(cfg.Params(), highlights.DefaultParams()) {
		t.Fatalf("sample config params drifted from defaults: %+v", cfg.Params())
	}
	if cfg.Render != Default().Render || cfg.Tools != Default().Tools {
		t.Fatalf("sample config render/tools drifted: %+v %+v", cfg.Render, cfg.Tools)
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[detection]
threshold = 0.9
rate_correction = 1.0

[vocabulary]
terms = ["GOAL", " rabona "]
extra_terms = ["golazo"]

[render]
format = "MP4"
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	p := cfg.Params()
	if p.Threshold != 0.9 || p.RateCorrection != 1.0 {
		t.Fatalf("detection overrides not applied: %+v", p)
	}
	if p.MinGap != highlights.DefaultMinGap {
		t.Fatalf("unset keys must keep defaults, got min gap %v", p.MinGap)
	}
	if got := p.Vocabulary.Terms(); !reflect.DeepEqual(got, []string{"GOAL", "golazo", "rabona"}) {
		t.Fatalf("unexpected vocabulary: %v", got)
	}
	if cfg.RenderOptions().Format != "mp4" {
		t.Fatalf("expected normalized format, got %q", cfg.RenderOptions().Format)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantSub string
	}{
		{"unknown key", "[detection]\nthreshhold = 0.5\n", "threshhold"},
		{"threshold range", "[detection]\nthreshold = 1.5\n", "Threshold"},
		{"half width", "[detection]\nhalf_width_seconds = 0\n", "HalfWidthSeconds"},
		{"format", "[render]\nformat = \"webm\"\n", "Format"},
		{"empty term", "[vocabulary]\nextra_terms = [\"  \"]\n", "ExtraTerms"},
		{"syntax", "[detection\n", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Fatalf("expected %q in error, got %v", tt.wantSub, err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatalf("expected error")
	}
}
