package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/forPelevin/goalcut/internal/config"
	"github.com/forPelevin/goalcut/internal/types"
)

func TestApplyFlagOverrides(t *testing.T) {
	cmd := newRootCmd()
	for k, v := range map[string]string{
		"threshold":   "0.85",
		"half-width":  "4",
		"format":      "MP4",
		"extra-terms": "golazo,worldie",
	} {
		if err := cmd.Flags().Set(k, v); err != nil {
			t.Fatalf("set %s: %v", k, err)
		}
	}
	cfg := config.Default()
	if err := applyFlagOverrides(cmd, &cfg); err != nil {
		t.Fatalf("apply: %v", err)
	}
	p := cfg.Params()
	if p.Threshold != 0.85 || p.HalfWidth != 4 {
		t.Fatalf("overrides not applied: %+v", p)
	}
	if p.MinGap != config.Default().Detection.MinGapSeconds {
		t.Fatalf("unset flag changed min gap: %v", p.MinGap)
	}
	if cfg.Render.Format != "mp4" {
		t.Fatalf("expected normalized format, got %q", cfg.Render.Format)
	}
	if !p.Vocabulary.Contains("golazo") || !p.Vocabulary.Contains("rabona") {
		t.Fatalf("extra terms should extend the default vocabulary")
	}
}

func TestApplyFlagOverrides_Invalid(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.Flags().Set("threshold", "2"); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	if err := applyFlagOverrides(cmd, &cfg); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestRoot_ArgsValidation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantSub string
	}{
		{"no args", nil, "accepts 1 arg(s), received 0"},
		{"too many args", []string{"a.mp4", "b.mp4"}, "accepts 1 arg(s), received 2"},
		{"unknown flag", []string{"a.mp4", "--wat"}, "unknown flag: --wat"},
		{"threshold non float", []string{"a.mp4", "--threshold", "loud"}, `invalid argument "loud" for "--threshold"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd()
			cmd.SetArgs(tt.args)
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			err := cmd.Execute()
			if err == nil || !strings.Contains(err.Error(), tt.wantSub) {
				t.Fatalf("expected error containing %q, got %v", tt.wantSub, err)
			}
		})
	}
}

func TestSampleConfigCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"sample-config"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "rate_correction = 2.0") {
		t.Fatalf("unexpected sample config:\n%s", out.String())
	}
}

func TestRenderClipTable(t *testing.T) {
	got := renderClipTable([]types.ManifestClip{
		{ID: "001", HighlightSec: 42.3, StartSec: 39.3, EndSec: 45.3, Keywords: []string{"rabona"}, File: "clips/39.300.gif"},
	})
	for _, want := range []string{"001", "42.30s", "39.30-45.30", "rabona", "clips/39.300.gif"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in table:\n%s", want, got)
		}
	}
}
