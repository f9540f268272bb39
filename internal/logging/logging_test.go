package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_Formats(t *testing.T) {
	for _, f := range []string{"", "console", "JSON"} {
		l, err := New(Options{Format: f})
		if err != nil {
			t.Fatalf("format %q: %v", f, err)
		}
		_ = l.Sync()
	}
}

func TestNew_RejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	l, err := New(Options{Format: "json", Verbose: true})
	if err != nil {
		t.Fatal(err)
	}
	if !l.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug level to be enabled")
	}
	l, err = New(Options{Format: "json"})
	if err != nil {
		t.Fatal(err)
	}
	if l.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug level to be disabled by default")
	}
}
