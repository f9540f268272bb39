package ffmpeg

import (
	"strings"
	"testing"
	"time"

	"github.com/forPelevin/goalcut/internal/ports"
)

func TestRenderArgs_GIF(t *testing.T) {
	args := strings.Join(renderArgs(ports.RenderOptions{Format: "gif", Width: 480, Height: 360, FPS: 10}), " ")
	want := "-filter_complex fps=10,scale=480:360,split[a][b];[a]palettegen[p];[b][p]paletteuse"
	if !strings.Contains(args, want) {
		t.Fatalf("expected %q in %q", want, args)
	}
	if !strings.Contains(args, "-an") {
		t.Fatalf("gif output must drop audio: %q", args)
	}
}

func TestRenderArgs_MP4WithSubtitles(t *testing.T) {
	args := strings.Join(renderArgs(ports.RenderOptions{Format: "mp4", BurnASS: `C:\subs\a.ass`}), " ")
	if !strings.Contains(args, `-vf subtitles=C\:\\subs\\a.ass`) {
		t.Fatalf("unexpected subtitle filter: %q", args)
	}
	if !strings.Contains(args, "-c:v libx264") {
		t.Fatalf("expected h264 encoding: %q", args)
	}
}

func TestFmtSeconds(t *testing.T) {
	if got := fmtSeconds(39*time.Second + 300*time.Millisecond); got != "39.300" {
		t.Fatalf("fmtSeconds = %q", got)
	}
}
