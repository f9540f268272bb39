//go:build integration

package itest

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// makeMatchFixture writes a 20s clip with quiet crowd hum, a loud burst at
// 10s, and a saved transcript that mentions "rabona" at 16s.
func makeMatchFixture(t *testing.T, dir string) (video, transcript string) {
	t.Helper()

	video = filepath.Join(dir, "match.mp4")
	audio := "aevalsrc=0.05*sin(2*PI*220*t)+if(between(t\\,10\\,10.3)\\,0.9*sin(2*PI*880*t)\\,0)|" +
		"0.05*sin(2*PI*220*t)+if(between(t\\,10\\,10.3)\\,0.9*sin(2*PI*880*t)\\,0):s=44100:d=20"
	ff := exec.Command("ffmpeg",
		"-y",
		"-f", "lavfi",
		"-i", "testsrc=s=640x360:d=20:r=25",
		"-f", "lavfi",
		"-i", audio,
		"-shortest",
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		"-c:a", "pcm_s16le",
		"-f", "mov",
		video,
	)
	if b, err := ff.CombinedOutput(); err != nil {
		t.Fatalf("ffmpeg fixture failed: %v\n%s", err, string(b))
	}

	transcript = filepath.Join(dir, "words.json")
	words := `{"result":[{"conf":0.93,"end":15.8,"start":15.5,"word":"what"},{"conf":0.71,"end":16.6,"start":16.0,"word":"rabona"}],"text":"what rabona"}
{"text":""}
`
	if err := os.WriteFile(transcript, []byte(words), 0o644); err != nil {
		t.Fatalf("write transcript fixture: %v", err)
	}
	return video, transcript
}
