package ffmpeg

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/forPelevin/goalcut/internal/ports"
	"github.com/forPelevin/goalcut/internal/types"
)

type Adapter struct {
	ffmpeg  string
	ffprobe string
}

func New(ffmpegPath, ffprobePath string) *Adapter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &Adapter{ffmpeg: ffmpegPath, ffprobe: ffprobePath}
}

func (a *Adapter) ExtractSpeechAudio(ctx context.Context, inVideo, outWav string) error {
	cmd := exec.CommandContext(ctx, a.ffmpeg,
		"-y",
		"-i", inVideo,
		"-vn",
		"-ac", "1",
		"-ar", "16000",
		"-f", "wav",
		outWav,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg extract speech audio: %w\n%s", err, string(b))
	}
	return nil
}

func (a *Adapter) ExtractPeakAudio(ctx context.Context, inVideo, outWav string) error {
	cmd := exec.CommandContext(ctx, a.ffmpeg,
		"-y",
		"-i", inVideo,
		"-vn",
		"-ac", "2",
		"-c:a", "pcm_s16le",
		"-f", "wav",
		outWav,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg extract peak audio: %w\n%s", err, string(b))
	}
	return nil
}

func (a *Adapter) RenderClip(ctx context.Context, inVideo string, w types.ClipWindow, outPath string, opts ports.RenderOptions) error {
	args := append([]string{
		"-y",
		"-ss", fmtSeconds(w.Start),
		"-to", fmtSeconds(w.End),
		"-i", inVideo,
	}, renderArgs(opts)...)
	args = append(args, outPath)

	cmd := exec.CommandContext(ctx, a.ffmpeg, args...)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg render clip %s: %w\n%s", w.Label(), err, string(b))
	}
	return nil
}

func renderArgs(opts ports.RenderOptions) []string {
	var filters []string
	if opts.BurnASS != "" {
		// Subtitles go on first so they are laid out at source resolution.
		filters = append(filters, "subtitles="+escapeFilterPath(opts.BurnASS))
	}
	if opts.FPS > 0 {
		filters = append(filters, "fps="+strconv.Itoa(opts.FPS))
	}
	if opts.Width > 0 && opts.Height > 0 {
		filters = append(filters, fmt.Sprintf("scale=%d:%d", opts.Width, opts.Height))
	}

	if opts.Format == "mp4" {
		var args []string
		if len(filters) > 0 {
			args = append(args, "-vf", strings.Join(filters, ","))
		}
		return append(args,
			"-c:v", "libx264",
			"-preset", "veryfast",
			"-crf", "18",
			"-c:a", "aac",
			"-b:a", "192k",
		)
	}

	// Palette generated from the clip itself keeps GIF colors usable.
	graph := "split[a][b];[a]palettegen[p];[b][p]paletteuse"
	if len(filters) > 0 {
		graph = strings.Join(filters, ",") + "," + graph
	}
	return []string{
		"-an",
		"-filter_complex", graph,
		"-loop", "0",
	}
}

func (a *Adapter) ProbeDuration(ctx context.Context, inVideo string) (time.Duration, error) {
	cmd := exec.CommandContext(ctx, a.ffprobe,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		inVideo,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w\n%s", err, string(b))
	}
	s := strings.TrimSpace(string(b))
	sec, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", s, err)
	}
	return time.Duration(sec * float64(time.Second)), nil
}

func fmtSeconds(d time.Duration) string {
	sec := float64(d) / float64(time.Second)
	return strconv.FormatFloat(sec, 'f', 3, 64)
}

func escapeFilterPath(p string) string {
	p = strings.ReplaceAll(p, "\\", "\\\\")
	p = strings.ReplaceAll(p, ":", "\\:")
	return p
}
