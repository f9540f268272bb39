package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/forPelevin/goalcut/internal/config"
	"github.com/forPelevin/goalcut/internal/logging"
	"github.com/forPelevin/goalcut/internal/pipeline"
)

func run(cmd *cobra.Command, input string) error {
	outDir, _ := cmd.Flags().GetString("out")
	cfgPath, _ := cmd.Flags().GetString("config")
	transcript, _ := cmd.Flags().GetString("transcript")
	verbose, _ := cmd.Flags().GetBool("verbose")
	logFormat, _ := cmd.Flags().GetString("log-format")

	log, err := logging.New(logging.Options{Format: logFormat, Verbose: verbose})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	fileCfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := applyFlagOverrides(cmd, &fileCfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	absIn, err := filepath.Abs(input)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 3*time.Hour)
	defer cancel()

	cfg := pipeline.Config{
		InputVideo:     absIn,
		OutDir:         outDir,
		Params:         fileCfg.Params(),
		Render:         fileCfg.RenderOptions(),
		BurnSubtitles:  fileCfg.Render.Subtitles,
		TranscriptPath: transcript,
		Logf:           log.Infof,

		FFmpegPath:  getenvDefault("GOALCUT_FFMPEG", fileCfg.Tools.FFmpeg),
		FFprobePath: getenvDefault("GOALCUT_FFPROBE", fileCfg.Tools.FFprobe),

		WhisperBin:   getenvDefault("GOALCUT_WHISPER_BIN", fileCfg.Tools.WhisperBin),
		WhisperModel: getenvDefault("GOALCUT_WHISPER_MODEL", fileCfg.Tools.WhisperModel),
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	log.Debugw("detection params",
		"threshold", cfg.Params.Threshold,
		"rate_correction", cfg.Params.RateCorrection,
		"min_gap", cfg.Params.MinGap,
		"min_separation", cfg.Params.MinSeparation,
		"half_width", cfg.Params.HalfWidth,
		"vocabulary", len(cfg.Params.Vocabulary),
	)

	sum, err := pipeline.Run(ctx, cfg)
	if err != nil {
		return err
	}
	if len(sum.Manifest.Clips) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no highlights found")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderClipTable(sum.Manifest.Clips))
	fmt.Fprintf(cmd.OutOrStdout(), "%d clips in %s\n", len(sum.Manifest.Clips), sum.RunDir)
	return nil
}

// applyFlagOverrides copies explicitly set tuning flags over the file config
// and revalidates the result.
func applyFlagOverrides(cmd *cobra.Command, c *config.Config) error {
	fs := cmd.Flags()
	floats := map[string]*float64{
		"threshold":       &c.Detection.Threshold,
		"rate-correction": &c.Detection.RateCorrection,
		"min-gap":         &c.Detection.MinGapSeconds,
		"min-separation":  &c.Detection.MinSeparationSeconds,
		"half-width":      &c.Detection.HalfWidthSeconds,
	}
	for name, dst := range floats {
		if fs.Changed(name) {
			v, err := fs.GetFloat64(name)
			if err != nil {
				return err
			}
			*dst = v
		}
	}
	if fs.Changed("format") {
		c.Render.Format, _ = fs.GetString("format")
	}
	if fs.Changed("subtitles") {
		c.Render.Subtitles, _ = fs.GetBool("subtitles")
	}
	if fs.Changed("extra-terms") {
		extra, _ := fs.GetStringSlice("extra-terms")
		c.Vocabulary.ExtraTerms = append(c.Vocabulary.ExtraTerms, extra...)
	}
	c.Normalize()
	return c.Validate()
}

func getenvDefault(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
