package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/forPelevin/goalcut/internal/config"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "goalcut <input>",
		Short:        "Cut highlight GIFs from a recorded match using crowd noise and commentary",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0])
		},
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	// Visible flags
	root.Flags().String("out", "out", "Output directory")
	root.Flags().String("config", "", "TOML config file")
	root.Flags().String("transcript", "", "Saved Vosk word JSON to use instead of running whisper.cpp")
	root.Flags().String("format", "", "Clip format: gif or mp4 (default from config)")
	root.Flags().Bool("subtitles", false, "Burn commentary captions into clips")
	root.Flags().Bool("verbose", false, "Debug logging")
	root.Flags().String("log-format", "", "Log format: console or json (default: console on a terminal)")

	// Hidden tuning flags (override the config file)
	root.Flags().Float64("threshold", 0, "Peak threshold as a fraction of the loudest sample")
	root.Flags().Float64("rate-correction", 0, "Divisor applied on top of the reported sample rate")
	root.Flags().Float64("min-gap", 0, "Seconds between coalesced audio peaks")
	root.Flags().Float64("min-separation", 0, "Seconds between merged highlights")
	root.Flags().Float64("half-width", 0, "Seconds of video on each side of a highlight")
	root.Flags().StringSlice("extra-terms", nil, "Additional vocabulary terms")
	for _, f := range []string{"threshold", "rate-correction", "min-gap", "min-separation", "half-width", "extra-terms"} {
		_ = root.Flags().MarkHidden(f)
	}

	root.AddCommand(&cobra.Command{
		Use:   "sample-config",
		Short: "Print an annotated config file with the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), config.SampleConfig())
			return err
		},
	})
	return root
}
