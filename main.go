// countdown shows a square that fades from black to red every time a
// repeating countdown fires. Every 10th fire halves the period; after 100
// fires the counter and period reset.
//
// Usage:
//
//	countdown [flags]
//
// Flags:
//
//	--config <path>   YAML config (default: ./configs/countdown.yaml, then embedded)
//	--verbose         debug logging
//	--headless        run without a window
//	--frames <n>      headless frame count (0 = until interrupted)
//	--dt <duration>   headless simulated time per frame (default 1/60s)
//
// Controls:
//
//	F11  toggle fullscreen
//	D    toggle debug overlay
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/decker502/countdown/pkg/app"
	"github.com/decker502/countdown/pkg/config"
	"github.com/decker502/countdown/pkg/embedded"
)

var (
	flagConfig   string
	flagVerbose  bool
	flagHeadless bool
	flagFrames   int
	flagDelta    time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "countdown",
	Short: "Fade a square from black to red on a speeding-up countdown",
	Long: `countdown opens an 800x600 window with a single square sprite.
Every time the countdown fires (initially every 2s) the square fades from
black to red over 500ms. Every 10th fire halves the period; once the
counter passes 100 it resets along with the period.

Examples:
  countdown
  countdown --verbose
  countdown --config ./my.yaml
  countdown --headless --frames 600`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Run the simulation without a window")
	rootCmd.Flags().IntVar(&flagFrames, "frames", 0, "Headless: number of frames to run (0 = until interrupted)")
	rootCmd.Flags().DurationVar(&flagDelta, "dt", config.FrameDelta, "Headless: simulated time per frame")
}

func main() {
	embedded.Init(dataFS)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	logger := app.NewLogger(flagVerbose, cmd.ErrOrStderr())

	a, err := app.NewApp(app.Config{
		Verbose:    flagVerbose,
		ConfigPath: flagConfig,
		Headless:   flagHeadless,
	}, logger)
	if err != nil {
		return fmt.Errorf("startup failed: %w", err)
	}

	if flagHeadless {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := a.RunHeadless(ctx, flagFrames, flagDelta); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	}

	return a.Run()
}
