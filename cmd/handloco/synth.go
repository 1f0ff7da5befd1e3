package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Versifine/handloco/internal/telemetry"
)

var synthOut string

var synthCmd = &cobra.Command{
	Use:   "synth",
	Short: "Write a synthetic run/turn recording",
	Long: `Write a demo recording: run straight, turn right, run, turn left with
crossed hands, then lose tracking.`,
	Args: cobra.NoArgs,
	RunE: runSynth,
}

func init() {
	synthCmd.Flags().StringVarP(&synthOut, "out", "o", "demo.yaml", "output path")
}

func runSynth(cmd *cobra.Command, args []string) error {
	rate := cfg.Session.TickRate
	second := rate
	rec := telemetry.Synthesize("demo", rate,
		telemetry.Segment{Frames: 2 * second, SwingSpeed: 2.5, Bearing: 90},
		telemetry.Segment{Frames: second, Bearing: 0},
		telemetry.Segment{Frames: 2 * second, SwingSpeed: 2.5, Bearing: 90},
		telemetry.Segment{Frames: second, Bearing: 180},
		telemetry.Segment{Frames: second / 2, SwingSpeed: 2.5, Untracked: true},
	)
	data, err := rec.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(synthOut, data, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d frames)\n", synthOut, len(rec.Frames))
	return nil
}
