package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Versifine/handloco/internal/telemetry"
)

var checkRecording string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the config and, optionally, a recording",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkRecording, "recording", "r", "", "recording file to validate")
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	p := cfg.Locomotion.Params()
	fmt.Fprintf(out, "config ok: run_speed=%.2f hand_speed_threshold=%.2f turn_speed=%.1f hand_tilt_threshold=%.2f\n",
		p.RunSpeed, p.HandSpeedThreshold, p.TurnSpeed, p.HandTiltThreshold)

	if checkRecording == "" {
		return nil
	}
	rec, err := telemetry.LoadRecording(checkRecording)
	if err != nil {
		return fmt.Errorf("recording %s: %w", checkRecording, err)
	}
	fmt.Fprintf(out, "recording ok: %d frames, %.2fs\n", len(rec.Frames), rec.Duration())
	return nil
}
