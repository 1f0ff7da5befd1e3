package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Versifine/handloco/internal/event"
	"github.com/Versifine/handloco/internal/session"
	"github.com/Versifine/handloco/internal/telemetry"
)

var (
	replayRealtime   bool
	replayNoEstimate bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <recording.yaml>",
	Short: "Replay a recorded hand-tracking session",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&replayRealtime, "realtime", false, "pace frames by their recorded dt (default from session.realtime)")
	replayCmd.Flags().BoolVar(&replayNoEstimate, "no-estimate", false, "do not estimate missing hand velocities")
}

func runReplay(cmd *cobra.Command, args []string) error {
	rec, err := telemetry.LoadRecording(args[0])
	if err != nil {
		return fmt.Errorf("load recording: %w", err)
	}

	realtime := cfg.Session.Realtime
	if cmd.Flags().Changed("realtime") {
		realtime = replayRealtime
	}
	estimate := cfg.Session.EstimateVelocity && !replayNoEstimate

	bus := event.NewBus()
	event.SubscribeLogging(bus)
	defer bus.Wait()

	runner, player, err := session.NewReplay(cfg.Locomotion.Params(), rec, estimate, bus)
	if err != nil {
		return err
	}
	summary, err := runner.Replay(cmd.Context(), player, realtime)
	if err != nil {
		return err
	}

	printSummary(cmd, rec, summary)
	return nil
}

func printSummary(cmd *cobra.Command, rec *telemetry.Recording, s session.Summary) {
	out := cmd.OutOrStdout()
	name := rec.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(out, "recording  %s\n", name)
	fmt.Fprintf(out, "session    %s\n", s.SessionID)
	fmt.Fprintf(out, "frames     %d (%.2fs)\n", s.Frames, s.Duration)
	fmt.Fprintf(out, "running    %d frames, %.3f m\n", s.RunningFrames, s.Distance)
	fmt.Fprintf(out, "turning    %d frames, %+.2f deg\n", s.TurningFrames, s.YawDegrees)
	fmt.Fprintf(out, "final      x=%.3f z=%.3f yaw=%.2f\n", s.Final.Position.X, s.Final.Position.Z, s.Final.Yaw)
}
