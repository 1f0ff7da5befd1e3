package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Versifine/handloco/internal/body"
	"github.com/Versifine/handloco/internal/debug"
	"github.com/Versifine/handloco/internal/event"
	"github.com/Versifine/handloco/internal/physics"
	"github.com/Versifine/handloco/internal/session"
	"github.com/Versifine/handloco/internal/telemetry"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Drive the interpreter from the keyboard",
	Args:  cobra.NoArgs,
	RunE:  runConsole,
}

func runConsole(cmd *cobra.Command, args []string) error {
	bus := event.NewBus()
	defer bus.Wait()

	left := telemetry.NewHand(false)
	right := telemetry.NewHand(false)
	avatar := body.New(physics.Zero, 0)
	runner, err := session.New(session.Options{
		Params: cfg.Locomotion.Params(),
		Body:   avatar,
		Left:   left,
		Right:  right,
		Bus:    bus,
	})
	if err != nil {
		return err
	}

	interval := time.Duration(cfg.Session.FrameSeconds() * float64(time.Second))
	return debug.NewConsole(runner, avatar, left, right, interval).Start(cmd.Context())
}
