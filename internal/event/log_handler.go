package event

import (
	"fmt"
	"log/slog"
)

// LogHandler logs locomotion events at a level matching their severity.
func LogHandler(raw any) {
	switch evt := raw.(type) {
	case SetupFailedEvent:
		slog.Error("Locomotion setup failed", "session", evt.SessionID, "missing", evt.Missing, "reason", evt.Reason)
	case GaitEvent:
		if evt.Running {
			slog.Info("Running started", "session", evt.SessionID, "frame", evt.Frame)
		} else {
			slog.Info("Running stopped", "session", evt.SessionID, "frame", evt.Frame)
		}
	case TurnEvent:
		slog.Info("Turn changed", "session", evt.SessionID, "frame", evt.Frame, "direction", DirectionLabel(evt.Direction))
	default:
		slog.Warn("Unknown locomotion event", "type", fmt.Sprintf("%T", raw))
	}
}

// SubscribeLogging routes all locomotion events on bus to LogHandler.
func SubscribeLogging(bus *Bus) {
	for _, name := range []string{EventSetupFailed, EventGait, EventTurn} {
		bus.Subscribe(name, LogHandler)
	}
}
