package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Versifine/handloco/internal/body"
	"github.com/Versifine/handloco/internal/event"
	"github.com/Versifine/handloco/internal/locomotion"
	"github.com/Versifine/handloco/internal/physics"
	"github.com/Versifine/handloco/internal/telemetry"
)

// Replay feeds every frame of player through the runner. With realtime set
// each frame waits its own dt before the next one.
func (r *Runner) Replay(ctx context.Context, player *telemetry.Player, realtime bool) (Summary, error) {
	if !r.Ready() {
		return r.Summary(), fmt.Errorf("replay: %w", locomotion.ErrNotReady)
	}

	r.log.Info("Replay started", "frames", player.Len(), "realtime", realtime)
	for {
		if err := ctx.Err(); err != nil {
			r.log.Warn("Replay interrupted", "frame", player.Frame())
			return r.Summary(), err
		}

		dt, err := player.Advance()
		if errors.Is(err, telemetry.ErrEndOfRecording) {
			break
		}
		if err != nil {
			return r.Summary(), err
		}
		r.Tick(dt)

		if realtime && dt > 0 {
			if err := sleepFrame(ctx, dt); err != nil {
				r.log.Warn("Replay interrupted", "frame", player.Frame())
				return r.Summary(), err
			}
		}
	}

	summary := r.Summary()
	r.log.Info("Replay finished",
		"frames", summary.Frames,
		"running_frames", summary.RunningFrames,
		"turning_frames", summary.TurningFrames,
		"distance", summary.Distance,
		"yaw", summary.YawDegrees,
	)
	return summary, nil
}

func sleepFrame(ctx context.Context, dt float64) error {
	timer := time.NewTimer(time.Duration(dt * float64(time.Second)))
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NewReplay builds a runner over a fresh body and a pair of recorded hands.
func NewReplay(params locomotion.Params, rec *telemetry.Recording, estimateVelocity bool, bus *event.Bus) (*Runner, *telemetry.Player, error) {
	left := telemetry.NewHand(estimateVelocity)
	right := telemetry.NewHand(estimateVelocity)
	avatar := body.New(physics.Zero, 0)
	r, err := New(Options{
		Params: params,
		Body:   avatar,
		Left:   left,
		Right:  right,
		Bus:    bus,
	})
	if err != nil {
		return r, nil, err
	}
	return r, telemetry.NewPlayer(rec, left, right).WithRig(avatar), nil
}
