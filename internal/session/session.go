package session

import (
	"errors"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/Versifine/handloco/internal/body"
	"github.com/Versifine/handloco/internal/event"
	"github.com/Versifine/handloco/internal/locomotion"
)

type Options struct {
	Params locomotion.Params
	Body   *body.Body
	Left   locomotion.HandSource
	Right  locomotion.HandSource
	// Bus receives setup failures and gait/turn transitions. Optional.
	Bus *event.Bus
}

// Summary accumulates what a runner has done so far.
type Summary struct {
	SessionID     string
	Frames        int
	RunningFrames int
	TurningFrames int
	Duration      float64
	Distance      float64
	YawDegrees    float64
	Final         body.State
}

// Runner drives the locomotion interpreter frame by frame on behalf of a
// host and reports gait and turn transitions.
type Runner struct {
	id     string
	log    *slog.Logger
	bus    *event.Bus
	body   *body.Body
	interp *locomotion.Interpreter

	frame   int
	running bool
	turnDir int
	summary Summary
}

// New resolves the runner's handles. A setup failure is returned, published
// on the bus, and leaves a runner whose Tick does nothing.
func New(opts Options) (*Runner, error) {
	id := uuid.NewString()
	r := &Runner{
		id:   id,
		log:  slog.Default().With("session", id),
		bus:  opts.Bus,
		body: opts.Body,
	}
	r.summary.SessionID = id

	handles := locomotion.Handles{LeftHand: opts.Left, RightHand: opts.Right}
	if opts.Body != nil {
		handles.Actuator = opts.Body
		handles.Rig = opts.Body
	}

	interp, err := locomotion.New(opts.Params, handles)
	r.interp = interp
	if err != nil {
		r.publishSetupFailure(err)
		return r, err
	}

	r.log.Info("Session ready",
		"run_speed", opts.Params.RunSpeed,
		"turn_speed", opts.Params.TurnSpeed,
	)
	return r, nil
}

func (r *Runner) publishSetupFailure(err error) {
	if r.bus == nil {
		return
	}
	evt := event.SetupFailedEvent{SessionID: r.id, Reason: err.Error()}
	var setupErr *locomotion.SetupError
	if errors.As(err, &setupErr) {
		evt.Missing = append([]string(nil), setupErr.Missing...)
	}
	r.bus.Publish(event.EventSetupFailed, evt)
}

func (r *Runner) ID() string {
	return r.id
}

func (r *Runner) Ready() bool {
	return r.interp.Ready()
}

// Tick runs one frame of dt seconds.
func (r *Runner) Tick(dt float64) locomotion.Command {
	if !r.Ready() {
		return locomotion.Command{}
	}

	cmd := r.interp.Step(dt)
	frame := r.frame
	r.frame++

	r.summary.Frames++
	if dt > 0 {
		r.summary.Duration += dt
	}
	if cmd.Running() {
		r.summary.RunningFrames++
		r.summary.Distance += cmd.ForwardDistance
	}
	if cmd.Turning() {
		r.summary.TurningFrames++
		r.summary.YawDegrees += cmd.YawDeltaDegrees
	}

	r.trackTransitions(frame, cmd)
	return cmd
}

func (r *Runner) trackTransitions(frame int, cmd locomotion.Command) {
	if running := cmd.Running(); running != r.running {
		r.running = running
		r.publish(event.EventGait, event.GaitEvent{SessionID: r.id, Frame: frame, Running: running})
	}
	if dir := turnDirection(cmd.YawDeltaDegrees); dir != r.turnDir {
		r.turnDir = dir
		r.publish(event.EventTurn, event.TurnEvent{SessionID: r.id, Frame: frame, Direction: dir})
	}
}

func (r *Runner) publish(name string, evt any) {
	if r.bus != nil {
		r.bus.Publish(name, evt)
	}
}

// Running and TurnDirection report the state after the last Tick.
func (r *Runner) Running() bool {
	return r.running
}

func (r *Runner) TurnDirection() int {
	return r.turnDir
}

func (r *Runner) Summary() Summary {
	s := r.summary
	s.Final = r.body.State()
	return s
}

func turnDirection(yaw float64) int {
	if yaw == 0 || math.IsNaN(yaw) {
		return 0
	}
	if yaw > 0 {
		return 1
	}
	return -1
}
