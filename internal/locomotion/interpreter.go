package locomotion

import (
	"log/slog"
	"math"

	"github.com/Versifine/handloco/internal/physics"
)

// Actuator applies locomotion to the avatar. Move receives a horizontal
// displacement; collision response, if any, belongs to the implementation.
type Actuator interface {
	Move(displacement physics.Vec3)
	Turn(yawDegrees float64)
}

// Rig provides the avatar's current orientation basis.
type Rig interface {
	Basis() (forward, up, right physics.Vec3)
}

type HandSource interface {
	Tracked() bool
	Position() physics.Vec3
	Velocity() physics.Vec3
}

// Handles are the external references resolved once at setup.
type Handles struct {
	Actuator  Actuator
	Rig       Rig
	LeftHand  HandSource
	RightHand HandSource
}

func (h Handles) missing() []string {
	var out []string
	if h.Actuator == nil {
		out = append(out, "actuator")
	}
	if h.Rig == nil {
		out = append(out, "rig")
	}
	if h.LeftHand == nil {
		out = append(out, "left_hand")
	}
	if h.RightHand == nil {
		out = append(out, "right_hand")
	}
	return out
}

type Interpreter struct {
	params  Params
	handles Handles
	ready   bool
}

// New resolves the interpreter's handles. On failure the returned
// interpreter is disabled for its whole lifetime and Step is a no-op.
func New(params Params, handles Handles) (*Interpreter, error) {
	in := &Interpreter{params: params, handles: handles}

	if missing := handles.missing(); len(missing) > 0 {
		err := &SetupError{Missing: missing}
		slog.Error("Locomotion disabled", "error", err, "missing", missing)
		return in, err
	}
	if err := params.Validate(); err != nil {
		slog.Error("Locomotion disabled", "error", err)
		return in, err
	}

	in.ready = true
	slog.Debug("Locomotion ready",
		"run_speed", params.RunSpeed,
		"hand_speed_threshold", params.HandSpeedThreshold,
		"turn_speed", params.TurnSpeed,
		"hand_tilt_threshold", params.HandTiltThreshold,
	)
	return in, nil
}

func (in *Interpreter) Ready() bool {
	return in != nil && in.ready
}

func (in *Interpreter) Params() Params {
	if in == nil {
		return Params{}
	}
	return in.params
}

// Snapshot samples the handles for the current frame.
func (in *Interpreter) Snapshot() Snapshot {
	if !in.Ready() {
		return Snapshot{}
	}
	left, right := in.handles.LeftHand, in.handles.RightHand
	forward, up, r := in.handles.Rig.Basis()
	return Snapshot{
		LeftTracked:   left.Tracked(),
		RightTracked:  right.Tracked(),
		LeftVelocity:  left.Velocity(),
		RightVelocity: right.Velocity(),
		LeftPosition:  left.Position(),
		RightPosition: right.Position(),
		AvatarUp:      up,
		AvatarRight:   r,
		AvatarForward: forward,
	}
}

// Step evaluates one frame and forwards the result to the actuator.
func (in *Interpreter) Step(dt float64) Command {
	if !in.Ready() || !(dt > 0) || math.IsInf(dt, 1) {
		return Command{}
	}

	cmd := Evaluate(in.Snapshot(), in.params, dt)
	if cmd.Running() {
		in.handles.Actuator.Move(cmd.Displacement)
	}
	if cmd.Turning() {
		in.handles.Actuator.Turn(cmd.YawDeltaDegrees)
	}
	return cmd
}

// Evaluate runs both gates on one snapshot. The gates share no state.
func Evaluate(s Snapshot, p Params, dt float64) Command {
	displacement, distance := SpeedGate(s, p, dt)
	return Command{
		Displacement:    displacement,
		ForwardDistance: distance,
		YawDeltaDegrees: TiltGate(s, p, dt),
	}
}
