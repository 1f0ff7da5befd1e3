package locomotion

import (
	"fmt"

	"github.com/Versifine/handloco/internal/physics"
)

// Snapshot is the per-frame tracking input shared by both gates. It is
// rebuilt every frame and never mutated by a gate.
type Snapshot struct {
	LeftTracked   bool
	RightTracked  bool
	LeftVelocity  physics.Vec3
	RightVelocity physics.Vec3
	LeftPosition  physics.Vec3
	RightPosition physics.Vec3
	AvatarUp      physics.Vec3
	AvatarRight   physics.Vec3
	AvatarForward physics.Vec3
}

// Active reports whether both hands are tracked.
func (s Snapshot) Active() bool {
	return s.LeftTracked && s.RightTracked
}

type Params struct {
	RunSpeed           float64 // m/s
	HandSpeedThreshold float64 // m/s, average of both hands
	TurnSpeed          float64 // deg/s
	HandTiltThreshold  float64 // [0,1]
}

func (p Params) Validate() error {
	switch {
	case !(p.RunSpeed > 0):
		return fmt.Errorf("%w: run speed must be > 0, got %v", ErrInvalidParams, p.RunSpeed)
	case !(p.HandSpeedThreshold >= 0):
		return fmt.Errorf("%w: hand speed threshold must be >= 0, got %v", ErrInvalidParams, p.HandSpeedThreshold)
	case !(p.TurnSpeed > 0):
		return fmt.Errorf("%w: turn speed must be > 0, got %v", ErrInvalidParams, p.TurnSpeed)
	case !(p.HandTiltThreshold >= 0 && p.HandTiltThreshold <= 1):
		return fmt.Errorf("%w: hand tilt threshold must be in [0,1], got %v", ErrInvalidParams, p.HandTiltThreshold)
	}
	return nil
}

// Command is the locomotion output for one frame. The zero value means no
// gesture was recognised.
type Command struct {
	// Displacement is ForwardDistance along the horizontal avatar forward.
	Displacement    physics.Vec3
	ForwardDistance float64
	YawDeltaDegrees float64
}

func (c Command) Running() bool {
	return c.ForwardDistance > 0
}

func (c Command) Turning() bool {
	return c.YawDeltaDegrees != 0
}
