package locomotion

import (
	"math"

	"github.com/Versifine/handloco/internal/physics"
)

// TiltAmount is the alignment in [-1,1] between the horizontal left-to-right
// hand vector and the avatar right axis. Hands closer than
// physics.HandSeparationDeadband give 0.
func TiltAmount(s Snapshot) float64 {
	handVector := s.RightPosition.Sub(s.LeftPosition)
	horizontal := handVector.ProjectOnPlane(s.AvatarUp)
	if horizontal.Length() <= physics.HandSeparationDeadband {
		return 0
	}

	dir, ok := horizontal.Normalize()
	if !ok {
		return 0
	}
	return clamp(dir.Dot(s.AvatarRight), -1, 1)
}

// TurnInput applies the tilt threshold and the final deadzone. Values past
// the threshold pass through unscaled.
func TurnInput(tilt float64, p Params) float64 {
	if math.Abs(tilt) <= p.HandTiltThreshold {
		return 0
	}
	if math.Abs(tilt) <= physics.TurnInputDeadzone {
		return 0
	}
	return tilt
}

// TiltGate returns this frame's yaw delta in degrees about the avatar up.
func TiltGate(s Snapshot, p Params, dt float64) float64 {
	if !s.Active() || dt <= 0 {
		return 0
	}
	turn := TurnInput(TiltAmount(s), p)
	if turn == 0 {
		return 0
	}
	return turn * p.TurnSpeed * dt
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
