package locomotion

import "github.com/Versifine/handloco/internal/physics"

// AverageHandSpeed is the mean of both hand speed magnitudes.
func AverageHandSpeed(s Snapshot) float64 {
	return (s.LeftVelocity.Length() + s.RightVelocity.Length()) / 2
}

// SpeedGate returns this frame's forward displacement and its length. The
// gate runs when the average hand speed is strictly above the threshold and
// moves RunSpeed*dt along the avatar forward flattened against up.
func SpeedGate(s Snapshot, p Params, dt float64) (physics.Vec3, float64) {
	if !s.Active() || dt <= 0 {
		return physics.Zero, 0
	}
	if AverageHandSpeed(s) <= p.HandSpeedThreshold {
		return physics.Zero, 0
	}

	forward, ok := s.AvatarForward.ProjectOnPlane(s.AvatarUp).Normalize()
	if !ok {
		// forward parallel to up: no horizontal heading to run along
		return physics.Zero, 0
	}

	distance := p.RunSpeed * dt
	return forward.Scale(distance), distance
}
