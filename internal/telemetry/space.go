package telemetry

import "github.com/Versifine/handloco/internal/physics"

// Space names the frame a recording's hand samples are expressed in.
type Space string

const (
	// SpaceWorld samples are used as-is.
	SpaceWorld Space = "world"
	// SpaceRig samples are relative to the avatar: X right, Y up, Z forward.
	// They are rotated into world space through the rig basis on playback.
	SpaceRig Space = "rig"
)

type Rig interface {
	Basis() (forward, up, right physics.Vec3)
}

func (s Space) valid() bool {
	return s == "" || s == SpaceWorld || s == SpaceRig
}

func rigToWorld(v physics.Vec3, forward, up, right physics.Vec3) physics.Vec3 {
	return right.Scale(v.X).Add(up.Scale(v.Y)).Add(forward.Scale(v.Z))
}

// InRig converts a rig-relative sample to world space using rig's current
// basis.
func (s HandSample) InRig(rig Rig) HandSample {
	forward, up, right := rig.Basis()
	out := s
	out.Position = rigToWorld(s.Position, forward, up, right)
	if s.Velocity != nil {
		v := rigToWorld(*s.Velocity, forward, up, right)
		out.Velocity = &v
	}
	return out
}
