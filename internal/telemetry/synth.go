package telemetry

import (
	"math"

	"github.com/Versifine/handloco/internal/physics"
)

// Segment describes a stretch of synthetic motion in rig space.
//
// Bearing is the direction of the left-to-right hand vector in degrees,
// measured from +X (avatar right) toward +Z (forward). 0 holds the hands
// side by side, 90 puts the right hand straight ahead of the left, 180
// crosses them.
type Segment struct {
	Frames     int
	SwingSpeed float64 // m/s, each hand
	Bearing    float64
	HandSpan   float64 // m, default 0.4
	Untracked  bool
}

const (
	DefaultHandSpan = 0.4
	swingHz         = 1.5
)

var poseCenter = physics.Vec3{Y: 1.2, Z: 0.3}

// Pose returns both hand samples at time t. Each hand circles in the
// vertical plane at constant swingSpeed, so the swing never changes the
// horizontal hand vector.
func Pose(bearing, span, swingSpeed, t float64) (left, right HandSample) {
	if span <= 0 {
		span = DefaultHandSpan
	}
	omega := 2 * math.Pi * swingHz
	sin, cos := math.Sincos(bearing * math.Pi / 180.0)
	half := physics.Vec3{X: cos * span / 2, Z: sin * span / 2}
	radius := swingSpeed / omega

	ps, pc := math.Sincos(omega * t)
	leftOffset := physics.Vec3{Y: radius * ps, Z: radius * pc}
	rightOffset := physics.Vec3{Y: -radius * ps, Z: radius * pc}
	leftVel := physics.Vec3{Y: swingSpeed * pc, Z: -swingSpeed * ps}
	rightVel := physics.Vec3{Y: -swingSpeed * pc, Z: -swingSpeed * ps}

	left = HandSample{
		Tracked:  true,
		Position: poseCenter.Sub(half).Add(leftOffset),
		Velocity: &leftVel,
	}
	right = HandSample{
		Tracked:  true,
		Position: poseCenter.Add(half).Add(rightOffset),
		Velocity: &rightVel,
	}
	return left, right
}

// Synthesize builds a rig-space recording at a fixed frame rate from
// segments. Velocities are written explicitly so replays do not depend on
// estimation.
func Synthesize(name string, tickRate int, segments ...Segment) *Recording {
	rec := &Recording{Name: name, Space: SpaceRig}
	if tickRate <= 0 {
		return rec
	}
	dt := 1 / float64(tickRate)

	var t float64
	for _, seg := range segments {
		for i := 0; i < seg.Frames; i++ {
			left, right := Pose(seg.Bearing, seg.HandSpan, seg.SwingSpeed, t)
			left.Tracked = !seg.Untracked
			right.Tracked = !seg.Untracked
			rec.Frames = append(rec.Frames, Frame{DT: dt, Left: left, Right: right})
			t += dt
		}
	}
	return rec
}
