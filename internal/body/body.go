package body

import (
	"math"
	"sync"

	"github.com/Versifine/handloco/internal/physics"
)

// State is a copy of the avatar's kinematic state. Yaw is in degrees about
// world up; yaw 0 faces +Z with +X to the right.
type State struct {
	Position physics.Vec3
	Yaw      float64
	Traveled float64
}

// Body is a kinematic avatar. It is both the movement actuator and the rig
// for the locomotion interpreter. There is no collision response.
type Body struct {
	mu    sync.Mutex
	state State
}

func New(position physics.Vec3, yaw float64) *Body {
	return &Body{
		state: State{
			Position: position,
			Yaw:      normalizeYaw(yaw),
		},
	}
}

// Move applies the horizontal part of displacement.
func (b *Body) Move(displacement physics.Vec3) {
	if b == nil {
		return
	}
	flat := displacement.ProjectOnPlane(physics.WorldUp)
	b.mu.Lock()
	b.state.Position = b.state.Position.Add(flat)
	b.state.Traveled += flat.Length()
	b.mu.Unlock()
}

// Turn rotates the body about world up; positive degrees turn right.
func (b *Body) Turn(yawDegrees float64) {
	if b == nil {
		return
	}
	b.mu.Lock()
	b.state.Yaw = normalizeYaw(b.state.Yaw + yawDegrees)
	b.mu.Unlock()
}

func (b *Body) Basis() (forward, up, right physics.Vec3) {
	if b == nil {
		return basisForYaw(0)
	}
	b.mu.Lock()
	yaw := b.state.Yaw
	b.mu.Unlock()
	return basisForYaw(yaw)
}

func (b *Body) State() State {
	if b == nil {
		return State{}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func basisForYaw(yaw float64) (forward, up, right physics.Vec3) {
	rad := yaw * math.Pi / 180.0
	sin, cos := math.Sincos(rad)
	forward = physics.Vec3{X: sin, Z: cos}
	right = physics.Vec3{X: cos, Z: -sin}
	return forward, physics.WorldUp, right
}

func normalizeYaw(v float64) float64 {
	v = math.Mod(v, 360)
	if v <= -180 {
		v += 360
	} else if v > 180 {
		v -= 360
	}
	return v
}
