package telemetry

import (
	"sync"

	"github.com/Versifine/handloco/internal/physics"
)

// Hand is a hand tracking source fed one sample per frame.
type Hand struct {
	mu               sync.Mutex
	estimateVelocity bool

	tracked  bool
	position physics.Vec3
	velocity physics.Vec3
	// lastPosition is valid while hasLast is set; cleared on tracking loss.
	lastPosition physics.Vec3
	hasLast      bool
}

// NewHand returns an untracked hand. With estimateVelocity set, samples that
// carry no velocity get one from the position change over dt.
func NewHand(estimateVelocity bool) *Hand {
	return &Hand{estimateVelocity: estimateVelocity}
}

func (h *Hand) Set(sample HandSample, dt float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.tracked = sample.Tracked
	h.position = sample.Position

	switch {
	case !sample.Tracked:
		h.velocity = physics.Zero
		h.hasLast = false
		return
	case sample.Velocity != nil:
		h.velocity = *sample.Velocity
	case h.estimateVelocity && h.hasLast && dt > 0:
		h.velocity = sample.Position.Sub(h.lastPosition).Scale(1 / dt)
	default:
		h.velocity = physics.Zero
	}
	h.lastPosition = sample.Position
	h.hasLast = true
}

func (h *Hand) Tracked() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.tracked
}

func (h *Hand) Position() physics.Vec3 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.position
}

func (h *Hand) Velocity() physics.Vec3 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.velocity
}
