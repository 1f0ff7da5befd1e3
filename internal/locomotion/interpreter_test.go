package locomotion

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Versifine/handloco/internal/physics"
)

type fakeHand struct {
	tracked  bool
	position physics.Vec3
	velocity physics.Vec3
}

func (h *fakeHand) Tracked() bool          { return h.tracked }
func (h *fakeHand) Position() physics.Vec3 { return h.position }
func (h *fakeHand) Velocity() physics.Vec3 { return h.velocity }

type fakeRig struct {
	forward, up, right physics.Vec3
}

func (r fakeRig) Basis() (physics.Vec3, physics.Vec3, physics.Vec3) {
	return r.forward, r.up, r.right
}

type recordingActuator struct {
	moves []physics.Vec3
	turns []float64
}

func (a *recordingActuator) Move(d physics.Vec3) { a.moves = append(a.moves, d) }
func (a *recordingActuator) Turn(deg float64)    { a.turns = append(a.turns, deg) }

func uprightRig() fakeRig {
	return fakeRig{
		forward: physics.Vec3{Z: 1},
		up:      physics.Vec3{Y: 1},
		right:   physics.Vec3{X: 1},
	}
}

func newTestInterpreter(t *testing.T, left, right *fakeHand) (*Interpreter, *recordingActuator) {
	t.Helper()
	act := &recordingActuator{}
	in, err := New(defaultParams(), Handles{
		Actuator:  act,
		Rig:       uprightRig(),
		LeftHand:  left,
		RightHand: right,
	})
	require.NoError(t, err)
	require.True(t, in.Ready())
	return in, act
}

func TestInterpreterStepRunsAndTurns(t *testing.T) {
	left := &fakeHand{tracked: true, position: physics.Vec3{X: -0.1}, velocity: physics.Vec3{Z: 2}}
	right := &fakeHand{tracked: true, position: physics.Vec3{X: 0.1}, velocity: physics.Vec3{Z: -2}}
	in, act := newTestInterpreter(t, left, right)

	cmd := in.Step(0.1)

	require.InDelta(t, 0.3, cmd.ForwardDistance, 1e-12)
	require.InDelta(t, 6.0, cmd.YawDeltaDegrees, 1e-9)
	require.Len(t, act.moves, 1)
	require.InDelta(t, 0.3, act.moves[0].Z, 1e-12)
	require.Equal(t, []float64{cmd.YawDeltaDegrees}, act.turns)
}

func TestInterpreterStepIdleDoesNotTouchActuator(t *testing.T) {
	left := &fakeHand{tracked: true}
	right := &fakeHand{tracked: true, position: physics.Vec3{X: 0.01}}
	in, act := newTestInterpreter(t, left, right)

	require.Equal(t, Command{}, in.Step(0.1))
	require.Empty(t, act.moves)
	require.Empty(t, act.turns)
}

func TestInterpreterIgnoresBadFrameTime(t *testing.T) {
	left := &fakeHand{tracked: true, position: physics.Vec3{X: -0.1}, velocity: physics.Vec3{Z: 2}}
	right := &fakeHand{tracked: true, position: physics.Vec3{X: 0.1}, velocity: physics.Vec3{Z: -2}}
	in, act := newTestInterpreter(t, left, right)

	// 零、负数、NaN、无穷大的帧时间都不产生动作
	for _, dt := range []float64{0, -0.1, math.NaN(), math.Inf(1)} {
		require.Equal(t, Command{}, in.Step(dt))
	}
	require.Empty(t, act.moves)
	require.Empty(t, act.turns)
}

func TestInterpreterResumesAfterTrackingLoss(t *testing.T) {
	left := &fakeHand{tracked: true, velocity: physics.Vec3{Z: 2}}
	right := &fakeHand{tracked: false, velocity: physics.Vec3{Z: 2}}
	in, act := newTestInterpreter(t, left, right)

	require.Equal(t, Command{}, in.Step(0.1))
	require.Empty(t, act.moves)

	right.tracked = true
	require.True(t, in.Step(0.1).Running())
	require.Len(t, act.moves, 1)
}

func TestInterpreterMissingRightHand(t *testing.T) {
	act := &recordingActuator{}
	in, err := New(defaultParams(), Handles{
		Actuator: act,
		Rig:      uprightRig(),
		LeftHand: &fakeHand{tracked: true, velocity: physics.Vec3{Z: 5}},
	})

	require.Error(t, err)
	require.ErrorIs(t, err, ErrNotReady)
	var setupErr *SetupError
	require.True(t, errors.As(err, &setupErr))
	require.Equal(t, []string{"right_hand"}, setupErr.Missing)

	require.False(t, in.Ready())
	for i := 0; i < 3; i++ {
		require.Equal(t, Command{}, in.Step(0.1))
	}
	require.Empty(t, act.moves)
	require.Empty(t, act.turns)
}

func TestInterpreterReportsEveryMissingHandle(t *testing.T) {
	in, err := New(defaultParams(), Handles{})

	var setupErr *SetupError
	require.ErrorAs(t, err, &setupErr)
	require.Equal(t, []string{"actuator", "rig", "left_hand", "right_hand"}, setupErr.Missing)
	require.Contains(t, err.Error(), "right_hand")
	require.False(t, in.Ready())
	require.Equal(t, Snapshot{}, in.Snapshot())
}

func TestInterpreterRejectsInvalidParams(t *testing.T) {
	p := defaultParams()
	p.TurnSpeed = -1
	in, err := New(p, Handles{
		Actuator:  &recordingActuator{},
		Rig:       uprightRig(),
		LeftHand:  &fakeHand{},
		RightHand: &fakeHand{},
	})

	require.ErrorIs(t, err, ErrInvalidParams)
	require.False(t, in.Ready())
}

func TestNilInterpreterIsInert(t *testing.T) {
	var in *Interpreter
	require.False(t, in.Ready())
	require.Equal(t, Command{}, in.Step(0.1))
	require.Equal(t, Params{}, in.Params())
}
