package session

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/Versifine/handloco/internal/body"
	"github.com/Versifine/handloco/internal/event"
	"github.com/Versifine/handloco/internal/locomotion"
	"github.com/Versifine/handloco/internal/physics"
	"github.com/Versifine/handloco/internal/telemetry"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testParams() locomotion.Params {
	return locomotion.Params{
		RunSpeed:           3.0,
		HandSpeedThreshold: 1.5,
		TurnSpeed:          60,
		HandTiltThreshold:  0.2,
	}
}

type eventLog struct {
	mu     sync.Mutex
	gait   []event.GaitEvent
	turns  []event.TurnEvent
	failed []event.SetupFailedEvent
}

func subscribe(bus *event.Bus) *eventLog {
	l := &eventLog{}
	bus.Subscribe(event.EventGait, func(raw any) {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.gait = append(l.gait, raw.(event.GaitEvent))
	})
	bus.Subscribe(event.EventTurn, func(raw any) {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.turns = append(l.turns, raw.(event.TurnEvent))
	})
	bus.Subscribe(event.EventSetupFailed, func(raw any) {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.failed = append(l.failed, raw.(event.SetupFailedEvent))
	})
	return l
}

// runTurnIdle is 10 frames running straight, 5 frames turning right in
// place and 3 frames with tracking lost, at 50 Hz.
func runTurnIdle() *telemetry.Recording {
	return telemetry.Synthesize("run-turn-idle", 50,
		telemetry.Segment{Frames: 10, SwingSpeed: 2, Bearing: 90},
		telemetry.Segment{Frames: 5, Bearing: 0},
		telemetry.Segment{Frames: 3, SwingSpeed: 4, Untracked: true},
	)
}

func TestReplaySummary(t *testing.T) {
	bus := event.NewBus()
	events := subscribe(bus)

	r, player, err := NewReplay(testParams(), runTurnIdle(), true, bus)
	require.NoError(t, err)
	require.True(t, r.Ready())
	require.NotEmpty(t, r.ID())

	summary, err := r.Replay(context.Background(), player, false)
	require.NoError(t, err)
	bus.Wait()

	require.Equal(t, r.ID(), summary.SessionID)
	require.Equal(t, 18, summary.Frames)
	require.Equal(t, 10, summary.RunningFrames)
	require.Equal(t, 5, summary.TurningFrames)
	require.InDelta(t, 18*0.02, summary.Duration, 1e-9)
	require.InDelta(t, 10*3.0*0.02, summary.Distance, 1e-9)
	// rig-space hands turn with the avatar, so every turning frame is a
	// full 1.2 degrees
	require.InDelta(t, 5*60*0.02, summary.YawDegrees, 1e-6)

	require.InDelta(t, 0.6, summary.Final.Position.Z, 1e-9)
	require.InDelta(t, 0, summary.Final.Position.X, 1e-9)
	require.InDelta(t, 6, summary.Final.Yaw, 1e-6)
	require.False(t, r.Running())
	require.Equal(t, 0, r.TurnDirection())

	events.mu.Lock()
	defer events.mu.Unlock()
	require.ElementsMatch(t, []event.GaitEvent{
		{SessionID: r.ID(), Frame: 0, Running: true},
		{SessionID: r.ID(), Frame: 10, Running: false},
	}, events.gait)
	require.ElementsMatch(t, []event.TurnEvent{
		{SessionID: r.ID(), Frame: 10, Direction: 1},
		{SessionID: r.ID(), Frame: 15, Direction: 0},
	}, events.turns)
	require.Empty(t, events.failed)
}

func TestTickScenarioForwardRun(t *testing.T) {
	b := body.New(physics.Zero, 0)
	left, right := telemetry.NewHand(false), telemetry.NewHand(false)
	r, err := New(Options{Params: testParams(), Body: b, Left: left, Right: right})
	require.NoError(t, err)

	lv := physics.Vec3{Z: 2}
	rv := physics.Vec3{Z: -2}
	left.Set(telemetry.HandSample{Tracked: true, Position: physics.Vec3{Z: 0.1}, Velocity: &lv}, 0.1)
	right.Set(telemetry.HandSample{Tracked: true, Position: physics.Vec3{Z: 0.4}, Velocity: &rv}, 0.1)

	cmd := r.Tick(0.1)
	require.InDelta(t, 0.3, cmd.ForwardDistance, 1e-12)
	require.Zero(t, cmd.YawDeltaDegrees)
	require.InDelta(t, 0.3, b.State().Position.Z, 1e-12)
	require.True(t, r.Running())
}

func TestSetupFailureDisablesRunner(t *testing.T) {
	bus := event.NewBus()
	events := subscribe(bus)

	left := telemetry.NewHand(false)
	b := body.New(physics.Zero, 0)
	r, err := New(Options{Params: testParams(), Body: b, Left: left, Bus: bus})
	require.ErrorIs(t, err, locomotion.ErrNotReady)
	require.False(t, r.Ready())

	v := physics.Vec3{Z: 5}
	left.Set(telemetry.HandSample{Tracked: true, Velocity: &v}, 0.1)
	for i := 0; i < 5; i++ {
		require.Equal(t, locomotion.Command{}, r.Tick(0.1))
	}
	require.Equal(t, body.State{}, b.State())

	player := telemetry.NewPlayer(runTurnIdle(), left, nil)
	_, err = r.Replay(context.Background(), player, false)
	require.ErrorIs(t, err, locomotion.ErrNotReady)
	require.Equal(t, 0, player.Frame())

	bus.Wait()
	events.mu.Lock()
	defer events.mu.Unlock()
	require.Len(t, events.failed, 1)
	require.Equal(t, []string{"right_hand"}, events.failed[0].Missing)
	require.Equal(t, r.ID(), events.failed[0].SessionID)
	require.Empty(t, events.gait)
}

func TestMissingBodyReportsActuatorAndRig(t *testing.T) {
	_, err := New(Options{
		Params: testParams(),
		Left:   telemetry.NewHand(false),
		Right:  telemetry.NewHand(false),
	})
	var setupErr *locomotion.SetupError
	require.ErrorAs(t, err, &setupErr)
	require.Equal(t, []string{"actuator", "rig"}, setupErr.Missing)
}

func TestReplayCancelled(t *testing.T) {
	r, player, err := NewReplay(testParams(), runTurnIdle(), true, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := r.Replay(ctx, player, false)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, summary.Frames)
}

func TestReplayRealtime(t *testing.T) {
	rec := telemetry.Synthesize("short", 1000,
		telemetry.Segment{Frames: 3, SwingSpeed: 2, Bearing: 90},
	)
	r, player, err := NewReplay(testParams(), rec, false, nil)
	require.NoError(t, err)

	summary, err := r.Replay(context.Background(), player, true)
	require.NoError(t, err)
	require.Equal(t, 3, summary.Frames)
	require.Equal(t, 3, summary.RunningFrames)
}
