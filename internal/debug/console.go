package debug

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/Versifine/handloco/internal/locomotion"
	"github.com/Versifine/handloco/internal/session"
	"github.com/Versifine/handloco/internal/telemetry"
)

const (
	defaultTickInterval = time.Second / 72
	defaultSwingPulse   = 400 * time.Millisecond
	defaultSwingSpeed   = 2.5
	// fore-aft hands: no turn
	neutralBearing = 90.0
	bearingStep    = 15.0
)

type ControlledRunner interface {
	Tick(dt float64) locomotion.Command
	Running() bool
	TurnDirection() int
	Summary() session.Summary
}

// Console simulates a pair of tracked hands from the keyboard and drives a
// runner with them at a fixed tick rate.
type Console struct {
	runner       ControlledRunner
	rig          telemetry.Rig
	left         *telemetry.Hand
	right        *telemetry.Hand
	tickInterval time.Duration
	swingPulse   time.Duration
	swingSpeed   float64

	mu          sync.Mutex
	swingUntil  time.Time
	bearing     float64
	untracked   bool
	elapsed     float64
	lastCommand locomotion.Command
	statusWidth int
}

// NewConsole builds a console whose simulated hands are posed relative to
// rig, so they turn with the avatar.
func NewConsole(runner ControlledRunner, rig telemetry.Rig, left, right *telemetry.Hand, tickInterval time.Duration) *Console {
	if tickInterval <= 0 {
		tickInterval = defaultTickInterval
	}
	return &Console{
		runner:       runner,
		rig:          rig,
		left:         left,
		right:        right,
		tickInterval: tickInterval,
		swingPulse:   defaultSwingPulse,
		swingSpeed:   defaultSwingSpeed,
		bearing:      neutralBearing,
	}
}

func (c *Console) Start(ctx context.Context) error {
	if c == nil {
		return fmt.Errorf("console is nil")
	}
	if c.runner == nil {
		return fmt.Errorf("console runner is nil")
	}
	if c.left == nil || c.right == nil {
		return fmt.Errorf("console hands are nil")
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("console requires a terminal on stdin")
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("set terminal raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
		fmt.Print("\r\n")
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Print("[debug] console started (W swing, A/D or arrows tilt, T tracking, X reset, Q quit)\r\n")
	c.renderStatusLine()

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.tickLoop(ctx)
	}()
	defer func() {
		cancel()
		<-done
	}()

	keys := make(chan byte)
	readErr := make(chan error, 1)
	go readKeys(bufio.NewReader(os.Stdin), keys, readErr)

	var escape []byte
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read console input: %w", err)
		case b := <-keys:
			if len(escape) > 0 || b == 27 {
				escape = append(escape, b)
				if len(escape) < 3 {
					continue
				}
				b = arrowKey(escape)
				escape = escape[:0]
			}
			if quit := c.handleKey(b); quit {
				return nil
			}
		}
	}
}

func readKeys(reader *bufio.Reader, keys chan<- byte, errs chan<- error) {
	for {
		b, err := reader.ReadByte()
		if err != nil {
			errs <- err
			return
		}
		keys <- b
	}
}

// arrowKey maps ESC [ D / ESC [ C onto the tilt keys.
func arrowKey(seq []byte) byte {
	if len(seq) != 3 || seq[0] != 27 || seq[1] != '[' {
		return 0
	}
	switch seq[2] {
	case 'D':
		return 'a'
	case 'C':
		return 'd'
	}
	return 0
}

func (c *Console) tickLoop(ctx context.Context) {
	ticker := time.NewTicker(c.tickInterval)
	defer ticker.Stop()

	dt := c.tickInterval.Seconds()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			c.step(now, dt)
			c.renderStatusLine()
		}
	}
}

// step feeds the current simulated pose to the hands and ticks the runner.
func (c *Console) step(now time.Time, dt float64) locomotion.Command {
	c.mu.Lock()
	swing := 0.0
	if now.Before(c.swingUntil) {
		swing = c.swingSpeed
	}
	c.elapsed += dt
	left, right := telemetry.Pose(c.bearing, telemetry.DefaultHandSpan, swing, c.elapsed)
	left.Tracked = !c.untracked
	right.Tracked = !c.untracked
	c.mu.Unlock()

	if c.rig != nil {
		left, right = left.InRig(c.rig), right.InRig(c.rig)
	}

	c.left.Set(left, dt)
	c.right.Set(right, dt)
	cmd := c.runner.Tick(dt)

	c.mu.Lock()
	c.lastCommand = cmd
	c.mu.Unlock()
	return cmd
}

// handleKey applies one key press and reports whether to quit. The status
// line catches up on the next tick.
func (c *Console) handleKey(b byte) bool {
	switch b {
	case 'q', 'Q', 3: // 3 = Ctrl-C in raw mode
		return true
	case 'w', 'W':
		c.pulseSwing(time.Now())
	case 'a', 'A':
		c.adjustBearing(bearingStep)
	case 'd', 'D':
		c.adjustBearing(-bearingStep)
	case 't', 'T':
		c.mu.Lock()
		c.untracked = !c.untracked
		c.mu.Unlock()
	case 'x', 'X':
		c.reset()
	}
	return false
}

func (c *Console) pulseSwing(now time.Time) {
	c.mu.Lock()
	c.swingUntil = now.Add(c.swingPulse)
	c.mu.Unlock()
}

// adjustBearing rotates the hand vector; toward 180 crosses the hands for a
// left turn, toward 0 spreads them for a right turn.
func (c *Console) adjustBearing(delta float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bearing += delta
	if c.bearing < 0 {
		c.bearing = 0
	}
	if c.bearing > 180 {
		c.bearing = 180
	}
}

func (c *Console) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.swingUntil = time.Time{}
	c.bearing = neutralBearing
	c.untracked = false
}

func (c *Console) statusLine() string {
	c.mu.Lock()
	bearing := c.bearing
	untracked := c.untracked
	cmd := c.lastCommand
	c.mu.Unlock()

	summary := c.runner.Summary()
	tracking := "ON"
	if untracked {
		tracking = "OFF"
	}
	return fmt.Sprintf(
		"[RUN:%s TURN:%-5s TRK:%-3s | BRG:%3.0f YAW/f:%+.2f | YAW:%6.1f | X:%.2f Z:%.2f dist:%.2f]",
		boolLabel(c.runner.Running()),
		turnLabel(c.runner.TurnDirection()),
		tracking,
		bearing,
		cmd.YawDeltaDegrees,
		summary.Final.Yaw,
		summary.Final.Position.X,
		summary.Final.Position.Z,
		summary.Final.Traveled,
	)
}

func (c *Console) renderStatusLine() {
	line := c.statusLine()

	c.mu.Lock()
	width := c.statusWidth
	if len(line) > c.statusWidth {
		c.statusWidth = len(line)
	}
	c.mu.Unlock()

	padding := ""
	if width > len(line) {
		padding = strings.Repeat(" ", width-len(line))
	}
	fmt.Printf("\r%s%s", line, padding)
}

func boolLabel(v bool) string {
	if v {
		return "ON "
	}
	return "OFF"
}

func turnLabel(direction int) string {
	switch {
	case direction < 0:
		return "LEFT"
	case direction > 0:
		return "RIGHT"
	default:
		return "-"
	}
}
