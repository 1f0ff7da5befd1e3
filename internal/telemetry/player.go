package telemetry

// Player walks a Recording frame by frame, feeding a left/right Hand pair.
type Player struct {
	rec   *Recording
	left  *Hand
	right *Hand
	rig   Rig
	next  int
}

func NewPlayer(rec *Recording, left, right *Hand) *Player {
	return &Player{rec: rec, left: left, right: right}
}

// WithRig sets the rig used to place rig-space recordings in the world.
// Without one, rig-space samples are applied as if they were world space.
func (p *Player) WithRig(rig Rig) *Player {
	p.rig = rig
	return p
}

// Advance applies the next frame to both hands and returns its dt.
func (p *Player) Advance() (float64, error) {
	if p.rec == nil || p.next >= len(p.rec.Frames) {
		return 0, ErrEndOfRecording
	}
	f := p.rec.Frames[p.next]
	p.next++

	left, right := f.Left, f.Right
	if p.rec.Space == SpaceRig && p.rig != nil {
		left, right = left.InRig(p.rig), right.InRig(p.rig)
	}
	if p.left != nil {
		p.left.Set(left, f.DT)
	}
	if p.right != nil {
		p.right.Set(right, f.DT)
	}
	return f.DT, nil
}

// Frame is the index of the next frame Advance will apply.
func (p *Player) Frame() int {
	return p.next
}

func (p *Player) Len() int {
	if p.rec == nil {
		return 0
	}
	return len(p.rec.Frames)
}
