package telemetry

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Versifine/handloco/internal/physics"
)

// Recording is a captured hand-tracking session, one entry per frame.
type Recording struct {
	Name   string  `yaml:"name"`
	Space  Space   `yaml:"space,omitempty"`
	Frames []Frame `yaml:"frames"`
}

type Frame struct {
	DT    float64    `yaml:"dt"`
	Left  HandSample `yaml:"left"`
	Right HandSample `yaml:"right"`
}

// HandSample is one hand's tracking state. A nil Velocity means the source
// did not report one for this frame.
type HandSample struct {
	Tracked  bool          `yaml:"tracked"`
	Position physics.Vec3  `yaml:"position"`
	Velocity *physics.Vec3 `yaml:"velocity,omitempty"`
}

func LoadRecording(path string) (*Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRecording(data)
}

func ParseRecording(data []byte) (*Recording, error) {
	rec := &Recording{}
	if err := yaml.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("parse recording: %w", err)
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *Recording) Validate() error {
	if r == nil || len(r.Frames) == 0 {
		return ErrEmptyRecording
	}
	if !r.Space.valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSpace, r.Space)
	}
	for i, f := range r.Frames {
		if !(f.DT >= 0) || math.IsInf(f.DT, 0) {
			return fmt.Errorf("%w: frame %d has dt %v", ErrBadFrame, i, f.DT)
		}
	}
	return nil
}

// Duration is the sum of all frame deltas in seconds.
func (r *Recording) Duration() float64 {
	if r == nil {
		return 0
	}
	var total float64
	for _, f := range r.Frames {
		total += f.DT
	}
	return total
}

func (r *Recording) Marshal() ([]byte, error) {
	return yaml.Marshal(r)
}
