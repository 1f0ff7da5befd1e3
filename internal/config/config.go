package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Versifine/handloco/internal/locomotion"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Locomotion LocomotionConfig `yaml:"locomotion"`
	Logging    LoggingConfig    `yaml:"logging"`
	Session    SessionConfig    `yaml:"session"`
}

type LocomotionConfig struct {
	RunSpeed           float64 `yaml:"run_speed"`
	HandSpeedThreshold float64 `yaml:"hand_speed_threshold"`
	TurnSpeed          float64 `yaml:"turn_speed"`
	HandTiltThreshold  float64 `yaml:"hand_tilt_threshold"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type SessionConfig struct {
	TickRate         int  `yaml:"tick_rate"`
	Realtime         bool `yaml:"realtime"`
	EstimateVelocity bool `yaml:"estimate_velocity"`
}

func Default() *Config {
	return &Config{
		Locomotion: LocomotionConfig{
			RunSpeed:           3.0,
			HandSpeedThreshold: 1.5,
			TurnSpeed:          60,
			HandTiltThreshold:  0.2,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Session: SessionConfig{
			TickRate:         72,
			EstimateVelocity: true,
		},
	}
}

// Load reads a YAML config on top of Default, so omitted keys keep their
// default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalid)
	}
	if err := c.Locomotion.Params().Validate(); err != nil {
		return fmt.Errorf("%w: locomotion: %w", ErrInvalid, err)
	}
	if c.Session.TickRate <= 0 {
		return fmt.Errorf("%w: session.tick_rate must be > 0, got %d", ErrInvalid, c.Session.TickRate)
	}
	return nil
}

func (l LocomotionConfig) Params() locomotion.Params {
	return locomotion.Params{
		RunSpeed:           l.RunSpeed,
		HandSpeedThreshold: l.HandSpeedThreshold,
		TurnSpeed:          l.TurnSpeed,
		HandTiltThreshold:  l.HandTiltThreshold,
	}
}

// FrameSeconds is the fixed frame duration for the configured tick rate.
func (s SessionConfig) FrameSeconds() float64 {
	if s.TickRate <= 0 {
		return 0
	}
	return 1 / float64(s.TickRate)
}
