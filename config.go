package vitrine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by LoadSettings.
const EnvPrefix = "VITRINE_"

// ReentryPolicy decides what Enter does while a session is already open.
type ReentryPolicy uint8

const (
	// ReentryIgnore drops the call; the user must exit first.
	ReentryIgnore ReentryPolicy = iota
	// ReentryReplace swaps the inspected exhibit in place and keeps the
	// pose saved when the session first opened.
	ReentryReplace
)

// String returns the policy name used in settings files.
func (p ReentryPolicy) String() string {
	switch p {
	case ReentryIgnore:
		return "ignore"
	case ReentryReplace:
		return "replace"
	default:
		return fmt.Sprintf("ReentryPolicy(%d)", uint8(p))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p ReentryPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *ReentryPolicy) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "ignore":
		*p = ReentryIgnore
	case "replace":
		*p = ReentryReplace
	default:
		return fmt.Errorf("%w: unknown reentry policy %q", ErrConfiguration, text)
	}
	return nil
}

// PoseSettings is a serializable pose: a position and a heading in degrees
// around the up axis.
type PoseSettings struct {
	X   float64 `toml:"x" yaml:"x" env:"X"`
	Y   float64 `toml:"y" yaml:"y" env:"Y"`
	Z   float64 `toml:"z" yaml:"z" env:"Z"`
	Yaw float64 `toml:"yaw" yaml:"yaw" env:"YAW"`
}

// Pose converts the settings to a Pose.
func (p PoseSettings) Pose() Pose {
	return NewPose(mgl64.Vec3{p.X, p.Y, p.Z}, p.Yaw)
}

// Settings holds the tunables of an inspection controller plus the placement
// of the inspection area. Everything here is plain data so it can come from
// a file or the environment.
type Settings struct {
	TargetHeight float64       `toml:"target_height" yaml:"target_height" env:"TARGET_HEIGHT"`
	RotateSpeed  float64       `toml:"rotate_speed" yaml:"rotate_speed" env:"ROTATE_SPEED"` // degrees per second at full deflection
	ZoomSpeed    float64       `toml:"zoom_speed" yaml:"zoom_speed" env:"ZOOM_SPEED"`       // zoom factor per second at full deflection
	MinZoom      float64       `toml:"min_zoom" yaml:"min_zoom" env:"MIN_ZOOM"`
	MaxZoom      float64       `toml:"max_zoom" yaml:"max_zoom" env:"MAX_ZOOM"`
	DeadZone     float64       `toml:"dead_zone" yaml:"dead_zone" env:"DEAD_ZONE"`
	Reentry      ReentryPolicy `toml:"reentry" yaml:"reentry" env:"REENTRY"`
	Station      PoseSettings  `toml:"station" yaml:"station" envPrefix:"STATION_"`
	Spawn        PoseSettings  `toml:"spawn" yaml:"spawn" envPrefix:"SPAWN_"`
}

// DefaultSettings returns the stock tunables: a 0.6 m miniature, 120°/s
// orbit, zoom between 0.5x and 2.5x.
func DefaultSettings() Settings {
	return Settings{
		TargetHeight: 0.6,
		RotateSpeed:  120,
		ZoomSpeed:    1,
		MinZoom:      0.5,
		MaxZoom:      2.5,
		DeadZone:     DefaultDeadZone,
		Reentry:      ReentryIgnore,
		Station:      PoseSettings{Z: 50},
		Spawn:        PoseSettings{Y: 1.2, Z: 49},
	}
}

// Validate reports the first out-of-range value as ErrConfiguration.
func (s Settings) Validate() error {
	switch {
	case s.TargetHeight <= 0:
		return fmt.Errorf("%w: target_height must be positive, got %v", ErrConfiguration, s.TargetHeight)
	case s.MinZoom <= 0:
		return fmt.Errorf("%w: min_zoom must be positive, got %v", ErrConfiguration, s.MinZoom)
	case s.MinZoom > s.MaxZoom:
		return fmt.Errorf("%w: min_zoom %v exceeds max_zoom %v", ErrConfiguration, s.MinZoom, s.MaxZoom)
	case s.RotateSpeed < 0:
		return fmt.Errorf("%w: rotate_speed must not be negative, got %v", ErrConfiguration, s.RotateSpeed)
	case s.ZoomSpeed < 0:
		return fmt.Errorf("%w: zoom_speed must not be negative, got %v", ErrConfiguration, s.ZoomSpeed)
	case s.DeadZone < 0:
		return fmt.Errorf("%w: dead_zone must not be negative, got %v", ErrConfiguration, s.DeadZone)
	}
	return nil
}

// LoadSettings starts from DefaultSettings, overlays the file at path when
// path is non-empty (.toml, .yaml or .yml), then overlays VITRINE_*
// environment variables, and validates the result.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Settings{}, fmt.Errorf("load settings: %w", err)
		}
		if err := decodeSettings(filepath.Ext(path), data, &s); err != nil {
			return Settings{}, fmt.Errorf("load settings %s: %w", path, err)
		}
	}
	if err := env.ParseWithOptions(&s, env.Options{Prefix: EnvPrefix}); err != nil {
		return Settings{}, fmt.Errorf("load settings: parse env: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// decodeSettings overlays data onto s using the decoder for ext.
func decodeSettings(ext string, data []byte, s *Settings) error {
	switch strings.ToLower(ext) {
	case ".toml":
		return toml.Unmarshal(data, s)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, s)
	default:
		return fmt.Errorf("unsupported settings format %q", ext)
	}
}
