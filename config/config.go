// Package config loads bounce3d settings from YAML. Anything missing from
// the file keeps its default.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where cmd looks for settings when -config is not given.
const DefaultPath = "bounce3d.yaml"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window     Window     `yaml:"window"`
	Simulation Simulation `yaml:"simulation"`
	Box        Box        `yaml:"box"`
	Camera     Camera     `yaml:"camera"`
	Light      Light      `yaml:"light"`
	Material   Material   `yaml:"material"`
	Stats      Stats      `yaml:"stats"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Simulation struct {
	TimeStep         float64    `yaml:"time_step"`
	Drag             float64    `yaml:"drag"`
	Gravity          [3]float64 `yaml:"gravity"`
	SubdivisionDepth int        `yaml:"subdivision_depth"`
	SpawnCount       int        `yaml:"spawn_count"`
	CollisionPolicy  string     `yaml:"collision_policy"`
	// Seed 0 seeds from the clock.
	Seed int64 `yaml:"seed"`
}

type Box struct {
	Right  float64 `yaml:"right"`
	Left   float64 `yaml:"left"`
	Bottom float64 `yaml:"bottom"`
	Top    float64 `yaml:"top"`
	Front  float64 `yaml:"front"`
	Back   float64 `yaml:"back"`
}

type Camera struct {
	Eye     [3]float64 `yaml:"eye"`
	ViewDir [3]float64 `yaml:"view_dir"`
	WorldX  [3]float64 `yaml:"world_x"`
	FovY    float64    `yaml:"fov_y"`
	Near    float64    `yaml:"near"`
	Far     float64    `yaml:"far"`
}

type Light struct {
	Position [3]float64 `yaml:"position"`
	Ambient  [3]float64 `yaml:"ambient"`
	Diffuse  [3]float64 `yaml:"diffuse"`
	Specular [3]float64 `yaml:"specular"`
}

type Material struct {
	Specular  [3]float64 `yaml:"specular"`
	Shininess float64    `yaml:"shininess"`
}

type Stats struct {
	Interval time.Duration `yaml:"interval"`
}

// MaxSubdivisionDepth is the deepest sphere mesh whose merged vertices
// (32770 at depth 7) still fit a 16-bit index buffer.
const MaxSubdivisionDepth = 7

// Default returns the stock demo settings.
func Default() Config {
	return Config{
		Window: Window{
			Width:  640,
			Height: 480,
			Title:  "bounce3d",
		},
		Simulation: Simulation{
			TimeStep:         0.01,
			Drag:             0.4,
			Gravity:          [3]float64{0, -10, 0},
			SubdivisionDepth: 6,
			SpawnCount:       9,
			CollisionPolicy:  "sequential",
		},
		Box: Box{
			Right:  2.5,
			Left:   -2.5,
			Bottom: -2.5,
			Top:    3,
			Front:  2.5,
			Back:   -3,
		},
		Camera: Camera{
			Eye:     [3]float64{0, 1, 13},
			ViewDir: [3]float64{0, -1, -13},
			WorldX:  [3]float64{1, 0, 0},
			FovY:    45,
			Near:    0.1,
			Far:     500,
		},
		Light: Light{
			Position: [3]float64{10, 10, 10},
			Ambient:  [3]float64{0.1, 0.1, 0.1},
			Diffuse:  [3]float64{1, 1, 1},
			Specular: [3]float64{1, 1, 1},
		},
		Material: Material{
			Specular:  [3]float64{0.5, 0.5, 0.5},
			Shininess: 23,
		},
		Stats: Stats{
			Interval: time.Second,
		},
	}
}

// Load reads path over Default. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("could not read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("could not parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	s := c.Simulation
	switch {
	case s.TimeStep <= 0:
		return fmt.Errorf("%w: simulation.time_step must be positive, got %v", ErrInvalid, s.TimeStep)
	case s.Drag <= 0 || s.Drag > 1:
		return fmt.Errorf("%w: simulation.drag must be in (0, 1], got %v", ErrInvalid, s.Drag)
	case s.SubdivisionDepth < 0 || s.SubdivisionDepth > MaxSubdivisionDepth:
		return fmt.Errorf("%w: simulation.subdivision_depth must be in [0, %d], got %d", ErrInvalid, MaxSubdivisionDepth, s.SubdivisionDepth)
	case s.SpawnCount <= 0:
		return fmt.Errorf("%w: simulation.spawn_count must be positive, got %d", ErrInvalid, s.SpawnCount)
	}

	b := c.Box
	if b.Left >= b.Right || b.Bottom >= b.Top || b.Back >= b.Front {
		return fmt.Errorf("%w: box planes out of order: %+v", ErrInvalid, b)
	}

	cam := c.Camera
	if cam.Near <= 0 || cam.Far <= cam.Near {
		return fmt.Errorf("%w: camera needs 0 < near < far, got near=%v far=%v", ErrInvalid, cam.Near, cam.Far)
	}
	if cam.FovY <= 0 || cam.FovY >= 180 {
		return fmt.Errorf("%w: camera.fov_y must be in (0, 180), got %v", ErrInvalid, cam.FovY)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Stats.Interval <= 0 {
		return fmt.Errorf("%w: stats.interval must be positive, got %v", ErrInvalid, c.Stats.Interval)
	}
	return nil
}
