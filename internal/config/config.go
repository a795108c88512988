package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the file-backed configuration of the viewer and the mesh tool.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	World   WorldConfig   `yaml:"world"`
	Meshing MeshingConfig `yaml:"meshing"`
	Output  OutputConfig  `yaml:"output"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

type CameraConfig struct {
	FOV         float32    `yaml:"fov"`
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
	Position    [3]float32 `yaml:"position"`
	Yaw         float32    `yaml:"yaw"`
	Pitch       float32    `yaml:"pitch"`
	Speed       float32    `yaml:"speed"`
	Sensitivity float32    `yaml:"sensitivity"`
}

type WorldConfig struct {
	// Pattern is one of "reference", "empty", "floor" or "hills".
	Pattern string `yaml:"pattern"`
}

type MeshingConfig struct {
	// Workers > 1 builds chunks on a worker pool; 0 or 1 builds inline.
	Workers int `yaml:"workers"`
	// LightModel is "literal" (default) or "linear".
	LightModel  string `yaml:"light_model"`
	SlowBuildMS int    `yaml:"slow_build_ms"`
}

type OutputConfig struct {
	GLB      string `yaml:"glb,omitempty"`
	Snapshot string `yaml:"snapshot,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  900,
			Height: 600,
			Title:  "mini-vox",
			VSync:  true,
		},
		Camera: CameraConfig{
			FOV:         70,
			Near:        0.01,
			Far:         100,
			Position:    [3]float32{16, 6, 40},
			Yaw:         -90,
			Pitch:       -10,
			Speed:       6,
			Sensitivity: 0.1,
		},
		World: WorldConfig{Pattern: "reference"},
		Meshing: MeshingConfig{
			Workers:     1,
			LightModel:  "literal",
			SlowBuildMS: 8,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		cfg.Normalize()
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Normalize lowercases enum-like fields and fills zero values that have
// an obvious default.
func (c *Config) Normalize() {
	c.World.Pattern = strings.ToLower(strings.TrimSpace(c.World.Pattern))
	if c.World.Pattern == "" {
		c.World.Pattern = "reference"
	}
	c.Meshing.LightModel = strings.ToLower(strings.TrimSpace(c.Meshing.LightModel))
	if c.Meshing.LightModel == "" {
		c.Meshing.LightModel = "literal"
	}
	if c.Meshing.Workers < 1 {
		c.Meshing.Workers = 1
	}
	if c.Window.Title == "" {
		c.Window.Title = "mini-vox"
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Camera.FOV < MinFOV || c.Camera.FOV > MaxFOV {
		return fmt.Errorf("camera fov %.1f outside [%v, %v]", c.Camera.FOV, MinFOV, MaxFOV)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return errors.New("camera near/far must satisfy 0 < near < far")
	}
	switch c.World.Pattern {
	case "reference", "empty", "floor", "hills":
	default:
		return fmt.Errorf("unknown world pattern %q", c.World.Pattern)
	}
	switch c.Meshing.LightModel {
	case "literal", "linear":
	default:
		return fmt.Errorf("unknown light model %q", c.Meshing.LightModel)
	}
	if c.Meshing.SlowBuildMS < 0 {
		return errors.New("meshing slow_build_ms must not be negative")
	}
	return nil
}
