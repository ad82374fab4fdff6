package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"glsandbox/pkg/render"
)

// Config represents the main configuration
type Config struct {
	Window         WindowConfig         `yaml:"window"`
	Logging        LoggingConfig        `yaml:"logging"`
	Render         RenderConfig         `yaml:"render"`
	PostProcessing PostProcessingConfig `yaml:"post_processing"`
	Camera         CameraConfig         `yaml:"camera"`
	Assets         AssetsConfig         `yaml:"assets"`
}

// WindowConfig contains window and context settings
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	VSync     bool   `yaml:"vsync"`
	FrameRate int    `yaml:"framerate"` // 0 disables the frame cap
	GLMajor   int    `yaml:"gl_major"`
	GLMinor   int    `yaml:"gl_minor"`
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty logs to the console only
}

// RenderConfig contains off-screen rendering settings
type RenderConfig struct {
	Samples    int        `yaml:"samples"`
	ClearColor [4]float32 `yaml:"clear_color"`
	Wireframe  bool       `yaml:"wireframe"`
}

// PostProcessingConfig holds the effect selection applied at startup
type PostProcessingConfig struct {
	Initial render.EffectSelection `yaml:"initial"`
}

// CameraConfig contains the free camera settings
type CameraConfig struct {
	Position    [3]float32 `yaml:"position"`
	Fov         float32    `yaml:"fov"`
	NearPlane   float32    `yaml:"near_plane"`
	FarPlane    float32    `yaml:"far_plane"`
	Speed       float32    `yaml:"speed"`
	FastSpeed   float32    `yaml:"fast_speed"`
	Sensitivity float32    `yaml:"sensitivity"`
}

// AssetsConfig lists the resources the sandbox loads by name
type AssetsConfig struct {
	HotReload bool          `yaml:"hot_reload"`
	Manifest  AssetManifest `yaml:"manifest"`
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "OpenGL Sandbox",
			VSync:     true,
			FrameRate: 0,
			GLMajor:   4,
			GLMinor:   1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Render: RenderConfig{
			Samples:    4,
			ClearColor: [4]float32{0.1, 0.1, 0.1, 1.0},
		},
		Camera: CameraConfig{
			Position:    [3]float32{0.0, 2.0, 5.0},
			Fov:         45.0,
			NearPlane:   0.1,
			FarPlane:    100.0,
			Speed:       2.5,
			FastSpeed:   10.0,
			Sensitivity: 100.0,
		},
		Assets: AssetsConfig{
			Manifest: DefaultManifest(),
		},
	}
}

// LoadConfig loads the configuration from a file. The defaults are returned
// alongside any error so callers may choose to continue.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("config file not found, using defaults: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("error parsing config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return DefaultConfig(), err
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// Validate checks value ranges that would otherwise fail deep inside the renderer
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.FrameRate < 0 {
		return fmt.Errorf("invalid framerate %d", c.Window.FrameRate)
	}
	if c.Render.Samples < 2 || c.Render.Samples > 32 {
		return fmt.Errorf("render.samples must be between 2 and 32, got %d", c.Render.Samples)
	}
	if c.Camera.NearPlane <= 0 || c.Camera.FarPlane <= c.Camera.NearPlane {
		return fmt.Errorf("invalid camera clip planes %g..%g", c.Camera.NearPlane, c.Camera.FarPlane)
	}
	if c.Camera.Fov < MinFov || c.Camera.Fov > MaxFov {
		return fmt.Errorf("camera.fov must be between %g and %g, got %g", MinFov, MaxFov, c.Camera.Fov)
	}
	return c.Assets.Manifest.Validate()
}

// Field of view limits in degrees
const (
	MinFov float32 = 1.0
	MaxFov float32 = 45.0
)
