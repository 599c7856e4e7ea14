// Package config provides configuration loading and access for the scene.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all scene and engine configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Scene     SceneConfig     `yaml:"scene"`
	Quality   QualityConfig   `yaml:"quality"`
	Trails    TrailConfig     `yaml:"trails"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// SceneConfig holds engagement-scene composition parameters.
type SceneConfig struct {
	Batteries         int     `yaml:"batteries"`          // Interceptor launch sites
	DomeRadius        float32 `yaml:"dome_radius"`        // Radar dome radius in world units
	WorldRadius       float32 `yaml:"world_radius"`       // Missile spawn ring radius
	LaunchInterval    float64 `yaml:"launch_interval"`    // Seconds between incoming missile launches
	MissileSpeed      float32 `yaml:"missile_speed"`      // Incoming missile speed (units/sec)
	InterceptorSpeed  float32 `yaml:"interceptor_speed"`  // Interceptor speed (units/sec)
	FuseRadius        float32 `yaml:"fuse_radius"`        // Proximity fuse detonation distance
	ExplosionDuration float64 `yaml:"explosion_duration"` // Seconds an explosion stays visible
}

// QualityConfig holds adaptive-quality sampling parameters.
// The decision thresholds themselves are fixed in the quality package;
// only the sampling cadence is configurable.
type QualityConfig struct {
	SampleInterval float64 `yaml:"sample_interval"` // Seconds between FPS samples / re-derivations
}

// TrailConfig holds exhaust trail parameters.
type TrailConfig struct {
	MaxPoints    int     `yaml:"max_points"`    // Points per trail ribbon
	PointSpacing float64 `yaml:"point_spacing"` // Seconds between trail point emissions
	MaxAge       float64 `yaml:"max_age"`       // Seconds until a trail point fully fades
}

// TelemetryConfig holds frame telemetry parameters.
type TelemetryConfig struct {
	PerfWindow  int     `yaml:"perf_window"`  // Frames to average over
	LogInterval float64 `yaml:"log_interval"` // Seconds between perf log lines (0 = off)
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
