package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_EmbeddedDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	if cfg.Screen.Width != 1280 || cfg.Screen.Height != 720 {
		t.Errorf("screen = %dx%d, want 1280x720", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Scene.Batteries < 1 {
		t.Errorf("batteries = %d, want at least 1", cfg.Scene.Batteries)
	}
	if cfg.Quality.SampleInterval <= 0 {
		t.Errorf("sample interval = %v, want positive", cfg.Quality.SampleInterval)
	}
	if cfg.Trails.MaxPoints <= 0 {
		t.Errorf("trail max points = %d, want positive", cfg.Trails.MaxPoints)
	}
}

func TestLoad_OverlayOverridesOnlyPresentFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	overlay := []byte("scene:\n  batteries: 7\n")
	if err := os.WriteFile(path, overlay, 0644); err != nil {
		t.Fatalf("writing overlay: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading overlay: %v", err)
	}

	if cfg.Scene.Batteries != 7 {
		t.Errorf("batteries = %d, want overlay value 7", cfg.Scene.Batteries)
	}
	if cfg.Scene.DomeRadius != 12 {
		t.Errorf("dome radius = %v, want default 12", cfg.Scene.DomeRadius)
	}
}

func TestLoad_ComputesDerived(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	if cfg.Derived.ScreenW32 != float32(cfg.Screen.Width) {
		t.Errorf("ScreenW32 = %v, want %v", cfg.Derived.ScreenW32, cfg.Screen.Width)
	}
	if cfg.Derived.ScreenH32 != float32(cfg.Screen.Height) {
		t.Errorf("ScreenH32 = %v, want %v", cfg.Derived.ScreenH32, cfg.Screen.Height)
	}
}
