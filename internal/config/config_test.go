package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if cfg.GetTPS() != 60 {
		t.Errorf("TPS = %d, want 60", cfg.GetTPS())
	}
	if cfg.GetScreenWidth() != 1280 || cfg.GetScreenHeight() != 800 {
		t.Errorf("screen %dx%d, want 1280x800", cfg.GetScreenWidth(), cfg.GetScreenHeight())
	}
	if cfg.Hunting.ThreeStrikeLimit != 3 {
		t.Errorf("three-strike limit = %d, want 3", cfg.Hunting.ThreeStrikeLimit)
	}
	if cfg.Hunting.FrontalAngle != 135 || cfg.Hunting.RearAngle != 45 {
		t.Errorf("angle thresholds %v/%v, want 135/45",
			cfg.Hunting.FrontalAngle, cfg.Hunting.RearAngle)
	}
	if cfg.DeerAI.FleeRadius >= cfg.DeerAI.AlertRadius {
		t.Error("flee radius should sit inside the alert radius")
	}
}

func TestLoadConfigOverridesAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
display:
  screen_width: 640
hunting:
  rifle_range: 150
  jump_radius: 25
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Display.ScreenWidth != 640 {
		t.Errorf("screen width = %d, want 640", cfg.Display.ScreenWidth)
	}
	if cfg.Hunting.RifleRange != 150 || cfg.Hunting.JumpRadius != 25 {
		t.Errorf("hunting overrides lost: %+v", cfg.Hunting)
	}
	// Untouched values fall back to defaults.
	if cfg.Display.ScreenHeight != 800 {
		t.Errorf("screen height = %d, want default 800", cfg.Display.ScreenHeight)
	}
	if cfg.DeerAI.AlertRadius != 60 {
		t.Errorf("alert radius = %v, want default 60", cfg.DeerAI.AlertRadius)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestMustLoadConfigPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustLoadConfig did not panic on a missing file")
		}
	}()
	MustLoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
}

func TestLoadConfigRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("display: [not, a, map]"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected a parse error")
	}
}
