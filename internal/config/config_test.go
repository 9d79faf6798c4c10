package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg PacmanConfig
	if err := yaml.Unmarshal(defaultPacmanYAML, &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultPacmanConfig()) {
		t.Errorf("embedded defaults drifted:\n got %+v\nwant %+v", cfg, DefaultPacmanConfig())
	}
}

func TestLoadPacmanCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pacman.yaml")
	data := "speeds:\n  ghost: 7.5\ngameplay:\n  release_dots: [0, 5, 10, 15]\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPacman(path)
	if err != nil {
		t.Fatalf("LoadPacman: %v", err)
	}
	if cfg.Speeds.Ghost != 7.5 {
		t.Errorf("ghost speed = %v, want 7.5", cfg.Speeds.Ghost)
	}
	if cfg.Speeds.Pacman != 11.0 {
		t.Errorf("unset pacman speed = %v, want default 11", cfg.Speeds.Pacman)
	}
	if !reflect.DeepEqual(cfg.Gameplay.ReleaseDots, []int{0, 5, 10, 15}) {
		t.Errorf("release dots = %v", cfg.Gameplay.ReleaseDots)
	}
}

func TestLoadPacmanErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadPacman(filepath.Join(dir, "missing.yaml")); err == nil ||
		!strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("missing file error = %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("speeds: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPacman(bad); err == nil || !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("bad yaml error = %v", err)
	}
}

func TestApplyPacmanPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		enabled    bool
		initial    float64
		lives      int
		frightened float64
	}{
		{DifficultyEasy, true, 0.0, 3, 8.0},
		{DifficultyNormal, true, 0.3, 3, 6.0},
		{DifficultyHard, true, 0.7, 2, 6.0},
		{DifficultyFixed, false, 0.0, 3, 6.0},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultPacmanConfig()
			ApplyPacmanPreset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.enabled || cfg.Difficulty.InitialLevel != tt.initial {
				t.Errorf("difficulty = %+v", cfg.Difficulty)
			}
			if cfg.Gameplay.Lives != tt.lives || cfg.Timers.Frightened != tt.frightened {
				t.Errorf("lives=%d frightened=%v", cfg.Gameplay.Lives, cfg.Timers.Frightened)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("empty preset = %q, %v", p, ok)
	}
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("hard preset = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset accepted")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultPacmanConfig().Difficulty
	dm := NewDifficultyManager(cfg)

	if got := dm.Level(1); got != 0 {
		t.Errorf("Level(1) = %v, want 0", got)
	}
	if got := dm.Level(cfg.Progression.MaxAt); got != 1 {
		t.Errorf("Level(max) = %v, want 1", got)
	}
	if got := dm.Level(100); got != 1 {
		t.Errorf("Level beyond max = %v, want clamped to 1", got)
	}
	if got := dm.Speed(8, cfg.Progression.MaxAt); math.Abs(got-10) > 1e-9 {
		t.Errorf("Speed at max = %v, want 10", got)
	}
	if got := dm.FrightenedTime(6, cfg.Progression.MaxAt); got != 3 {
		t.Errorf("FrightenedTime at max = %v, want 3", got)
	}
	if got := dm.FrightenedTime(2, cfg.Progression.MaxAt); got != 1 {
		t.Errorf("FrightenedTime floor = %v, want 1", got)
	}

	dm.SetInitialLevel(0.5)
	dm.SetEnabled(false)
	if dm.IsEnabled() {
		t.Error("manager still enabled")
	}
	if got := dm.Level(5); got != 0.5 {
		t.Errorf("disabled Level = %v, want initial 0.5", got)
	}
}
