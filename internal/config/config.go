// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// PacmanConfig contains all configuration for Pac-Man.
type PacmanConfig struct {
	Speeds     PacmanSpeeds     `yaml:"speeds" json:"speeds"`
	Timers     PacmanTimers     `yaml:"timers" json:"timers"`
	Gameplay   PacmanGameplay   `yaml:"gameplay" json:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty" json:"difficulty"`
}

// PacmanSpeeds defines movement speeds in tiles per second.
type PacmanSpeeds struct {
	Pacman           float64 `yaml:"pacman" json:"pacman"`
	Ghost            float64 `yaml:"ghost" json:"ghost"`
	FrightenedFactor float64 `yaml:"frightened_factor" json:"frightened_factor"` // ghost speed multiplier while frightened
	EatenFactor      float64 `yaml:"eaten_factor" json:"eaten_factor"`           // ghost speed multiplier while returning home
}

// PacmanTimers defines the ghost mode schedule in seconds.
type PacmanTimers struct {
	Frightened float64 `yaml:"frightened" json:"frightened"`
	Scatter    float64 `yaml:"scatter" json:"scatter"`
	Cycle      float64 `yaml:"cycle" json:"cycle"`
}

// House release rules.
const (
	HouseOpen   = "open"   // release_dots as given, all zero by default
	HouseArcade = "arcade" // inky after 30 dots, clyde after 60
)

// PacmanGameplay defines lives and ghost house release thresholds.
type PacmanGameplay struct {
	Lives       int    `yaml:"lives" json:"lives"`
	House       string `yaml:"house" json:"house" jsonschema:"enum=open,enum=arcade"`
	ReleaseDots []int  `yaml:"release_dots" json:"release_dots"` // blinky, pinky, inky, clyde; ignored by the arcade house
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" json:"enabled"`
	InitialLevel float64           `yaml:"initial_level" json:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" json:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" json:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a game.
type ProgressionConfig struct {
	Type  string `yaml:"type" json:"type"`     // "level" or "none"
	MaxAt int    `yaml:"max_at" json:"max_at"` // Maze level at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier     float64 `yaml:"speed_multiplier" json:"speed_multiplier"`         // Added to ghost speed at max difficulty
	FrightenedReduction float64 `yaml:"frightened_reduction" json:"frightened_reduction"` // Seconds of fright removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
