package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the default Pac-Man configuration.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Speeds: PacmanSpeeds{
			Pacman:           11.0,
			Ghost:            9.0,
			FrightenedFactor: 0.5,
			EatenFactor:      2.0,
		},
		Timers: PacmanTimers{
			Frightened: 6.0,
			Scatter:    7.0,
			Cycle:      27.0,
		},
		Gameplay: PacmanGameplay{
			Lives:       3,
			House:       HouseOpen,
			ReleaseDots: []int{0, 0, 0, 0},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 8,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:     0.25,
				FrightenedReduction: 3.0,
			},
		},
	}
}
