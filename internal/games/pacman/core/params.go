package core

// Params tunes the simulation. DefaultParams reproduces the standard rules;
// hosts load overrides from configuration.
type Params struct {
	PacmanSpeed      float64 // tiles per second
	GhostSpeed       float64 // tiles per second
	FrightenedFactor float64 // ghost speed multiplier while frightened
	EatenFactor      float64 // ghost speed multiplier while returning home
	FrightenedTime   float64 // seconds a power pellet lasts
	ScatterTime      float64 // seconds of scatter at the start of each cycle
	CycleTime        float64 // seconds of a full scatter+chase cycle
	StartingLives    int
	ReleaseDots      [4]int // dots eaten in a level before each ghost leaves the house
}

// DefaultParams returns the standard rule set.
func DefaultParams() Params {
	return Params{
		PacmanSpeed:      11.0,
		GhostSpeed:       9.0,
		FrightenedFactor: 0.5,
		EatenFactor:      2.0,
		FrightenedTime:   6.0,
		ScatterTime:      7.0,
		CycleTime:        27.0,
		StartingLives:    MaxLives,
	}
}

// ArcadeReleaseDots are the arcade house thresholds: Inky waits for 30
// dots and Clyde for 60. DefaultParams releases every ghost at once.
var ArcadeReleaseDots = [4]int{Blinky: 0, Pinky: 0, Inky: 30, Clyde: 60}

// normalized fills non-positive fields from the defaults and clamps lives.
func (p Params) normalized() Params {
	d := DefaultParams()
	if p.PacmanSpeed <= 0 {
		p.PacmanSpeed = d.PacmanSpeed
	}
	if p.GhostSpeed <= 0 {
		p.GhostSpeed = d.GhostSpeed
	}
	if p.FrightenedFactor <= 0 {
		p.FrightenedFactor = d.FrightenedFactor
	}
	if p.EatenFactor <= 0 {
		p.EatenFactor = d.EatenFactor
	}
	if p.FrightenedTime <= 0 {
		p.FrightenedTime = d.FrightenedTime
	}
	if p.CycleTime <= 0 {
		p.CycleTime = d.CycleTime
	}
	if p.ScatterTime <= 0 || p.ScatterTime > p.CycleTime {
		p.ScatterTime = d.ScatterTime
		if p.ScatterTime > p.CycleTime {
			p.ScatterTime = p.CycleTime
		}
	}
	if p.StartingLives <= 0 || p.StartingLives > MaxLives {
		p.StartingLives = MaxLives
	}
	for i, n := range p.ReleaseDots {
		if n < 0 {
			p.ReleaseDots[i] = 0
		}
	}
	return p
}
