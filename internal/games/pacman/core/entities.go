package core

// MaxLives is the upper bound on Pac-Man's lives.
const MaxLives = 3

// Spawn tiles.
var (
	PacmanSpawn = T(14, 23)
	ghostSpawns = [4]Tile{
		Blinky: T(14, 11),
		Pinky:  T(12, 14),
		Inky:   T(14, 14),
		Clyde:  T(16, 14),
	}
	scatterTargets = [4]Tile{
		Blinky: T(25, -3),
		Pinky:  T(2, -3),
		Inky:   T(27, 31),
		Clyde:  T(0, 31),
	}
)

// Pacman is the player-controlled eater.
type Pacman struct {
	Pos     Vec
	Dir     Dir
	Pending Dir
	Lives   int
	Score   int
}

// Ghost is one of the four pursuers.
type Ghost struct {
	Kind     GhostKind
	Pos      Vec
	Dir      Dir
	Pending  Dir
	Mode     GhostMode
	Released bool // false while waiting in the house for its dot threshold
}

func newPacman(lives int) Pacman {
	return Pacman{
		Pos:     PacmanSpawn.Center(),
		Dir:     DirLeft,
		Pending: DirLeft,
		Lives:   lives,
	}
}

func newGhost(kind GhostKind) Ghost {
	return Ghost{
		Kind:    kind,
		Pos:     ghostSpawns[kind].Center(),
		Dir:     DirUp,
		Pending: DirUp,
		Mode:    GhostScatter,
	}
}

func newGhosts() [4]Ghost {
	return [4]Ghost{
		newGhost(Blinky),
		newGhost(Pinky),
		newGhost(Inky),
		newGhost(Clyde),
	}
}

// reverse flips the ghost's heading. Pending is kept in step unless the
// ghost is steered by a player, whose queued input must survive.
func (g *Ghost) reverse(steered bool) {
	g.Dir = g.Dir.Opposite()
	if !steered {
		g.Pending = g.Dir
	}
}
