package core

// Color is the foreground color of a screen cell. Hosts map it to a
// terminal palette entry.
type Color uint8

// Base terminal colors, used by menus and status lines.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Maze palette.
const (
	ColorWall       Color = iota + ColorGray + 1 // maze walls, deep blue
	ColorDot                                     // dots and power pellets, peach
	ColorDoor                                    // ghost house door
	ColorPink                                    // Pinky
	ColorFrightened                              // frightened ghosts
	ColorFlash                                   // frightened ghosts about to recover
)
