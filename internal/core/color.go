package core

// Color represents a foreground color for a screen cell.
// Frontends translate it to ANSI codes or RGBA values.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorGreen
	ColorRed
	ColorGray
)
