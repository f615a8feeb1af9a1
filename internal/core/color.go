package core

// Color is the foreground color of a screen cell. The platform decides how
// each one looks on the terminal it draws to.
type Color uint8

const (
	ColorDefault Color = iota // Terminal foreground
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
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
	ColorDarkGray
	ColorTeal
	ColorPurple
	ColorSlate

	ColorCount // Number of colors; not a color itself
)
