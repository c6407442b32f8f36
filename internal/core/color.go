package core

// Color is a foreground colour for a screen cell.
// Frontends map it onto their own palette.
type Color uint8

// Colours used by the stomp frontends.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorGray
)
