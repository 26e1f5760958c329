package core

// Color identifies a terminal color for a screen cell.
// The platform layer maps these to ANSI codes; game code never
// deals with escape sequences directly.
type Color uint8

const (
	ColorDefault Color = iota
	ColorSand
	ColorGrass
	ColorDarkGrass
	ColorTrunk
	ColorPalm
	ColorBridge
	ColorSky
	ColorSea
	ColorPlayer
	ColorHUD
	ColorDim
)
