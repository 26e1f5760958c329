package game

import (
	"github.com/anterakt/palmrun/internal/core"
	"github.com/anterakt/palmrun/internal/terrain"
)

// Sprite sheets are rune grids; '.' cells are transparent. The surface
// sheet is a 3x3 grid of 2x1 tile caps: rows by slope (flat, ascending,
// descending), columns by edge (left, middle, right).

var (
	fgSurfaceArt = []string{
		"▛▀▀▀▀▜",
		"◢▀◢▀◢▀",
		"▀◣▀◣▀◣",
	}
	bgSurfaceArt = []string{
		"▗▄▄▄▄▖",
		"◢▄◢▄◢▄",
		"▄◣▄◣▄◣",
	}
	fillArt   = []string{"▒▒"}
	bgFillArt = []string{"░░"}
	bridgeArt = []string{"╤╤"}
	palmArt   = []string{
		".@@@.",
		"@.|.@",
		"..|..",
	}

	runArt1 = []string{
		"▟▙",
		"▞▚",
	}
	runArt2 = []string{
		"▟▙",
		"▚▞",
	}
	jumpArt = []string{
		"▟▙",
		"▘▝",
	}
)

// foregroundSprites builds the sprite set for the collidable strip.
func foregroundSprites() terrain.SpriteSet {
	return terrain.SpriteSet{
		Surface:    core.NewSheet(fgSurfaceArt, core.ColorGrass, core.ColorDefault),
		Fill:       core.NewSheet(fillArt, core.ColorSand, core.ColorDefault),
		Bridge:     core.NewSheet(bridgeArt, core.ColorBridge, core.ColorDefault),
		Palm:       core.NewSheet(palmArt, core.ColorPalm, core.ColorDefault),
		TileW:      tileW,
		TileH:      tileH,
		BridgeYOff: 0,
		PalmDX:     -1, // center the 5-wide crown over a 2-wide tile
		PalmDY:     -len(palmArt),
	}
}

// backgroundSprites builds the dimmer parallax variant.
func backgroundSprites() terrain.SpriteSet {
	return terrain.SpriteSet{
		Surface:    core.NewSheet(bgSurfaceArt, core.ColorDarkGrass, core.ColorDefault),
		Fill:       core.NewSheet(bgFillArt, core.ColorDim, core.ColorDefault),
		Bridge:     core.NewSheet(bridgeArt, core.ColorDim, core.ColorDefault),
		Palm:       core.NewSheet(palmArt, core.ColorDarkGrass, core.ColorDefault),
		TileW:      tileW,
		TileH:      tileH,
		BridgeYOff: 0,
		PalmDX:     -1,
		PalmDY:     -len(palmArt),
	}
}

var (
	runSheet1 = core.NewSheet(runArt1, core.ColorPlayer, core.ColorDefault)
	runSheet2 = core.NewSheet(runArt2, core.ColorPlayer, core.ColorDefault)
	jumpSheet = core.NewSheet(jumpArt, core.ColorPlayer, core.ColorDefault)
)

// playerSheet picks the run animation frame, or the tucked pose in the
// air.
func playerSheet(grounded bool, frame int) *core.Sheet {
	if !grounded {
		return jumpSheet
	}
	if frame%10 < 5 {
		return runSheet1
	}
	return runSheet2
}
