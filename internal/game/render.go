package game

import (
	"fmt"

	"github.com/vovakirdan/falling-world/internal/core"
)

// Visual characters for rendering
const (
	PlayerRight = '▶'
	PlayerLeft  = '◀'
	TileChar    = '█'
)

// Overlay text
const (
	TitleText    = "Falling World"
	GameOverText = "Game Over"
	PausedText   = "PAUSED"
)

// ControlsText lists the controls shown on the title and game over screens.
var ControlsText = []string{
	"Press <Enter> to start, then:",
	"  - Press <j> to move left",
	"  - Press <l> to move right",
	"  - Press <Space> to jump",
	"Press <Esc> to exit",
}

// DefaultAtlas returns the glyphs for the default texture handles.
func DefaultAtlas() core.Atlas {
	return core.Atlas{
		TexturePlayer: {Rune: PlayerRight, FlipRune: PlayerLeft, Color: core.ColorYellow},
		TextureTile:   {Rune: TileChar, Color: core.ColorBrown},
	}
}

// LevelStatus formats the level counter line.
func LevelStatus(level int) string {
	return fmt.Sprintf("Got to level: %d", level)
}

// DrawCommands returns the textured rectangles to draw this frame: tiles in
// set order, then the player on top. Nothing is drawn outside Running.
func (c *Context) DrawCommands() []core.DrawCommand {
	if c.status != StatusRunning {
		return nil
	}
	cmds := make([]core.DrawCommand, 0, c.tiles.Len()+1)
	for _, tile := range c.tiles.All() {
		cmds = append(cmds, tile.DrawCommand())
	}
	cmds = append(cmds, c.player.DrawCommand())
	return cmds
}

// Viewport maps this game's playfield onto a screen.
func (c *Context) Viewport(dst *core.Screen) core.Viewport {
	return core.Viewport{
		PlayfieldW: c.cfg.Playfield.Width,
		PlayfieldH: c.cfg.Playfield.Height,
		ScreenW:    dst.Width(),
		ScreenH:    dst.Height(),
	}
}

// Render draws the current game state into a character screen.
func (c *Context) Render(dst *core.Screen) {
	dst.Clear()

	switch c.status {
	case StatusBeginning, StatusGameOver:
		c.renderTitle(dst)
	case StatusRunning:
		core.Rasterize(dst, c.Viewport(dst), c.atlas, c.DrawCommands())
		status := LevelStatus(c.tracker.Level)
		dst.DrawText(dst.Width()-len(status)-1, 0, status)
	}

	if c.paused {
		dst.DrawTextCentered(dst.Height()/2, PausedText)
	}
}

func (c *Context) renderTitle(dst *core.Screen) {
	h := dst.Height()
	y := max(h/5, 0)

	title := TitleText
	if c.status == StatusGameOver {
		title = GameOverText
	}
	dst.DrawTextCentered(y, title)
	y++

	if c.status == StatusGameOver {
		dst.DrawTextCentered(y, LevelStatus(c.tracker.Level))
	} else if c.level.Name != "" && c.level.Name != TitleText {
		dst.DrawTextCentered(y, c.level.Name)
	}
	y += 2

	// Controls block is left-aligned and centered as a whole
	width := 0
	for _, line := range ControlsText {
		width = max(width, len(line))
	}
	x := max((dst.Width()-width)/2, 0)
	for _, line := range ControlsText {
		if y >= h {
			break
		}
		dst.DrawText(x, y, line)
		y++
	}
}
