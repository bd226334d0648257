package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/falling-world/internal/config"
	"github.com/vovakirdan/falling-world/internal/core"
)

func TestRenderTitleScreen(t *testing.T) {
	c := NewContext(config.DefaultFallingConfig(), classicLevel())
	screen := core.NewScreen(60, 20)
	c.Render(screen)

	out := screen.String()
	if !strings.Contains(out, TitleText) {
		t.Errorf("title screen missing %q:\n%s", TitleText, out)
	}
	for _, line := range ControlsText {
		if !strings.Contains(out, strings.TrimSpace(line)) {
			t.Errorf("title screen missing %q", line)
		}
	}
	if strings.ContainsRune(out, TileChar) {
		t.Error("tiles are not drawn on the title screen")
	}
}

func TestRenderGameOver(t *testing.T) {
	c := NewContext(config.DefaultFallingConfig(), emptyLevel())
	c.Step(press(core.ActionRestart), dt)
	for i := 0; i < 1000 && c.Status() == StatusRunning; i++ {
		c.Step(core.NewInputFrame(), dt)
	}

	screen := core.NewScreen(60, 20)
	c.Render(screen)
	out := screen.String()

	if !strings.Contains(out, GameOverText) || !strings.Contains(out, LevelStatus(0)) {
		t.Errorf("game over screen:\n%s", out)
	}
}

func TestRenderRunning(t *testing.T) {
	c := NewContext(config.DefaultFallingConfig(), classicLevel())
	c.Step(press(core.ActionRestart), dt)

	screen := core.NewScreen(60, 20)
	c.Render(screen)
	out := screen.String()

	if !strings.ContainsRune(out, PlayerRight) {
		t.Errorf("player glyph missing:\n%s", out)
	}
	if !strings.ContainsRune(out, TileChar) {
		t.Errorf("tile glyph missing:\n%s", out)
	}
	if !strings.Contains(screen.Row(0), LevelStatus(0)) {
		t.Errorf("level status missing from the top row: %q", screen.Row(0))
	}

	// Landing ledge at row 12 maps to cells y=19, x=3..12
	if cell := screen.GetCell(5, 19); cell.Rune != TileChar || cell.Color != core.ColorBrown {
		t.Errorf("ledge cell = %+v", cell)
	}
}

func TestDrawCommandsOrder(t *testing.T) {
	c := NewContext(config.DefaultFallingConfig(), classicLevel())
	if c.DrawCommands() != nil {
		t.Error("nothing is drawn before the game starts")
	}

	c.Step(press(core.ActionRestart), dt)
	cmds := c.DrawCommands()
	if len(cmds) != c.Tiles().Len()+1 {
		t.Fatalf("expected %d commands, got %d", c.Tiles().Len()+1, len(cmds))
	}
	for i, tile := range c.Tiles().All() {
		if cmds[i].Rect != tile.Rect || cmds[i].Texture != TextureTile {
			t.Errorf("command %d = %+v, expected tile %+v", i, cmds[i], tile.Rect)
		}
	}
	if last := cmds[len(cmds)-1]; last.Texture != TexturePlayer || last.FlipX {
		t.Errorf("player command = %+v", last)
	}
}

func TestCustomTextures(t *testing.T) {
	c := NewContext(config.DefaultFallingConfig(), classicLevel(),
		WithTextures(7, 9),
		WithAtlas(core.Atlas{7: {Rune: 'P'}, 9: {Rune: '#'}}),
	)
	c.Step(press(core.ActionRestart), dt)

	screen := core.NewScreen(60, 20)
	c.Render(screen)
	out := screen.String()
	if !strings.ContainsRune(out, 'P') || !strings.ContainsRune(out, '#') {
		t.Errorf("custom atlas not used:\n%s", out)
	}
	if c.Tiles().At(0).Texture != 9 || c.Player().Texture != 7 {
		t.Error("custom texture handles not attached")
	}
}

func TestRenderPaused(t *testing.T) {
	c := NewContext(config.DefaultFallingConfig(), classicLevel(), WithDebug(true))
	c.Step(press(core.ActionRestart), dt)
	c.Step(press(core.ActionPause), dt)

	screen := core.NewScreen(60, 20)
	c.Render(screen)
	if !strings.Contains(screen.String(), PausedText) {
		t.Error("paused overlay missing")
	}
}
