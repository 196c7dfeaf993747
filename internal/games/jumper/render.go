package jumper

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Visual elements.
const (
	TileChar   = '█'
	GoalChar   = '⚑'
	PlayerHead = '●'
	PlayerBody = '▌'
	PlayerLeap = '▚'
	GroundChar = '·'
)

// groundOffset is how many rows above the bottom edge the road is drawn.
const groundOffset = 4

// Render draws the current game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.mgr == nil {
		return
	}

	groundY := dst.Height() - groundOffset
	camX := g.body.Position().X

	g.drawRoad(dst, groundY, camX)
	g.drawPlayer(dst, groundY)

	// HUD
	steps := g.steps.text
	if steps == "" {
		steps = "0"
	}
	hud := fmt.Sprintf(" Steps: %s / %d ", steps, g.cfg.Road.Length)
	dst.DrawTextColored(2, 0, hud, core.ColorBrightWhite)

	mode := fmt.Sprintf(" %s ", g.mgr.Phase())
	dst.DrawTextColored(dst.Width()-len(mode)-2, 0, mode, core.ColorGray)

	if g.status.text != "" {
		color := core.ColorGreen
		if g.status.text == g.cfg.Messages.Fail {
			color = core.ColorRed
		}
		x := (dst.Width() - len([]rune(g.status.text))) / 2
		dst.DrawTextColored(x, 2, g.status.text, color)
	}

	if g.menu.visible {
		g.drawCenteredMessage(dst, g.title, g.cfg.Messages.Start)
	}
}

// screenX maps a world X coordinate to a column, keeping the camera's X at
// the player column.
func (g *Game) screenX(worldX, camX float64) int {
	cells := (worldX - camX) / g.cfg.Road.TileSize * float64(g.cfg.Render.CellsPerTile)
	return g.cfg.Render.PlayerColumn + int(math.Round(cells))
}

// drawRoad renders the spawned tiles and the finish flag. The flag marks
// index Length(), the first index that wins a run, whether or not a tile
// was spawned there.
func (g *Game) drawRoad(dst *core.Screen, groundY int, camX float64) {
	dst.DrawHLine(0, groundY+1, dst.Width(), GroundChar, core.ColorGray)

	width := core.Max(g.cfg.Render.CellsPerTile-1, 1)
	goal := g.mgr.Road().Length()
	for _, i := range g.tiles.indices() {
		pos := g.tiles.tiles[i]
		x := g.screenX(pos.X, camX)
		if x+width < 0 || x >= dst.Width() {
			continue
		}
		color := core.ColorYellow
		if i >= goal {
			color = core.ColorGreen
		}
		dst.DrawHLine(x, groundY, width, TileChar, color)
	}

	flagX := g.screenX(float64(goal)*g.cfg.Road.TileSize, camX)
	if flagX >= 0 && flagX < dst.Width() {
		dst.SetColored(flagX, groundY-1, GoalChar, core.ColorGreen)
	}
}

// drawPlayer renders the player standing on or jumping over the road.
// The arc follows the playing clip; its height scales with the step count.
func (g *Game) drawPlayer(dst *core.Screen, groundY int) {
	lift := 0
	body := PlayerBody
	if clip := g.anim.Playing(); clip != "" && g.player.Jumping() {
		h := float64(g.cfg.Render.JumpHeight * g.player.CurrentStep())
		lift = int(math.Round(math.Sin(math.Pi*g.anim.Progress()) * h))
		if clip == config.ClipTwoStep {
			body = PlayerLeap
		}
	}

	x := g.cfg.Render.PlayerColumn
	y := groundY - 1 - lift
	dst.SetColored(x, y-1, PlayerHead, core.ColorCyan)
	dst.SetColored(x, y, body, core.ColorCyan)
}

// drawCenteredMessage draws a boxed message in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
