package game

import (
	"fmt"

	"github.com/mpetrov/gosnake/internal/core"
)

const hudHeight = 2

// Render draws the current game state into the screen buffer. All
// screen-space geometry lives here; the rules above never see pixels.
func (e *Engine) Render(dst *core.Screen) {
	dst.Clear()

	if e.phase == PhaseMenu {
		e.renderMenu(dst)
		return
	}

	// Border box around the grid, centered under the HUD.
	requiredW := e.grid.W + 2
	requiredH := e.grid.H + 2 + hudHeight
	if dst.Width() < requiredW || dst.Height() < requiredH {
		e.renderOverlay(dst, "Window too small", fmt.Sprintf("Need at least %dx%d", requiredW, requiredH))
		return
	}

	e.renderHUD(dst)

	offX := (dst.Width()-e.grid.W)/2 - 1
	offY := hudHeight
	dst.DrawBox(offX, offY, e.grid.W+2, e.grid.H+2)

	// mapX/mapY translate grid cells into screen cells inside the border.
	mapX := func(p core.Point) int { return offX + 1 + p.X }
	mapY := func(p core.Point) int { return offY + 1 + p.Y }

	if e.grid.Contains(e.food) {
		dst.SetCell(mapX(e.food), mapY(e.food), '*', core.ColorBrightWhite)
	}
	if e.bonus.Active {
		dst.SetCell(mapX(e.bonus.Pos), mapY(e.bonus.Pos), '@', core.ColorOrange)
	}

	for i, seg := range e.snake.Body() {
		if i == 0 {
			dst.SetCell(mapX(seg), mapY(seg), 'O', core.ColorBrightRed)
		} else {
			dst.SetCell(mapX(seg), mapY(seg), 'o', core.ColorRed)
		}
	}

	switch e.phase {
	case PhasePaused:
		e.renderOverlay(dst, "PAUSED", "Press P to continue")
	case PhaseGameOver:
		e.renderOverlay(dst, "GAME OVER: "+e.reason.String(),
			fmt.Sprintf("Final score: %d. Press R to restart", e.score.Total()))
	}
}

// renderHUD draws the top status bar.
func (e *Engine) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Score: %d  Level: %s  Length: %d", e.score.Total(), e.level, e.snake.Len())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderMenu draws the title screen with difficulty selection.
func (e *Engine) renderMenu(dst *core.Screen) {
	top := dst.Height()/2 - 6

	dst.DrawTextCenteredColor(top, "S N A K E", core.ColorBrightGreen)
	dst.DrawTextCentered(top+2, "Select level:")

	for l := Level1; l <= Level3; l++ {
		label := fmt.Sprintf("  %s  ", l)
		if l == e.level {
			label = fmt.Sprintf("> %s <", l)
		}
		x := dst.Width()/2 + (int(l)-2)*6 - len(label)/2
		color := core.ColorGray
		if l == e.level {
			color = core.ColorBrightYellow
		}
		dst.DrawTextColor(x, top+4, label, color)
	}

	dst.DrawTextCentered(top+7, "Enter: Start  |  1-3: Level  |  Q: Quit")
}

// renderOverlay draws a centered two-line message box over the field.
func (e *Engine) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawTextCenteredColor(boxY+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(boxY+3, line2)
}
