package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3

	boardW = BoardSize*cellWidth + 1
	boardH = BoardSize*cellHeight + 1

	// Minimum size: board plus HUD and controls line.
	minScreenW = boardW + 2
	minScreenH = boardH + hudHeight + 2
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := core.Clamp((g.screenW-boardW)/2, 0, g.screenW)
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX)
	g.renderBoard(dst, boardX, boardY)

	controls := g.Controls()
	dst.DrawTextColored(max(0, (g.screenW-len(controls))/2), boardY+boardH+1, controls, core.ColorGray)

	if g.gameOver {
		centerX, centerY := core.NewRect(boardX, boardY, boardW, boardH).Center()
		maxStr := fmt.Sprintf("Max tile: %d", g.board.MaxTile())
		turnStr := fmt.Sprintf("Turns: %d", g.turns)
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, turnStr, "R: new game  Q: quit")
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	y := g.screenH / 2
	dst.DrawTextCentered(y, msg)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderHUD draws the title, turn counter and highest tile.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	title := "2 0 4 8"
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Turn: %d", g.turns))

	maxStr := fmt.Sprintf("Max: %d", g.board.MaxTile())
	dst.DrawTextColored(boardX+boardW-len(maxStr), 1, maxStr, g.palette.Color(g.board.MaxTile()))

	seedStr := fmt.Sprintf("seed %d", g.board.Seed())
	if len(seedStr) <= boardW {
		dst.DrawTextColored(boardX+(boardW-len(seedStr))/2, 2, seedStr, core.ColorGray)
	}
}

// renderBoard draws the grid lines and the tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == BoardSize:
				corner = '┐'
			case y == BoardSize && x == 0:
				corner = '└'
			case y == BoardSize && x == BoardSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == BoardSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == BoardSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < BoardSize {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	for r := range BoardSize {
		for c := range BoardSize {
			val, err := g.board.Value(r, c)
			if err != nil || val == 0 {
				continue
			}

			cellX := boardX + c*cellWidth + 1
			cellY := boardY + r*cellHeight + 1

			// Center the value in the cell
			valStr := strconv.Itoa(val)
			padLeft := max(0, (cellWidth-1-len(valStr))/2)
			dst.DrawTextColored(cellX+padLeft, cellY, valStr, g.palette.Color(val))
		}
	}
}

// drawOverlay draws a centered boxed message over the board.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: move | R: restart | Q: quit"
}
