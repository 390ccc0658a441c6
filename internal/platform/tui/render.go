package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Terminal cells are roughly twice as tall as they are wide, so one grid
// cell is drawn as two characters side by side.
const (
	cellW = 2
	cellH = 1

	// Rows above the board (status) and below it (help).
	statusRows = 1
	helpRows   = 1
)

// Glyphs used for the board.
const (
	glyphSnake = '█'
	glyphFood  = '█'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// RequiredSize returns the terminal size needed to show a grid:
// the board, its border, the status line and the help line.
func RequiredSize(grid snake.Grid) (int, int) {
	return grid.Width*cellW + 2, grid.Height*cellH + 2 + statusRows + helpRows
}

// boardRect returns the screen rectangle of the board interior, centered
// horizontally below the status line.
func boardRect(dst *core.Screen, grid snake.Grid) core.Rect {
	w, h := grid.Width*cellW, grid.Height*cellH
	x := (dst.Width() - w) / 2
	return core.NewRect(x, statusRows+1, w, h)
}

// DrawGame draws the board, the food and the snake into dst.
func DrawGame(dst *core.Screen, g *snake.Game) {
	dst.Clear()

	grid := g.Grid()
	board := boardRect(dst, grid)
	dst.DrawBox(board.Inset(-1), core.ColorGray)

	status := fmt.Sprintf(" Snake - Length: %d", len(g.Body())+1)
	dst.DrawText(board.X-1, 0, status)

	drawCell(dst, board, g.Food(), glyphFood, core.ColorGreen)
	for _, seg := range g.Body() {
		drawCell(dst, board, seg, glyphSnake, core.ColorWhite)
	}
	drawCell(dst, board, g.Head(), glyphSnake, core.ColorWhite)
}

// drawCell fills the screen rectangle of one grid cell.
func drawCell(dst *core.Screen, board core.Rect, c snake.Coord, r rune, color core.Color) {
	dst.FillRect(c.Rect(cellW, cellH).Translate(board.X, board.Y), r, color)
}

// DrawTooSmall draws a notice asking for a larger terminal.
func DrawTooSmall(dst *core.Screen, needW, needH int) {
	dst.Clear()
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "Window too small")
	dst.DrawTextCentered(mid+1, fmt.Sprintf("Resize to at least %dx%d", needW, needH))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
