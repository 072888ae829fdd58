package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/they4kman/termsweep/game"
)

const (
	// Screen columns per board cell
	cellWidth = 3

	title       = "Minesweeper"
	bannerWidth = 30
	boardTop    = 3
)

// BestTimeFunc reports the best finishing time for a difficulty, if any
type BestTimeFunc func(game.Difficulty) (time.Duration, bool)

type Renderer struct {
	screen tcell.Screen
	theme  Theme
	best   BestTimeFunc
}

func NewRenderer(screen tcell.Screen, theme Theme, best BestTimeFunc) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  theme,
		best:   best,
	}
}

func (renderer *Renderer) Draw(view game.View) error {
	screen := renderer.screen
	screen.SetStyle(renderer.theme.Text)
	screen.Clear()

	width, height := screen.Size()

	renderer.drawBox(0, 0, width, height, renderer.theme.Border)
	renderer.drawText((width-len(title))/2, 0, renderer.theme.Text, title)

	renderer.drawCentered(1, width, renderer.theme.Text, renderer.statusLine(view))
	renderer.drawBoard(view, (width-int(view.Width)*cellWidth)/2, boardTop)
	renderer.drawCentered(height-2, width, renderer.theme.Text,
		"q: Quit  f: Toggle flag  Enter: Select cell  wasd/arrows: Move")

	if view.AwaitingDifficulty() {
		renderer.drawBanner(view, width, height)
	}

	screen.Show()
	return nil
}

func (renderer *Renderer) statusLine(view game.View) string {
	status := fmt.Sprintf("# mines: %d - Time: %d", view.MinesLeft, int(view.Elapsed.Seconds()))
	if view.State == game.Startup {
		return status
	}

	status += " - " + view.Difficulty.String()
	if renderer.best != nil {
		if best, ok := renderer.best(view.Difficulty); ok {
			status += fmt.Sprintf(" - Best: %.1fs", best.Seconds())
		}
	}
	return status
}

func (renderer *Renderer) drawBoard(view game.View, left, top int) {
	theme := renderer.theme
	for idx, cell := range view.Cells {
		x := left + (idx%int(view.Width))*cellWidth
		y := top + idx/int(view.Width)

		if cell.Selected {
			renderer.screen.SetContent(x, y, '[', nil, theme.Cursor)
			renderer.screen.SetContent(x+2, y, ']', nil, theme.Cursor)
		}
		renderer.screen.SetContent(x+1, y, glyph(cell.State), nil, theme.cellStyle(cell.State))
	}
}

func (renderer *Renderer) drawBanner(view game.View, width, height int) {
	var heading string
	switch view.State {
	case game.GameOver:
		heading = "Game over"
	case game.Victory:
		heading = "Victory"
	default:
		heading = "Welcome"
	}

	lines := []string{heading, ""}
	for _, difficulty := range game.Difficulties {
		lines = append(lines, fmt.Sprintf("%c: %s", difficulty.String()[0], difficultyLabel(difficulty)))
	}

	bannerHeight := len(lines) + 2
	left, top := (width-bannerWidth)/2, (height-bannerHeight)/2

	for y := top; y < top+bannerHeight; y++ {
		for x := left; x < left+bannerWidth; x++ {
			renderer.screen.SetContent(x, y, ' ', nil, renderer.theme.Banner)
		}
	}
	renderer.drawBox(left, top, bannerWidth, bannerHeight, renderer.theme.Banner)

	for i, line := range lines {
		renderer.drawText(left+(bannerWidth-len(line))/2, top+1+i, renderer.theme.Banner, line)
	}
}

func difficultyLabel(difficulty game.Difficulty) string {
	name := difficulty.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

func (renderer *Renderer) drawBox(left, top, width, height int, style tcell.Style) {
	if width < 2 || height < 2 {
		return
	}
	right, bottom := left+width-1, top+height-1

	for x := left + 1; x < right; x++ {
		renderer.screen.SetContent(x, top, tcell.RuneHLine, nil, style)
		renderer.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		renderer.screen.SetContent(left, y, tcell.RuneVLine, nil, style)
		renderer.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	renderer.screen.SetContent(left, top, tcell.RuneULCorner, nil, style)
	renderer.screen.SetContent(right, top, tcell.RuneURCorner, nil, style)
	renderer.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	renderer.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

func (renderer *Renderer) drawCentered(y, width int, style tcell.Style, text string) {
	renderer.drawText((width-len(text))/2, y, style, text)
}

func (renderer *Renderer) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		renderer.screen.SetContent(x+i, y, r, nil, style)
	}
}
