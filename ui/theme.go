package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/they4kman/termsweep/config"
	"github.com/they4kman/termsweep/game"
	"golang.org/x/image/colornames"
)

type Theme struct {
	Text   tcell.Style
	Border tcell.Style
	Hidden tcell.Style
	Open   tcell.Style
	Flag   tcell.Style
	Mine   tcell.Style
	Cursor tcell.Style
	Banner tcell.Style

	Numbers [8]tcell.Style
}

// ResolveColor looks a colour up by its SVG name first, then falls back to
// tcell's names and #rrggbb notation
func ResolveColor(name string) (tcell.Color, error) {
	if c, ok := colornames.Map[strings.ToLower(name)]; ok {
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)), nil
	}
	if c := tcell.GetColor(name); c != tcell.ColorDefault {
		return c, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown colour %q", name)
}

func NewTheme(cfg config.Theme) (Theme, error) {
	var theme Theme

	background := tcell.ColorDefault
	if cfg.Background != "" {
		c, err := ResolveColor(cfg.Background)
		if err != nil {
			return theme, err
		}
		background = c
	}
	base := tcell.StyleDefault.Background(background)

	styled := func(name string) (tcell.Style, error) {
		if name == "" {
			return base, nil
		}
		c, err := ResolveColor(name)
		if err != nil {
			return base, err
		}
		return base.Foreground(c), nil
	}

	fields := []struct {
		style *tcell.Style
		name  string
	}{
		{&theme.Text, cfg.Text},
		{&theme.Border, cfg.Border},
		{&theme.Hidden, cfg.Hidden},
		{&theme.Open, cfg.Open},
		{&theme.Flag, cfg.Flag},
		{&theme.Mine, cfg.Mine},
		{&theme.Cursor, cfg.Cursor},
		{&theme.Banner, cfg.Banner},
	}
	for _, field := range fields {
		style, err := styled(field.name)
		if err != nil {
			return theme, err
		}
		*field.style = style
	}
	theme.Cursor = theme.Cursor.Bold(true)
	theme.Banner = theme.Banner.Bold(true)

	for i := range theme.Numbers {
		theme.Numbers[i] = theme.Open
		if i < len(cfg.Numbers) {
			style, err := styled(cfg.Numbers[i])
			if err != nil {
				return theme, err
			}
			theme.Numbers[i] = style
		}
	}

	return theme, nil
}

func (theme Theme) cellStyle(state game.CellState) tcell.Style {
	switch {
	case state >= game.Number1 && state <= game.Number8:
		return theme.Numbers[state-game.Number1]
	case state == game.Unrevealed:
		return theme.Hidden
	case state == game.Flag || state == game.FlagWrong:
		return theme.Flag
	case state == game.Mine || state == game.MineUnrevealed || state == game.MineLosing:
		return theme.Mine
	default:
		return theme.Open
	}
}

var cellGlyphs = map[game.CellState]rune{
	game.Unrevealed:     '#',
	game.Empty:          ' ',
	game.Number1:        '1',
	game.Number2:        '2',
	game.Number3:        '3',
	game.Number4:        '4',
	game.Number5:        '5',
	game.Number6:        '6',
	game.Number7:        '7',
	game.Number8:        '8',
	game.Flag:           'F',
	game.FlagWrong:      'X',
	game.Mine:           '*',
	game.MineUnrevealed: '*',
	game.MineLosing:     '@',
}

func glyph(state game.CellState) rune {
	if r, ok := cellGlyphs[state]; ok {
		return r
	}
	return '?'
}
