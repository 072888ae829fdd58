package random

import (
	"math/rand"

	"github.com/they4kman/termsweep/game"
)

// Director opens hidden cells in a random order, walking the cursor to each
// one a step per tick.
type Director struct {
	rand  *rand.Rand
	order []uint
}

func New(seed int64) *Director {
	return &Director{rand: rand.New(rand.NewSource(seed))}
}

func (director *Director) Start(view game.View) {
	director.order = make([]uint, len(view.Cells))
	for i := range director.order {
		director.order[i] = uint(i)
	}

	director.rand.Shuffle(len(director.order), func(i, j int) {
		director.order[i], director.order[j] = director.order[j], director.order[i]
	})
}

func (director *Director) Act(view game.View) (game.Event, bool) {
	for _, idx := range director.order {
		if idx < uint(len(view.Cells)) && view.Cells[idx].State == game.Unrevealed {
			return Step(view, idx, game.SelectEvent), true
		}
	}
	return game.TickEvent, false
}

// Step returns the move bringing the cursor one cell closer to target, or
// action once the cursor is there. Rows are travelled before columns.
func Step(view game.View, target uint, action game.Event) game.Event {
	cx, cy := view.Selected%view.Width, view.Selected/view.Width
	tx, ty := target%view.Width, target/view.Width

	switch {
	case ty < cy:
		return game.NavigateEvent(game.Up)
	case ty > cy:
		return game.NavigateEvent(game.Down)
	case tx < cx:
		return game.NavigateEvent(game.Left)
	case tx > cx:
		return game.NavigateEvent(game.Right)
	default:
		return action
	}
}
