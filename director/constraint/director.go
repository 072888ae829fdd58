package constraint

import (
	"github.com/sirupsen/logrus"
	"github.com/they4kman/termsweep/director/random"
	"github.com/they4kman/termsweep/game"
	"github.com/they4kman/termsweep/logging"
	"github.com/they4kman/termsweep/util/collections"
)

// Director looks at one numbered cell at a time. When a number is satisfied
// by the flags around it, the remaining hidden neighbors are safe; when it
// equals its flags plus hidden neighbors, those neighbors are all mines.
// With nothing to deduce it guesses like the random director.
type Director struct {
	fallback *random.Director
	pending  *action
}

type action struct {
	target uint
	event  game.Event
}

func New(seed int64) *Director {
	return &Director{fallback: random.New(seed)}
}

func (director *Director) Start(view game.View) {
	director.fallback.Start(view)
	director.pending = nil
}

func (director *Director) Act(view game.View) (game.Event, bool) {
	if director.pending == nil || !isHidden(view, director.pending.target) {
		director.pending = deduce(view)
	}
	if director.pending == nil {
		return director.fallback.Act(view)
	}

	pending := *director.pending
	if view.Selected == pending.target {
		director.pending = nil
		return pending.event, true
	}
	return random.Step(view, pending.target, pending.event), true
}

func isHidden(view game.View, idx uint) bool {
	return idx < uint(len(view.Cells)) && view.Cells[idx].State == game.Unrevealed
}

func deduce(view game.View) *action {
	for idx, cell := range view.Cells {
		if cell.State < game.Empty || cell.State > game.Number8 {
			continue
		}
		numMines := int(cell.State)

		hidden := collections.NewSet[uint]()
		numFlagged := 0
		for _, neighbor := range view.Neighbors(uint(idx)) {
			switch view.Cells[neighbor].State {
			case game.Unrevealed:
				hidden.Add(neighbor)
			case game.Flag:
				numFlagged++
			}
		}
		if hidden.Len() == 0 {
			continue
		}

		target := collections.Sorted(hidden)[0]
		switch {
		case numFlagged == numMines:
			logDeduction(idx, target, "safe")
			return &action{target: target, event: game.SelectEvent}
		case numFlagged+hidden.Len() == numMines:
			logDeduction(idx, target, "mine")
			return &action{target: target, event: game.FlagEvent}
		}
	}
	return nil
}

func logDeduction(origin int, target uint, kind string) {
	logging.Log.WithFields(logrus.Fields{
		"origin": origin,
		"target": target,
		"kind":   kind,
	}).Debug("director deduction")
}
