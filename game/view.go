package game

import "time"

type CellView struct {
	State    CellState
	Selected bool
}

// View is a read-only snapshot of a session, handed to renderers and
// directors. Changing it has no effect on the game.
type View struct {
	Width, Height uint
	Cells         []CellView
	Selected      uint

	MinesLeft  int
	Elapsed    time.Duration
	State      State
	Difficulty Difficulty
}

func (view View) AwaitingDifficulty() bool {
	return view.State != Playing
}

func (view View) CellAt(x, y uint) (CellView, bool) {
	if x < view.Width && y < view.Height {
		return view.Cells[y*view.Width+x], true
	}
	return CellView{}, false
}

// Neighbors returns the indexes of the cells surrounding idx
func (view View) Neighbors(idx uint) []uint {
	x, y := int(idx%view.Width), int(idx/view.Width)
	neighbors := make([]uint, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if (dx == 0 && dy == 0) || nx < 0 || ny < 0 || nx >= int(view.Width) || ny >= int(view.Height) {
				continue
			}
			neighbors = append(neighbors, uint(ny)*view.Width+uint(nx))
		}
	}
	return neighbors
}
