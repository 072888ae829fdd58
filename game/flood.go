package game

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/termsweep/util/collections"
)

// OpenEmptyRegion floods outward from an open cell with no adjacent mines,
// opening every connected empty cell and the numbered cells bordering them.
// Flagged cells and mines are never opened. Returns the number of cells
// opened.
func (board *Board) OpenEmptyRegion(idx uint) uint {
	if idx >= board.NumCells() {
		return 0
	}

	start := board.cells[idx]
	if !start.isOpen || start.isMine || start.numMines != 0 {
		return 0
	}

	visited := collections.NewSet(idx)

	var visitQueue deque.Deque[uint]
	visitQueue.PushBack(idx)

	opened := uint(0)
	for visitQueue.Len() > 0 {
		current := visitQueue.PopFront()

		board.eachNeighbor(current, func(neighbor *Cell) {
			if visited.Contains(neighbor.idx) || neighbor.isMine || neighbor.isFlagged {
				return
			}
			visited.Add(neighbor.idx)

			if !neighbor.isOpen {
				neighbor.Open()
				opened++
			}
			if neighbor.numMines == 0 {
				visitQueue.PushBack(neighbor.idx)
			}
		})
	}

	return opened
}
