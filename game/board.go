package game

import (
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/termsweep/logging"
	"github.com/they4kman/termsweep/util/collections"
)

type Board struct {
	width, height uint // in number of cells
	numMines      uint
	numFlags      uint
	cells         []Cell

	// index of the cursor cell
	selected uint

	seed int64
	rand *rand.Rand
}

// NewBoard creates a board and generates its mine layout. The same params and
// seed always produce the same layout.
func NewBoard(params Params, seed int64) *Board {
	board := &Board{}
	board.Generate(params, seed)
	return board
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func (board *Board) Width() uint {
	return board.width
}

func (board *Board) Height() uint {
	return board.height
}

func (board *Board) NumCells() uint {
	return uint(len(board.cells))
}

func (board *Board) NumMines() uint {
	return board.numMines
}

func (board *Board) NumFlags() uint {
	return board.numFlags
}

// MinesLeft is the number of mines minus the number of placed flags. It goes
// negative when more flags than mines are placed.
func (board *Board) MinesLeft() int {
	return int(board.numMines) - int(board.numFlags)
}

func (board *Board) Selected() uint {
	return board.selected
}

func (board *Board) Seed() int64 {
	return board.seed
}

func (board *Board) IsGenerated() bool {
	return len(board.cells) > 0
}

func (board *Board) PosFromIndex(idx uint) (x, y uint) {
	return idx % board.width, idx / board.width
}

func (board *Board) IndexFromPos(x, y uint) uint {
	return y*board.width + x
}

func (board *Board) CellAt(x, y uint) (Cell, bool) {
	if x < board.width && y < board.height {
		return board.cells[board.IndexFromPos(x, y)], true
	}
	return Cell{}, false
}

// Cells returns a copy of all cells in row-major order
func (board *Board) Cells() []Cell {
	cells := make([]Cell, len(board.cells))
	copy(cells, board.cells)
	return cells
}

// Neighbors returns the indexes of the up to 8 cells surrounding idx
func (board *Board) Neighbors(idx uint) []uint {
	neighbors := make([]uint, 0, 8)
	board.eachNeighbor(idx, func(neighbor *Cell) {
		neighbors = append(neighbors, neighbor.idx)
	})
	return neighbors
}

func (board *Board) eachNeighbor(idx uint, visit func(*Cell)) {
	x, y := board.PosFromIndex(idx)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}

			nx, ny := int(x)+dx, int(y)+dy
			if nx < 0 || ny < 0 || nx >= int(board.width) || ny >= int(board.height) {
				continue
			}
			visit(&board.cells[board.IndexFromPos(uint(nx), uint(ny))])
		}
	}
}

// Generate discards all cells and lays out a fresh board. Dimensions are at
// least 1 and the mine count is clamped to the number of cells.
func (board *Board) Generate(params Params, seed int64) {
	width, height := max(params.Width, 1), max(params.Height, 1)
	numCells := width * height
	numMines := min(params.NumMines, numCells)

	board.width, board.height = width, height
	board.numMines = numMines
	board.numFlags = 0
	board.seed = seed
	board.rand = newRand(seed)

	board.cells = make([]Cell, numCells)
	cellIndexes := make([]uint, numCells)
	for idx := range board.cells {
		x, y := board.PosFromIndex(uint(idx))
		board.cells[idx] = Cell{x: x, y: y, idx: uint(idx)}
		cellIndexes[idx] = uint(idx)
	}

	// Partial Fisher-Yates shuffle: the first numMines indexes become mines
	for i := uint(0); i < numMines; i++ {
		j := i + uint(board.rand.Int63n(int64(numCells-i)))
		cellIndexes[i], cellIndexes[j] = cellIndexes[j], cellIndexes[i]
		board.cells[cellIndexes[i]].isMine = true
	}

	board.computeAdjacency()

	board.selected = 0
	board.cells[0].SetSelected(true)

	logging.Log.WithFields(logrus.Fields{
		"width":  width,
		"height": height,
		"mines":  numMines,
		"seed":   seed,
	}).Debug("board generated")
}

func (board *Board) computeAdjacency() {
	for idx := range board.cells {
		board.cells[idx].numMines = 0
	}
	for idx := range board.cells {
		if board.cells[idx].isMine {
			board.eachNeighbor(uint(idx), func(neighbor *Cell) {
				neighbor.IncrementAdjacency()
			})
		}
	}
}

// MoveCursor moves the selection one cell in the given direction. Moves which
// would leave the board, including past the left or right edge of a row, are
// rejected and leave the cursor in place.
func (board *Board) MoveCursor(direction Direction) bool {
	if !board.IsGenerated() {
		return false
	}

	x, y := board.PosFromIndex(board.selected)
	var target uint
	switch direction {
	case Up:
		if y == 0 {
			return false
		}
		target = board.selected - board.width
	case Down:
		if y+1 >= board.height {
			return false
		}
		target = board.selected + board.width
	case Left:
		if x == 0 {
			return false
		}
		target = board.selected - 1
	case Right:
		if x+1 >= board.width {
			return false
		}
		target = board.selected + 1
	default:
		return false
	}

	board.selectIndex(target)
	return true
}

// SelectIndex moves the cursor straight to idx
func (board *Board) SelectIndex(idx uint) bool {
	if idx >= board.NumCells() {
		return false
	}
	board.selectIndex(idx)
	return true
}

func (board *Board) selectIndex(idx uint) {
	board.cells[board.selected].SetSelected(false)
	board.cells[idx].SetSelected(true)
	board.selected = idx
}

// SelectCursorCell opens the cursor cell and reports whether it was a mine.
// Open and flagged cells are left alone.
func (board *Board) SelectCursorCell() bool {
	if !board.IsGenerated() {
		return false
	}

	cell := &board.cells[board.selected]
	if cell.isOpen || cell.isFlagged {
		return false
	}

	cell.Open()
	return cell.isMine
}

func (board *Board) IsSelectedCellMine() bool {
	if !board.IsGenerated() {
		return false
	}
	return board.cells[board.selected].isMine
}

// ToggleCursorFlag flags or unflags the cursor cell, keeping the flag count
// in step. Open cells cannot be flagged.
func (board *Board) ToggleCursorFlag() bool {
	if !board.IsGenerated() {
		return false
	}

	cell := &board.cells[board.selected]
	if cell.isOpen {
		return false
	}

	cell.ToggleFlag()
	if cell.isFlagged {
		board.numFlags++
	} else {
		board.numFlags--
	}
	return true
}

func (board *Board) AllSafeCellsOpen() bool {
	if !board.IsGenerated() {
		return false
	}
	for _, cell := range board.cells {
		if !cell.isMine && !cell.isOpen {
			return false
		}
	}
	return true
}

// ClearAround moves every mine in the 3x3 block centred on idx to random
// cells outside of it, so that opening idx is safe and reveals no count.
// The mine count is preserved; when there isn't enough room outside the
// block, the remaining mines stay where they are.
func (board *Board) ClearAround(idx uint) {
	if idx >= board.NumCells() {
		return
	}

	block := append([]uint{idx}, board.Neighbors(idx)...)
	inBlock := collections.NewSet(block...)

	displaced := make([]uint, 0, len(block))
	for _, i := range block {
		if board.cells[i].isMine {
			displaced = append(displaced, i)
		}
	}
	if len(displaced) == 0 {
		return
	}

	candidates := make([]uint, 0, len(board.cells))
	for i, cell := range board.cells {
		if !cell.isMine && !inBlock.Contains(uint(i)) {
			candidates = append(candidates, uint(i))
		}
	}
	board.rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	moved := 0
	for i, from := range displaced {
		if i >= len(candidates) {
			break
		}
		board.cells[from].isMine = false
		board.cells[candidates[i]].isMine = true
		moved++
	}

	board.computeAdjacency()

	logging.Log.WithFields(logrus.Fields{
		"index": idx,
		"moved": moved,
	}).Debug("cleared mines around first selection")
}
