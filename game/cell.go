package game

import "fmt"

// Cell is a single square of the board. Cells are plain data; only the
// Board mutates the cells it owns, and readers receive copies.
type Cell struct {
	x, y     uint
	idx      uint
	numMines uint8

	isMine, isOpen, isFlagged bool
	isSelected                bool
	isLosingMine              bool
}

func (cell Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.x, cell.y)
}

func (cell Cell) X() uint {
	return cell.x
}

func (cell Cell) Y() uint {
	return cell.y
}

func (cell Cell) Index() uint {
	return cell.idx
}

// AdjacentMines is the number of mines among the cell's neighbors. It is only
// meaningful for cells which are not mines themselves.
func (cell Cell) AdjacentMines() uint8 {
	return cell.numMines
}

func (cell Cell) IsMine() bool {
	return cell.isMine
}

func (cell Cell) IsOpen() bool {
	return cell.isOpen
}

func (cell Cell) IsFlagged() bool {
	return cell.isFlagged
}

func (cell Cell) IsSelected() bool {
	return cell.isSelected
}

// IsLosingMine reports whether this is the mine which ended the game
func (cell Cell) IsLosingMine() bool {
	return cell.isLosingMine
}

func (cell *Cell) Open() {
	if cell.isOpen {
		return
	}
	cell.isOpen = true
	cell.isFlagged = false
	if cell.isMine {
		cell.isLosingMine = true
	}
}

func (cell *Cell) ToggleFlag() {
	if cell.isOpen {
		return
	}
	cell.isFlagged = !cell.isFlagged
}

func (cell *Cell) SetSelected(isSelected bool) {
	cell.isSelected = isSelected
}

func (cell *Cell) IncrementAdjacency() {
	cell.numMines++
}

// State returns how the cell should be displayed. With reveal set (the game
// was lost) hidden mines and wrongly placed flags are uncovered.
func (cell Cell) State(reveal bool) CellState {
	switch {
	case cell.isOpen && cell.isMine:
		return MineLosing
	case cell.isOpen:
		return CellState(cell.numMines)
	case cell.isFlagged:
		if reveal && !cell.isMine {
			return FlagWrong
		}
		return Flag
	case reveal && cell.isMine:
		return MineUnrevealed
	default:
		return Unrevealed
	}
}

func (cell Cell) serialize() string {
	switch {
	case cell.isMine:
		switch {
		case cell.isOpen:
			return "*"
		case cell.isFlagged:
			return "F"
		default:
			return "O"
		}
	case cell.isFlagged:
		return "f"
	case cell.isOpen:
		return "."
	default:
		return "#"
	}
}

func (cell *Cell) deserialize(c rune, fresh bool) bool {
	switch c {
	case '*', 'F', 'O':
		cell.isMine = true
		if fresh {
			return true
		}

		switch c {
		case '*':
			cell.isOpen = true
			cell.isLosingMine = true
		case 'F':
			cell.isFlagged = true
		}
	case 'f':
		if !fresh {
			cell.isFlagged = true
		}
	case '.':
		if !fresh {
			cell.isOpen = true
		}
	case '#':
	default:
		return false
	}

	return true
}
