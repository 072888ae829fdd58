package game

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board"`
}

func (board *Board) Snapshot() *BoardSnapshot {
	var builder strings.Builder
	for y := uint(0); y < board.height; y++ {
		if y > 0 {
			builder.WriteByte('\n')
		}
		for x := uint(0); x < board.width; x++ {
			builder.WriteString(board.cells[board.IndexFromPos(x, y)].serialize())
		}
	}

	return &BoardSnapshot{
		Seed:            board.seed,
		SerializedBoard: builder.String(),
	}
}

func (snapshot *BoardSnapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func LoadSnapshotFile(path string) (*BoardSnapshot, error) {
	in, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	snapshot, err := LoadSnapshot(string(in))
	if err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	return snapshot, nil
}

// CreateBoard rebuilds the board described by the snapshot. With fresh set,
// only the mine layout is kept and every cell starts hidden and unflagged.
func (snapshot *BoardSnapshot) CreateBoard(fresh bool) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(snapshot.SerializedBoard), "\n")

	height := uint(len(rows))
	width := uint(len(rows[0]))
	if width == 0 {
		return nil, fmt.Errorf("empty board snapshot")
	}

	board := &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		seed:   snapshot.Seed,
		rand:   newRand(snapshot.Seed),
	}

	for y, row := range rows {
		if uint(len(row)) != width {
			return nil, fmt.Errorf("snapshot row %d has %d cells, expected %d", y, len(row), width)
		}

		for x, c := range row {
			idx := board.IndexFromPos(uint(x), uint(y))
			cell := &board.cells[idx]
			cell.x, cell.y, cell.idx = uint(x), uint(y), idx

			if !cell.deserialize(c, fresh) {
				return nil, fmt.Errorf("invalid cell %q at (%d, %d)", c, x, y)
			}
			if cell.isMine {
				board.numMines++
			}
			if cell.isFlagged {
				board.numFlags++
			}
		}
	}

	board.computeAdjacency()
	board.cells[0].SetSelected(true)

	return board, nil
}

func snapshotFilename(state State, t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))

	var stateStr string
	switch state {
	case Victory:
		stateStr = "win"
	case GameOver:
		stateStr = "loss"
	default:
		stateStr = "other"
	}
	filenameBuilder.WriteString(stateStr)

	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}

// SaveSnapshot writes the board of a finished game into dir, creating it when
// needed, and returns the written path.
func SaveSnapshot(dir string, board *Board, state State, t time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create snapshots dir: %w", err)
	}

	out, err := board.Snapshot().Serialize()
	if err != nil {
		return "", fmt.Errorf("serialize snapshot: %w", err)
	}

	path := filepath.Join(dir, snapshotFilename(state, t))
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return path, nil
}
