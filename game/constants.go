package game

import (
	"fmt"
	"strings"
)

type CellState int

const (
	Unrevealed CellState = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Flag
	FlagWrong
	Mine
	MineUnrevealed
	MineLosing
)

var CellStates = []CellState{
	Unrevealed,
	Empty,
	Number1,
	Number2,
	Number3,
	Number4,
	Number5,
	Number6,
	Number7,
	Number8,
	Flag,
	FlagWrong,
	Mine,
	MineUnrevealed,
	MineLosing,
}

// State of a game session, as seen by the controller
type State int

const (
	// Startup is the state before any game was played; like GameOver and
	// Victory it waits for a difficulty to be chosen.
	Startup State = iota
	Playing
	GameOver
	Victory
)

func (state State) String() string {
	switch state {
	case Startup:
		return "startup"
	case Playing:
		return "playing"
	case GameOver:
		return "game over"
	case Victory:
		return "victory"
	default:
		return fmt.Sprintf("State(%d)", int(state))
	}
}

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (direction Direction) String() string {
	switch direction {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(direction))
	}
}

// Params describe the shape of a board to generate
type Params struct {
	Width, Height uint
	NumMines      uint
}

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

var Difficulties = []Difficulty{Easy, Medium, Hard}

var difficultyParams = map[Difficulty]Params{
	Easy:   {Width: 9, Height: 9, NumMines: 10},
	Medium: {Width: 16, Height: 16, NumMines: 32},
	Hard:   {Width: 30, Height: 16, NumMines: 60},
}

func (difficulty Difficulty) Params() Params {
	return difficultyParams[difficulty]
}

func (difficulty Difficulty) String() string {
	switch difficulty {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(difficulty))
	}
}

func ParseDifficulty(name string) (Difficulty, error) {
	for _, difficulty := range Difficulties {
		if strings.EqualFold(name, difficulty.String()) {
			return difficulty, nil
		}
	}
	return Easy, fmt.Errorf("invalid difficulty %q", name)
}

// GameMode controls the behaviour of the first select of a game
type GameMode int

const (
	Classic GameMode = iota
	Win7
)

var GameModes = map[string]GameMode{
	"classic": Classic,
	"win7":    Win7,
}

func (mode GameMode) String() string {
	for name, m := range GameModes {
		if m == mode {
			return name
		}
	}
	return fmt.Sprint(int(mode))
}

func ParseGameMode(name string) (GameMode, error) {
	if mode, isValid := GameModes[strings.ToLower(name)]; isValid {
		return mode, nil
	}
	return Classic, fmt.Errorf("invalid game mode %q", name)
}
