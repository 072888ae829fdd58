package game

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/termsweep/logging"
)

const DefaultTickInterval = 300 * time.Millisecond

type GameConfig struct {
	Mode GameMode

	// Open connected empty cells after selecting a cell with no adjacent mines
	Cascade bool

	// Seed for mine layouts; zero picks one from the clock
	Seed int64

	// Snapshot to load the next board from, instead of generating one
	Snapshot *BoardSnapshot

	Director Director

	// How long the game loop waits for input before ticking
	TickInterval time.Duration

	// Called once for every game which ends in victory or defeat
	OnGameEnd func(Result)

	// Clock, replaceable in tests
	Now func() time.Time
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Mode:         Classic,
		Cascade:      false,
		Director:     nil,
		Snapshot:     nil,
		TickInterval: DefaultTickInterval,
		Now:          time.Now,
	}
}

// Result describes a finished game
type Result struct {
	Difficulty Difficulty
	State      State
	Elapsed    time.Duration
	EndedAt    time.Time
	Board      *Board

	// The board came from a snapshot rather than the chosen difficulty, so
	// Difficulty says nothing about its size
	FromSnapshot bool
}

func (result Result) Won() bool {
	return result.State == Victory
}

// Controller owns the board and the session state around it. It is driven by
// one event at a time and is not safe for concurrent use.
type Controller struct {
	config GameConfig
	rand   *rand.Rand

	board      *Board
	state      State
	difficulty Difficulty

	startTime, endTime time.Time
	hasSelected        bool
	fromSnapshot       bool
}

func NewController(config GameConfig) *Controller {
	if config.Now == nil {
		config.Now = time.Now
	}
	if config.TickInterval <= 0 {
		config.TickInterval = DefaultTickInterval
	}

	seed := config.Seed
	if seed == 0 {
		seed = config.Now().UnixNano()
	}

	return &Controller{
		config: config,
		rand:   newRand(seed),
		state:  Startup,
	}
}

func (controller *Controller) State() State {
	return controller.state
}

func (controller *Controller) Difficulty() Difficulty {
	return controller.difficulty
}

// AwaitingDifficulty is true at startup and after a game has ended
func (controller *Controller) AwaitingDifficulty() bool {
	return controller.state != Playing
}

func (controller *Controller) Elapsed() time.Duration {
	switch controller.state {
	case Playing:
		return controller.config.Now().Sub(controller.startTime)
	case GameOver, Victory:
		return controller.endTime.Sub(controller.startTime)
	default:
		return 0
	}
}

// Handle applies a single event and reports whether the game should quit.
// Events which are not legal in the current state are ignored.
func (controller *Controller) Handle(event Event) bool {
	switch event.Kind {
	case EventQuit:
		logging.Log.Debug("quit requested")
		return true
	case EventTick:
		controller.tick()
	case EventChooseDifficulty:
		if controller.AwaitingDifficulty() {
			controller.newGame(event.Difficulty)
		}
	default:
		controller.play(event)
	}
	return false
}

func (controller *Controller) play(event Event) {
	if controller.state != Playing || controller.board == nil {
		return
	}

	switch event.Kind {
	case EventNavigate:
		controller.board.MoveCursor(event.Direction)
	case EventToggleFlag:
		controller.board.ToggleCursorFlag()
	case EventSelect:
		controller.selectCell()
	}
}

func (controller *Controller) tick() {
	director := controller.config.Director
	if director == nil || controller.state != Playing {
		return
	}

	event, ok := director.Act(controller.View())
	if !ok {
		return
	}
	switch event.Kind {
	case EventNavigate, EventSelect, EventToggleFlag:
		controller.play(event)
	}
}

func (controller *Controller) selectCell() {
	board := controller.board
	cell := board.cells[board.selected]
	if cell.isOpen || cell.isFlagged {
		return
	}

	if !controller.hasSelected && controller.config.Mode == Win7 {
		board.ClearAround(board.selected)
	}
	controller.hasSelected = true

	if board.SelectCursorCell() {
		controller.end(GameOver)
		return
	}

	if controller.config.Cascade {
		board.OpenEmptyRegion(board.selected)
	}

	if board.AllSafeCellsOpen() {
		controller.end(Victory)
	}
}

func (controller *Controller) newGame(difficulty Difficulty) {
	var board *Board
	fromSnapshot := false

	if snapshot := controller.config.Snapshot; snapshot != nil {
		// A snapshot is only played once
		controller.config.Snapshot = nil

		loaded, err := snapshot.CreateBoard(true)
		if err != nil {
			logging.Log.WithError(err).Warn("unable to load board snapshot")
		} else {
			board = loaded
			fromSnapshot = true
		}
	}
	if board == nil {
		board = NewBoard(difficulty.Params(), controller.rand.Int63())
	}

	controller.board = board
	controller.difficulty = difficulty
	controller.state = Playing
	controller.hasSelected = false
	controller.fromSnapshot = fromSnapshot
	controller.startTime = controller.config.Now()
	controller.endTime = time.Time{}

	logging.Log.WithFields(logrus.Fields{
		"difficulty": difficulty,
		"seed":       board.Seed(),
		"snapshot":   fromSnapshot,
	}).Info("new game")

	if controller.config.Director != nil {
		controller.config.Director.Start(controller.View())
	}
}

func (controller *Controller) end(state State) {
	controller.state = state
	controller.endTime = controller.config.Now()

	result := Result{
		Difficulty: controller.difficulty,
		State:      state,
		Elapsed:    controller.Elapsed(),
		EndedAt:    controller.endTime,
		Board:      controller.board,

		FromSnapshot: controller.fromSnapshot,
	}

	logging.Log.WithFields(logrus.Fields{
		"difficulty": result.Difficulty,
		"state":      state,
		"elapsed":    result.Elapsed,
	}).Info("game ended")

	if controller.config.OnGameEnd != nil {
		controller.config.OnGameEnd(result)
	}
}

// View snapshots the session for rendering
func (controller *Controller) View() View {
	view := View{
		State:      controller.state,
		Difficulty: controller.difficulty,
		Elapsed:    controller.Elapsed(),
	}

	board := controller.board
	if board == nil {
		return view
	}

	reveal := controller.state == GameOver
	view.Width, view.Height = board.width, board.height
	view.Selected = board.selected
	view.MinesLeft = board.MinesLeft()
	view.Cells = make([]CellView, len(board.cells))
	for idx, cell := range board.cells {
		view.Cells[idx] = CellView{
			State:    cell.State(reveal),
			Selected: cell.isSelected,
		}
	}
	return view
}
