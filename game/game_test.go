package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClock struct {
	now time.Time
}

func (clock *testClock) Now() time.Time {
	return clock.now
}

func (clock *testClock) Advance(d time.Duration) {
	clock.now = clock.now.Add(d)
}

func newTestController(config GameConfig) (*Controller, *testClock) {
	clock := &testClock{now: time.Unix(1_000_000, 0)}
	config.Now = clock.Now
	if config.Seed == 0 {
		config.Seed = 42
	}
	return NewController(config), clock
}

func TestControllerStartup(t *testing.T) {
	controller, _ := newTestController(NewGameConfig())

	assert.Equal(t, Startup, controller.State())
	assert.True(t, controller.AwaitingDifficulty())
	assert.Equal(t, time.Duration(0), controller.Elapsed())

	for _, event := range []Event{NavigateEvent(Down), SelectEvent, FlagEvent, TickEvent} {
		assert.False(t, controller.Handle(event))
	}
	assert.Equal(t, Startup, controller.State())

	view := controller.View()
	assert.Equal(t, uint(0), view.Width)
	assert.Empty(t, view.Cells)
	assert.True(t, view.AwaitingDifficulty())
}

func TestControllerChooseDifficulty(t *testing.T) {
	for _, difficulty := range Difficulties {
		t.Run(difficulty.String(), func(t *testing.T) {
			controller, _ := newTestController(NewGameConfig())
			controller.Handle(DifficultyEvent(difficulty))

			params := difficulty.Params()
			view := controller.View()
			assert.Equal(t, Playing, view.State)
			assert.Equal(t, difficulty, view.Difficulty)
			assert.Equal(t, params.Width, view.Width)
			assert.Equal(t, params.Height, view.Height)
			assert.Len(t, view.Cells, int(params.Width*params.Height))
			assert.Equal(t, int(params.NumMines), view.MinesLeft)
			assert.True(t, view.Cells[0].Selected)
			assert.False(t, controller.AwaitingDifficulty())
		})
	}
}

func TestControllerRejectsDifficultyWhilePlaying(t *testing.T) {
	controller, _ := newTestController(NewGameConfig())
	controller.Handle(DifficultyEvent(Easy))
	board := controller.board
	controller.Handle(NavigateEvent(Right))

	controller.Handle(DifficultyEvent(Hard))

	assert.Same(t, board, controller.board)
	assert.Equal(t, Easy, controller.Difficulty())
	assert.Equal(t, uint(9), controller.View().Width)
	assert.Equal(t, uint(1), controller.View().Selected)
}

func TestControllerNavigateAndFlag(t *testing.T) {
	controller, _ := newTestController(NewGameConfig())
	controller.Handle(DifficultyEvent(Easy))

	controller.Handle(NavigateEvent(Down))
	controller.Handle(NavigateEvent(Right))
	controller.Handle(FlagEvent)

	view := controller.View()
	assert.Equal(t, uint(10), view.Selected)
	assert.Equal(t, Flag, view.Cells[10].State)
	assert.Equal(t, 9, view.MinesLeft)

	controller.Handle(FlagEvent)
	assert.Equal(t, 10, controller.View().MinesLeft)
}

func TestControllerSelectMine(t *testing.T) {
	var results []Result
	config := NewGameConfig()
	config.OnGameEnd = func(result Result) {
		results = append(results, result)
	}
	controller, clock := newTestController(config)
	controller.Handle(DifficultyEvent(Easy))

	mine := mineIndex(controller.board)
	controller.board.SelectIndex(mine)
	clock.Advance(5 * time.Second)
	assert.Equal(t, 5*time.Second, controller.Elapsed())

	controller.Handle(SelectEvent)

	assert.Equal(t, GameOver, controller.State())
	assert.True(t, controller.AwaitingDifficulty())
	require.Len(t, results, 1)
	assert.Equal(t, GameOver, results[0].State)
	assert.False(t, results[0].Won())
	assert.Equal(t, 5*time.Second, results[0].Elapsed)

	clock.Advance(10 * time.Second)
	assert.Equal(t, 5*time.Second, controller.Elapsed())

	view := controller.View()
	assert.Equal(t, MineLosing, view.Cells[mine].State)
	for idx, cell := range controller.board.Cells() {
		if cell.IsMine() && uint(idx) != mine {
			assert.Equal(t, MineUnrevealed, view.Cells[idx].State)
		}
	}

	// the board is frozen once the game is over
	controller.Handle(NavigateEvent(Right))
	controller.Handle(FlagEvent)
	controller.Handle(SelectEvent)
	assert.Equal(t, mine, controller.View().Selected)
	assert.Equal(t, 10, controller.View().MinesLeft)
	assert.Len(t, results, 1)
}

func TestControllerVictoryAndRestart(t *testing.T) {
	var results []Result
	config := NewGameConfig()
	config.Snapshot = &BoardSnapshot{SerializedBoard: "O#\n##"}
	config.OnGameEnd = func(result Result) {
		results = append(results, result)
	}
	controller, clock := newTestController(config)

	controller.Handle(DifficultyEvent(Easy))
	require.Equal(t, uint(2), controller.View().Width)

	controller.Handle(NavigateEvent(Right))
	controller.Handle(SelectEvent)
	assert.Equal(t, Playing, controller.State())
	controller.Handle(NavigateEvent(Down))
	controller.Handle(SelectEvent)
	assert.Equal(t, Playing, controller.State())
	controller.Handle(NavigateEvent(Left))
	clock.Advance(3 * time.Second)
	controller.Handle(SelectEvent)

	assert.Equal(t, Victory, controller.State())
	require.Len(t, results, 1)
	assert.True(t, results[0].Won())
	assert.True(t, results[0].FromSnapshot)
	assert.Equal(t, 3*time.Second, results[0].Elapsed)

	clock.Advance(time.Minute)
	controller.Handle(DifficultyEvent(Hard))

	assert.Equal(t, Playing, controller.State())
	assert.Equal(t, Hard, controller.Difficulty())
	assert.Equal(t, uint(30), controller.View().Width)
	assert.Equal(t, 60, controller.View().MinesLeft)
	assert.Equal(t, time.Duration(0), controller.Elapsed())

	mine := mineIndex(controller.board)
	controller.board.SelectIndex(mine)
	controller.Handle(SelectEvent)
	require.Len(t, results, 2)
	assert.False(t, results[1].FromSnapshot)
}

func TestControllerQuit(t *testing.T) {
	controller, _ := newTestController(NewGameConfig())
	assert.True(t, controller.Handle(QuitEvent))

	controller.Handle(DifficultyEvent(Medium))
	assert.True(t, controller.Handle(QuitEvent))
}

func TestControllerWin7FirstSelectIsSafe(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		config := NewGameConfig()
		config.Mode = Win7
		config.Seed = seed
		controller, _ := newTestController(config)
		controller.Handle(DifficultyEvent(Hard))

		controller.Handle(SelectEvent)

		assert.NotEqual(t, GameOver, controller.State(), "seed %d", seed)
		assert.Equal(t, Empty, controller.View().Cells[0].State, "seed %d", seed)
		assert.Equal(t, uint(60), countMines(controller.board))
	}
}

func TestControllerCascade(t *testing.T) {
	config := NewGameConfig()
	config.Mode = Win7
	config.Cascade = true
	controller, _ := newTestController(config)
	controller.Handle(DifficultyEvent(Easy))

	controller.Handle(SelectEvent)

	opened := 0
	for _, cell := range controller.View().Cells {
		if cell.State >= Empty && cell.State <= Number8 {
			opened++
		}
	}
	// the corner and its three neighbours at least
	assert.GreaterOrEqual(t, opened, 4)
}

type scriptedDirector struct {
	starts int
	events []Event
}

func (director *scriptedDirector) Start(view View) {
	director.starts++
}

func (director *scriptedDirector) Act(view View) (Event, bool) {
	if len(director.events) == 0 {
		return TickEvent, false
	}
	event := director.events[0]
	director.events = director.events[1:]
	return event, true
}

func TestControllerDirector(t *testing.T) {
	director := &scriptedDirector{
		events: []Event{NavigateEvent(Right), FlagEvent, DifficultyEvent(Hard), QuitEvent},
	}
	config := NewGameConfig()
	config.Director = director
	controller, _ := newTestController(config)

	controller.Handle(TickEvent)
	assert.Equal(t, 0, director.starts)
	assert.Len(t, director.events, 4)

	controller.Handle(DifficultyEvent(Easy))
	assert.Equal(t, 1, director.starts)

	for i := 0; i < 5; i++ {
		assert.False(t, controller.Handle(TickEvent))
	}

	view := controller.View()
	assert.Equal(t, uint(1), view.Selected)
	assert.Equal(t, Flag, view.Cells[1].State)
	assert.Equal(t, Easy, view.Difficulty)
	assert.Empty(t, director.events)
}
