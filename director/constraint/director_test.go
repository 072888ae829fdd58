package constraint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/termsweep/game"
)

func lineView(selected uint, states ...game.CellState) game.View {
	view := game.View{
		Width:    uint(len(states)),
		Height:   1,
		Selected: selected,
	}
	for i, state := range states {
		view.Cells = append(view.Cells, game.CellView{State: state, Selected: uint(i) == selected})
	}
	return view
}

func TestFlagsForcedMine(t *testing.T) {
	director := New(1)
	view := lineView(0, game.Number1, game.Unrevealed, game.Number1, game.Unrevealed)
	director.Start(view)

	event, ok := director.Act(view)
	require.True(t, ok)
	assert.Equal(t, game.NavigateEvent(game.Right), event)

	view = lineView(1, game.Number1, game.Unrevealed, game.Number1, game.Unrevealed)
	event, ok = director.Act(view)
	require.True(t, ok)
	assert.Equal(t, game.FlagEvent, event)
}

func TestOpensSatisfiedNeighbors(t *testing.T) {
	director := New(1)
	view := lineView(1, game.Number1, game.Flag, game.Number1, game.Unrevealed)
	director.Start(view)

	event, ok := director.Act(view)
	require.True(t, ok)
	assert.Equal(t, game.NavigateEvent(game.Right), event)

	view = lineView(2, game.Number1, game.Flag, game.Number1, game.Unrevealed)
	event, ok = director.Act(view)
	require.True(t, ok)
	assert.Equal(t, game.NavigateEvent(game.Right), event)

	view = lineView(3, game.Number1, game.Flag, game.Number1, game.Unrevealed)
	event, ok = director.Act(view)
	require.True(t, ok)
	assert.Equal(t, game.SelectEvent, event)
}

func TestFallsBackToRandom(t *testing.T) {
	director := New(1)
	view := lineView(0, game.Unrevealed, game.Unrevealed)
	director.Start(view)

	_, ok := director.Act(view)
	assert.True(t, ok)
}

func TestDirectorFinishesGames(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		config := game.NewGameConfig()
		config.Seed = seed
		config.Mode = game.Win7
		config.Director = New(seed)
		config.Now = func() time.Time { return time.Unix(0, 0) }
		controller := game.NewController(config)
		controller.Handle(game.DifficultyEvent(game.Easy))

		for i := 0; i < 81*40 && controller.State() == game.Playing; i++ {
			controller.Handle(game.TickEvent)
		}
		assert.Contains(t, []game.State{game.GameOver, game.Victory}, controller.State(), "seed %d", seed)
	}
}
