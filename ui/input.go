package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/they4kman/termsweep/game"
	"github.com/they4kman/termsweep/logging"
)

// InputListener is the producer side of the game loop: it polls the screen
// for key presses and forwards them as game events
type InputListener struct {
	screen tcell.Screen
}

func NewInputListener(screen tcell.Screen) *InputListener {
	return &InputListener{screen: screen}
}

// Listen blocks until the screen is finalised or ctx is done. A resize is
// forwarded as a tick so the loop redraws right away.
func (listener *InputListener) Listen(ctx context.Context, out chan<- game.Event) error {
	for {
		var event game.Event

		switch ev := listener.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			listener.screen.Sync()
			event = game.TickEvent
		case *tcell.EventKey:
			translated, ok := TranslateKey(ev)
			if !ok {
				continue
			}
			event = translated
		default:
			continue
		}

		logging.Log.WithField("event", event).Trace("input")

		select {
		case out <- event:
		case <-ctx.Done():
			return nil
		}
	}
}

var runeEvents = map[rune]game.Event{
	'w': game.NavigateEvent(game.Up),
	'a': game.NavigateEvent(game.Left),
	's': game.NavigateEvent(game.Down),
	'd': game.NavigateEvent(game.Right),
	' ': game.SelectEvent,
	'f': game.FlagEvent,
	'e': game.DifficultyEvent(game.Easy),
	'm': game.DifficultyEvent(game.Medium),
	'h': game.DifficultyEvent(game.Hard),
	'q': game.QuitEvent,
}

var keyEvents = map[tcell.Key]game.Event{
	tcell.KeyUp:     game.NavigateEvent(game.Up),
	tcell.KeyDown:   game.NavigateEvent(game.Down),
	tcell.KeyLeft:   game.NavigateEvent(game.Left),
	tcell.KeyRight:  game.NavigateEvent(game.Right),
	tcell.KeyEnter:  game.SelectEvent,
	tcell.KeyEscape: game.QuitEvent,
	tcell.KeyCtrlC:  game.QuitEvent,
}

func TranslateKey(ev *tcell.EventKey) (game.Event, bool) {
	if ev.Key() == tcell.KeyRune {
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return game.TickEvent, false
		}
		event, ok := runeEvents[ev.Rune()]
		return event, ok
	}

	event, ok := keyEvents[ev.Key()]
	return event, ok
}
