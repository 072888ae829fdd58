package game

import "fmt"

type EventKind int

const (
	EventTick EventKind = iota
	EventNavigate
	EventSelect
	EventToggleFlag
	EventChooseDifficulty
	EventQuit
)

// Event is a single discrete input handed to the Controller. Direction and
// Difficulty are only meaningful for the kinds carrying them.
type Event struct {
	Kind       EventKind
	Direction  Direction
	Difficulty Difficulty
}

var (
	TickEvent   = Event{Kind: EventTick}
	SelectEvent = Event{Kind: EventSelect}
	FlagEvent   = Event{Kind: EventToggleFlag}
	QuitEvent   = Event{Kind: EventQuit}
)

func NavigateEvent(direction Direction) Event {
	return Event{Kind: EventNavigate, Direction: direction}
}

func DifficultyEvent(difficulty Difficulty) Event {
	return Event{Kind: EventChooseDifficulty, Difficulty: difficulty}
}

func (event Event) String() string {
	switch event.Kind {
	case EventTick:
		return "tick"
	case EventNavigate:
		return "navigate " + event.Direction.String()
	case EventSelect:
		return "select"
	case EventToggleFlag:
		return "flag"
	case EventChooseDifficulty:
		return "difficulty " + event.Difficulty.String()
	case EventQuit:
		return "quit"
	default:
		return fmt.Sprintf("Event(%d)", int(event.Kind))
	}
}
