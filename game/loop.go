package game

import (
	"context"
	"fmt"
	"time"
)

type Renderer interface {
	Draw(view View) error
}

// Run is the game loop. It renders, waits for one event (or a tick once the
// tick interval passes without input) and handles it, until a quit event
// arrives, the events channel closes or ctx is done.
func (controller *Controller) Run(ctx context.Context, events <-chan Event, renderer Renderer) error {
	interval := controller.config.TickInterval
	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		if err := renderer.Draw(controller.View()); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		var event Event
		select {
		case <-ctx.Done():
			return nil
		case received, ok := <-events:
			if !ok {
				return nil
			}
			event = received
		case <-timer.C:
			event = TickEvent
		}

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(interval)

		if controller.Handle(event) {
			return nil
		}
	}
}
