package runtime

import (
	"time"

	"github.com/odvcencio/textmode/pkg/ui/terminal"
)

// Message is anything the event loop consumes. Messages come from the
// backend, the tick timer, or other goroutines through Post and Do.
type Message interface {
	isMessage()
}

// EventMsg carries a raw backend event.
type EventMsg struct {
	Event terminal.Event
}

func (EventMsg) isMessage() {}

// TickMsg is sent on each tick when AppConfig.TickRate is set.
type TickMsg struct {
	Time time.Time
}

func (TickMsg) isMessage() {}

// commandMsg wraps a Command posted with Do.
type commandMsg struct {
	cmd Command
}

func (commandMsg) isMessage() {}

// wakeMsg only interrupts the select loop.
type wakeMsg struct{}

func (wakeMsg) isMessage() {}
