package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amalg/bomb-arena/internal/game"
)

// Feed buffers state copies published by the engine for the TUI.
type Feed struct {
	stateCh chan game.State
	mu      sync.Mutex
}

// NewFeed creates a feed and subscribes it to the engine's ticks.
func NewFeed(engine *game.Engine) *Feed {
	f := &Feed{stateCh: make(chan game.State, 10)}
	engine.OnTick(f.publish)
	return f
}

// StateChan returns the channel of state updates.
func (f *Feed) StateChan() <-chan game.State {
	return f.stateCh
}

// publish never blocks the engine. When the consumer is slow the oldest
// state is dropped, since the latest state matters most.
func (f *Feed) publish(s game.State) {
	f.mu.Lock()
	defer f.mu.Unlock()

	select {
	case f.stateCh <- s:
		return
	default:
	}
	select {
	case <-f.stateCh:
	default:
	}
	select {
	case f.stateCh <- s:
	default:
	}
}

// Notifier forwards engine observer calls to the TUI as messages.
type Notifier struct {
	msgs chan tea.Msg
}

// telemetryMsg carries a status panel update.
type telemetryMsg game.Telemetry

// outcomeMsg carries the end of a session.
type outcomeMsg game.Outcome

// NewNotifier creates an observer for the engine.
func NewNotifier() *Notifier {
	return &Notifier{msgs: make(chan tea.Msg, 64)}
}

// SessionStarted queues the telemetry of a new session.
func (n *Notifier) SessionStarted(t game.Telemetry) { n.push(telemetryMsg(t)) }

// TelemetryChanged queues a status panel update.
func (n *Notifier) TelemetryChanged(t game.Telemetry) { n.push(telemetryMsg(t)) }

// SessionEnded queues the outcome of a session.
func (n *Notifier) SessionEnded(o game.Outcome) { n.push(outcomeMsg(o)) }

// push never blocks the engine. A full queue drops the notice.
func (n *Notifier) push(msg tea.Msg) {
	select {
	case n.msgs <- msg:
	default:
	}
}

// waitForNotice returns a Cmd that waits for the next observer notification.
func waitForNotice(n *Notifier) tea.Cmd {
	return func() tea.Msg {
		return <-n.msgs
	}
}

// waitForState returns a Cmd that waits for the next state update from the engine.
func waitForState(f *Feed) tea.Cmd {
	return func() tea.Msg {
		return stateUpdateMsg(<-f.StateChan())
	}
}
