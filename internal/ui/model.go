package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amalg/bomb-arena/internal/game"
)

// holdWindow is how long a key press keeps a direction held. Terminals
// report presses only, so auto-repeat keeps re-arming the window.
const holdWindow = 180 * time.Millisecond

// stateUpdateMsg carries a new session state from the engine.
type stateUpdateMsg game.State

// releaseMsg ends a held direction unless the key was pressed again since.
type releaseMsg struct {
	dir game.Direction
	seq uint64
}

// Model is the Bubbletea model for the arena.
type Model struct {
	engine   *game.Engine
	feed     *Feed
	notifier *Notifier

	state      *game.State
	telemetry  *game.Telemetry
	outcome    *game.Outcome
	generation uint64
	holdSeq    [len(game.Directions)]uint64
	quitting   bool
}

// NewModel creates a TUI model driving the given engine.
func NewModel(engine *game.Engine) Model {
	n := NewNotifier()
	f := NewFeed(engine)
	engine.SetObserver(n)
	s := engine.Snapshot()
	return Model{
		engine:     engine,
		feed:       f,
		notifier:   n,
		state:      &s,
		generation: s.Generation,
	}
}

// Init starts listening for engine updates.
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForState(m.feed), waitForNotice(m.notifier))
}

// Update handles incoming messages (key presses, state updates, notices).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case releaseMsg:
		if msg.seq == m.holdSeq[msg.dir] {
			m.engine.EnqueueAction(game.Action{Type: game.ActionRelease, Dir: msg.dir})
		}
		return m, nil

	case stateUpdateMsg:
		s := game.State(msg)
		if m.accept(s.Generation) {
			m.state = &s
		}
		return m, waitForState(m.feed)

	case telemetryMsg:
		t := game.Telemetry(msg)
		if m.accept(t.Generation) {
			m.telemetry = &t
		}
		return m, waitForNotice(m.notifier)

	case outcomeMsg:
		o := game.Outcome(msg)
		if m.accept(o.Generation) {
			m.outcome = &o
		}
		return m, waitForNotice(m.notifier)
	}

	return m, nil
}

// accept reports whether a message belongs to the current session, moving
// the model forward when a newer session shows up.
func (m *Model) accept(generation uint64) bool {
	if generation < m.generation {
		return false
	}
	if generation > m.generation {
		m.generation = generation
		m.outcome = nil
		m.telemetry = nil
	}
	return true
}

// View renders the current session.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye! 👋\n"
	}

	board := RenderBoard(m.state, m.engine.Config.DeathDelay)
	hud := RenderHUD(m.telemetry, m.outcome)

	// Layout: board on the left, HUD on the right
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		board,
		"  ",
		hud,
	) + "\n"
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "up", "w":
		return m.hold(game.DirUp)
	case "down", "s":
		return m.hold(game.DirDown)
	case "left", "a":
		return m.hold(game.DirLeft)
	case "right", "d":
		return m.hold(game.DirRight)
	case " ":
		m.engine.EnqueueAction(game.Action{Type: game.ActionPlaceBomb, Dir: game.DirNone})
	case "r", "enter":
		if m.outcome != nil {
			m.engine.Restart()
		}
	}

	return m, nil
}

// hold presses a direction and schedules its release.
func (m Model) hold(d game.Direction) (tea.Model, tea.Cmd) {
	m.holdSeq[d]++
	seq := m.holdSeq[d]
	m.engine.EnqueueAction(game.Action{Type: game.ActionHold, Dir: d})
	return m, tea.Tick(holdWindow, func(time.Time) tea.Msg {
		return releaseMsg{dir: d, seq: seq}
	})
}
