package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dukaforge/stockroom/pkg/types"
)

// Navigator is the root Bubble Tea model. It holds the stack of active
// screens, drives the top one each cycle, and applies the transition it
// returns. The store handle is owned here and passed down by reference into
// every screen call; its lifetime is one run.
type Navigator struct {
	stack   []Screen
	store   types.Store
	log     *zap.Logger
	session string

	width  int
	height int

	last Transition
}

// Compile-time interface check: Navigator must implement tea.Model.
var _ tea.Model = (*Navigator)(nil)

// New builds a navigator with the top menu as the entry screen. A nil logger
// is replaced with a no-op one.
func New(store types.Store, log *zap.Logger) *Navigator {
	if log == nil {
		log = zap.NewNop()
	}
	n := &Navigator{
		store:   store,
		log:     log,
		session: uuid.NewString(),
	}
	top := newTopMenu()
	top.Refresh(store)
	n.stack = append(n.stack, top)
	n.log.Info("session started", zap.String("session", n.session))
	return n
}

// Init implements tea.Model.
func (n *Navigator) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model. One key event drives one cycle of the top
// screen; the requested transition then mutates the stack. Popping the last
// screen ends the program.
func (n *Navigator) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		n.width = msg.Width
		n.height = msg.Height

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			n.log.Info("session interrupted", zap.String("session", n.session))
			return n, tea.Quit
		}
		n.last = n.top().HandleKey(msg, n.store)
		n.apply(n.last)
		if len(n.stack) == 0 {
			n.log.Info("session ended", zap.String("session", n.session))
			return n, tea.Quit
		}
	}
	return n, nil
}

// View implements tea.Model, rendering the top screen only. Screens below
// the top stay frozen until they are revealed again.
func (n *Navigator) View() string {
	if len(n.stack) == 0 {
		return ""
	}
	return n.top().View(n.width, n.height)
}

// apply mutates the stack for a single transition. After any mutation that
// leaves the stack non-empty, the new top is refreshed exactly once so it
// draws current data on the next cycle.
func (n *Navigator) apply(t Transition) {
	switch t.Action {
	case ActionPush:
		s := newScreen(t)
		n.stack = append(n.stack, s)
		s.Refresh(n.store)
		n.log.Info("screen pushed",
			zap.Stringer("screen", t.Target),
			zap.Int("depth", len(n.stack)),
			zap.String("session", n.session))

	case ActionExit:
		n.stack = n.stack[:len(n.stack)-1]
		if len(n.stack) > 0 {
			n.top().Refresh(n.store)
		}
		n.log.Info("screen popped",
			zap.Int("depth", len(n.stack)),
			zap.String("session", n.session))
	}
}

func (n *Navigator) top() Screen {
	return n.stack[len(n.stack)-1]
}

// Depth reports the number of screens on the stack.
func (n *Navigator) Depth() int {
	return len(n.stack)
}

// Top returns the active screen, or nil once the stack has emptied.
func (n *Navigator) Top() Screen {
	if len(n.stack) == 0 {
		return nil
	}
	return n.top()
}

// LastTransition reports the outcome of the most recent input cycle without
// driving another one.
func (n *Navigator) LastTransition() Transition {
	return n.last
}
