package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mazewalk/internal/core"
)

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Forward     key.Binding
	Backward    key.Binding
	Left        key.Binding
	Right       key.Binding
	RunForward  key.Binding
	RunBackward key.Binding
	RunLeft     key.Binding
	RunRight    key.Binding
	Pause       key.Binding
	Restart     key.Binding
	Back        key.Binding
	Screenshot  key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Forward, k.RunForward, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Forward, k.Backward, k.Left, k.Right},
		{k.RunForward, k.RunBackward, k.RunLeft, k.RunRight},
		{k.Pause, k.Restart, k.Back, k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Forward:     key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "north")),
		Backward:    key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "south")),
		Left:        key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "west")),
		Right:       key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "east")),
		RunForward:  key.NewBinding(key.WithKeys("shift+up", "W"), key.WithHelp("shift", "run")),
		RunBackward: key.NewBinding(key.WithKeys("shift+down", "S"), key.WithHelp("S-↓/S", "run south")),
		RunLeft:     key.NewBinding(key.WithKeys("shift+left", "A"), key.WithHelp("S-←/A", "run west")),
		RunRight:    key.NewBinding(key.WithKeys("shift+right", "D"), key.WithHelp("S-→/D", "run east")),
		Pause:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Restart:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "new maze")),
		Back:        key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Screenshot:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings, for help views.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to actions. Run keys produce a
// direction plus ActionRun. The second result reports a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (actions []core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return []core.Action{core.ActionQuit}, true
	case key.Matches(msg, k.Forward):
		return []core.Action{core.ActionForward}, false
	case key.Matches(msg, k.Backward):
		return []core.Action{core.ActionBackward}, false
	case key.Matches(msg, k.Left):
		return []core.Action{core.ActionLeft}, false
	case key.Matches(msg, k.Right):
		return []core.Action{core.ActionRight}, false
	case key.Matches(msg, k.RunForward):
		return []core.Action{core.ActionForward, core.ActionRun}, false
	case key.Matches(msg, k.RunBackward):
		return []core.Action{core.ActionBackward, core.ActionRun}, false
	case key.Matches(msg, k.RunLeft):
		return []core.Action{core.ActionLeft, core.ActionRun}, false
	case key.Matches(msg, k.RunRight):
		return []core.Action{core.ActionRight, core.ActionRun}, false
	case key.Matches(msg, k.Pause):
		return []core.Action{core.ActionPause}, false
	case key.Matches(msg, k.Restart):
		return []core.Action{core.ActionRestart}, false
	case key.Matches(msg, k.Back):
		return []core.Action{core.ActionBack}, false
	}
	return nil, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	actions, isQuit := km.MapKey(msg)
	for _, a := range actions {
		frame.Set(a)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
