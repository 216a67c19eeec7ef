package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"wordlist/internal/ui/input/types"
)

// NormalMode handles keys while the list has focus
type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case key.Matches(msg, m.keys.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case key.Matches(msg, m.keys.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case key.Matches(msg, m.keys.Start):
		return []types.Action{types.NavigateAction{Direction: "start"}}, true

	case key.Matches(msg, m.keys.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, m.keys.Delete):
		word := ctx.SelectedWord()
		if word == "" {
			return nil, true
		}
		return []types.Action{types.DeleteWordAction{Word: word}}, true

	case key.Matches(msg, m.keys.Sort):
		return []types.Action{types.ToggleSortAction{}}, true

	case key.Matches(msg, m.keys.ClearAll):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeConfirmClear}}, true

	case key.Matches(msg, m.keys.FocusDraft):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeEntry}}, true

	case key.Matches(msg, m.keys.Activity):
		return []types.Action{types.OpenActivityAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}
