package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"wordlist/internal/ui/input/types"
)

// ConfirmMode handles the clear-all dialog
type ConfirmMode struct {
	keys types.KeyMap
}

func NewConfirmMode(keys types.KeyMap) *ConfirmMode {
	return &ConfirmMode{keys: keys}
}

func (m *ConfirmMode) Name() string {
	return "confirm-clear"
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Confirm):
		return []types.Action{
			types.ConfirmClearAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case key.Matches(msg, m.keys.Cancel):
		return []types.Action{
			types.CancelClearAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	// The dialog is modal: swallow everything else
	return nil, true
}
