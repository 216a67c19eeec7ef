package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"wordlist/internal/ui/input/types"
)

// EntryMode owns the draft field. Keys it does not claim are left for the
// handler to feed into the shared text input.
type EntryMode struct {
	keys      types.KeyMap
	textInput *textinput.Model
}

func NewEntryMode(keys types.KeyMap, ti *textinput.Model) *EntryMode {
	return &EntryMode{keys: keys, textInput: ti}
}

func (m *EntryMode) Name() string {
	return "entry"
}

func (m *EntryMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Focus()
		m.textInput.Prompt = "" // Prompt is handled in the UI layer
	}
	return nil
}

// Exit keeps the draft so switching focus back and forth does not lose it
func (m *EntryMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

func (m *EntryMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.FocusList):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case key.Matches(msg, m.keys.Submit):
		text := ""
		if m.textInput != nil {
			text = m.textInput.Value()
		}
		return []types.Action{types.SubmitDraftAction{Text: text}}, true
	}

	// Let the main handler update the text input
	return nil, false
}
