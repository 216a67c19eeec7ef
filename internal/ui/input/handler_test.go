package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordlist/internal/ui/input/types"
	"wordlist/internal/ui/logic"
)

func newContext(words ...string) *ModelContext {
	nav := logic.NewNavigator()
	nav.SetHeight(10)
	nav.SetCount(len(words))
	return &ModelContext{Words: words, Navigator: nav}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func hasAction[T types.Action](actions []types.Action) bool {
	for _, a := range actions {
		if _, ok := a.(T); ok {
			return true
		}
	}
	return false
}

func TestHandler_StartsInEntryMode(t *testing.T) {
	h := New(types.DefaultKeyMap())
	assert.Equal(t, types.ModeEntry, h.CurrentMode())
	assert.True(t, h.TextInput().Focused())
}

func TestHandler_FiltersNonLetters(t *testing.T) {
	h := New(types.DefaultKeyMap())
	ctx := newContext()

	actions, _ := h.HandleKey(runes("a1b"), ctx)
	assert.Equal(t, "ab", h.Draft())
	require.Len(t, actions, 1)
	assert.Equal(t, types.UpdateDraftAction{Text: "ab"}, actions[0])

	// a rejected keystroke still reports the draft
	actions, _ = h.HandleKey(runes("9"), ctx)
	assert.Equal(t, []types.Action{types.UpdateDraftAction{Text: "ab"}}, actions)
}

func TestHandler_SubmitKeepsEntryMode(t *testing.T) {
	h := New(types.DefaultKeyMap())
	ctx := newContext()
	h.HandleKey(runes("Mir"), ctx)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.SubmitDraftAction{Text: "Mir"}}, actions)
	assert.Equal(t, types.ModeEntry, h.CurrentMode())

	h.ResetDraft()
	assert.Empty(t, h.Draft())
}

func TestHandler_TabSwitchesFocusAndKeepsDraft(t *testing.T) {
	h := New(types.DefaultKeyMap())
	ctx := newContext("Sloboda")
	h.HandleKey(runes("ab"), ctx)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, ctx)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.True(t, hasAction[types.ChangeModeAction](actions))
	assert.False(t, h.TextInput().Focused())

	h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, ctx)
	assert.Equal(t, types.ModeEntry, h.CurrentMode())
	assert.Equal(t, "ab", h.Draft())
}

func TestHandler_NormalModeActions(t *testing.T) {
	h := New(types.DefaultKeyMap())
	ctx := newContext("Demokratija", "Sloboda")
	h.ChangeMode(types.ModeNormal, ctx)

	actions, _ := h.HandleKey(runes("d"), ctx)
	assert.Equal(t, []types.Action{types.DeleteWordAction{Word: "Demokratija"}}, actions)

	actions, _ = h.HandleKey(runes("s"), ctx)
	assert.Equal(t, []types.Action{types.ToggleSortAction{}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnd}, ctx)
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "end"}}, actions)

	// unknown keys are ignored outside the draft field
	actions, _ = h.HandleKey(runes("z"), ctx)
	assert.Empty(t, actions)
}

func TestHandler_DeleteOnEmptyListDoesNothing(t *testing.T) {
	h := New(types.DefaultKeyMap())
	ctx := newContext()
	h.ChangeMode(types.ModeNormal, ctx)

	actions, _ := h.HandleKey(runes("d"), ctx)
	assert.Empty(t, actions)
}

func TestHandler_ConfirmMode(t *testing.T) {
	h := New(types.DefaultKeyMap())
	ctx := newContext("Sloboda")
	h.ChangeMode(types.ModeNormal, ctx)

	h.HandleKey(runes("C"), ctx)
	require.Equal(t, types.ModeConfirmClear, h.CurrentMode())

	actions, _ := h.HandleKey(runes("q"), ctx)
	assert.Empty(t, actions, "dialog swallows other keys")

	actions, _ = h.HandleKey(runes("y"), ctx)
	assert.True(t, hasAction[types.ConfirmClearAction](actions))
	assert.Equal(t, types.ModeNormal, h.CurrentMode())

	h.HandleKey(runes("C"), ctx)
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.True(t, hasAction[types.CancelClearAction](actions))
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestHandler_CtrlCQuitsFromEveryMode(t *testing.T) {
	ctrlC := tea.KeyMsg{Type: tea.KeyCtrlC}
	for _, mode := range []types.Mode{types.ModeNormal, types.ModeEntry, types.ModeConfirmClear} {
		t.Run(mode.String(), func(t *testing.T) {
			h := New(types.DefaultKeyMap())
			ctx := newContext()
			h.ChangeMode(mode, ctx)

			actions, _ := h.HandleKey(ctrlC, ctx)
			assert.Equal(t, []types.Action{types.QuitAction{Force: true}}, actions)
		})
	}
}
