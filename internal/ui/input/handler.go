package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"wordlist/internal/ui/input/modes"
	"wordlist/internal/ui/input/types"
	"wordlist/internal/words"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Shared draft field
}

// New builds a handler that starts with the draft field focused
func New(keys types.KeyMap) *Handler {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = words.MaxLength

	h := &Handler{
		currentMode: types.ModeEntry,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode(keys)
	h.modes[types.ModeEntry] = modes.NewEntryMode(keys, h.textInput)
	h.modes[types.ModeConfirmClear] = modes.NewConfirmMode(keys)

	h.textInput.Focus()
	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	if !consumed && h.currentMode != types.ModeEntry {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.switchMode(changeMode.Mode, ctx)...)
			if h.currentMode == types.ModeEntry {
				cmd = textinput.Blink
			}
			// The model still needs to see mode changes to open or close overlays
			allActions = append(allActions, changeMode)
		} else {
			allActions = append(allActions, action)
		}
	}

	if h.currentMode == types.ModeEntry && !consumed {
		cmd = h.feedDraft(msg)
		// Every keystroke aimed at the field is reported, even a rejected one
		allActions = append(allActions, types.UpdateDraftAction{Text: h.textInput.Value()})
	}

	return allActions, cmd
}

// feedDraft passes msg to the text input after dropping anything that is not a letter
func (h *Handler) feedDraft(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeySpace:
		return nil
	case tea.KeyRunes:
		filtered := []rune(words.FilterLetters(string(msg.Runes)))
		if len(filtered) == 0 {
			return nil
		}
		msg.Runes = filtered
	}

	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

// ChangeMode changes the current input mode outside of key handling,
// e.g. when a mouse gesture opens the clear dialog
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) tea.Cmd {
	if mode == h.currentMode {
		return nil
	}
	h.switchMode(mode, ctx)
	if mode == types.ModeEntry {
		return textinput.Blink
	}
	return nil
}

// CurrentMode returns the current input mode
func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// TextInput returns the shared draft field
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// Draft returns the current draft text
func (h *Handler) Draft() string {
	return h.textInput.Value()
}

// ResetDraft empties the draft field after a successful add
func (h *Handler) ResetDraft() {
	h.textInput.Reset()
}

// Update handles non-keyboard messages for the text input (cursor blink)
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.currentMode != types.ModeEntry {
		return nil
	}
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

// Init returns the initial command for the handler
func (h *Handler) Init() tea.Cmd {
	if h.currentMode == types.ModeEntry {
		return textinput.Blink
	}
	return nil
}
