package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "start", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Draft actions

// UpdateDraftAction is sent for every keystroke aimed at the draft field,
// including rejected ones
type UpdateDraftAction struct {
	Text string
}

func (a UpdateDraftAction) Type() string { return "update_draft" }

type SubmitDraftAction struct {
	Text string
}

func (a SubmitDraftAction) Type() string { return "submit_draft" }

// Word list actions
type DeleteWordAction struct {
	Word string
}

func (a DeleteWordAction) Type() string { return "delete_word" }

type ToggleSortAction struct{}

func (a ToggleSortAction) Type() string { return "toggle_sort" }

type ConfirmClearAction struct{}

func (a ConfirmClearAction) Type() string { return "confirm_clear" }

type CancelClearAction struct{}

func (a CancelClearAction) Type() string { return "cancel_clear" }

// UI actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type OpenActivityAction struct{}

func (a OpenActivityAction) Type() string { return "open_activity" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
