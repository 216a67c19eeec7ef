package ui

import (
	"errors"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"wordlist/internal/config"
	"wordlist/internal/domain"
	"wordlist/internal/eventbus"
	"wordlist/internal/journal"
	"wordlist/internal/locale"
	"wordlist/internal/ui/input"
	inputtypes "wordlist/internal/ui/input/types"
	"wordlist/internal/ui/logic"
	"wordlist/internal/ui/views"
	"wordlist/internal/words"
)

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	catalog locale.Catalog
	store   words.Store
	journal *journal.Journal

	width     int
	height    int
	keys      inputtypes.KeyMap
	help      help.Model
	direction domain.SortDirection
	showHelp  bool

	errorMessage   string
	notification   string
	notificationID int

	// long press on "Go to start"
	pressing bool
	pressID  int

	inPagerMode bool // tracks if we're currently in pager mode

	navigator    *logic.Navigator
	renderer     *views.Renderer
	inputHandler *input.Handler
	pager        *Pager

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model over store. The store is sorted
// ascending right away so the first frame already shows sorted words.
func NewModel(bus eventbus.EventBus, cfg *config.Config, catalog locale.Catalog, store words.Store, j *journal.Journal) *Model {
	keys := inputtypes.DefaultKeyMap()

	m := &Model{
		bus:          bus,
		config:       cfg,
		catalog:      catalog,
		store:        store,
		journal:      j,
		keys:         keys,
		help:         help.New(),
		direction:    domain.Ascending,
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(keys),
		pager:        NewPager(),
	}
	ti := m.inputHandler.TextInput()
	ti.Placeholder = catalog.Placeholder
	ti.PlaceholderStyle = m.renderer.Styles().Dim

	m.store.Sort(m.direction.IsAscending())
	m.navigator.SetCount(m.store.Len())
	m.updateViewportHeight()
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.inputHandler.Init()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width - 4
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			return m, m.handleHelpKey(msg)
		}

		actions, cmd := m.inputHandler.HandleKey(msg, m.context())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		if !m.config.UISettings.Mouse {
			return m, nil
		}
		return m, m.handleMouse(msg)

	default:
		if cmd, handled := m.handleNonKeyboardMsg(msg); handled {
			return m, cmd
		}
		// Cursor blink and friends belong to the text input
		return m, m.inputHandler.Update(msg)
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case longPressMsg:
		if !m.pressing || msg.id != m.pressID {
			return nil, true
		}
		m.pressing = false
		log.Printf("Long press on %q, asking to clear %d words", m.catalog.GoToStart, m.store.Len())
		return m.inputHandler.ChangeMode(inputtypes.ModeConfirmClear, m.context()), true

	case notificationExpiredMsg:
		if msg.id == m.notificationID {
			m.notification = ""
		}
		return nil, true

	case activityClosedMsg:
		if msg.err != nil {
			log.Printf("Activity pager failed: %v", msg.err)
			m.publish(eventbus.ErrorEvent{Message: "activity pager failed", Err: msg.err})
		}
		return nil, true

	case pauseRenderingMsg:
		m.inPagerMode = true
		return nil, true

	case resumeRenderingMsg:
		m.inPagerMode = false
		return nil, true
	}
	return nil, false
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	// ov owns the screen until the pager exits
	if m.inPagerMode {
		return ""
	}
	return m.renderer.Render(m.viewState())
}

func (m *Model) viewState() views.ViewState {
	start, end, hasAbove, hasBelow := m.navigator.Window()
	mode := m.inputHandler.CurrentMode()
	ti := m.inputHandler.TextInput()

	var shortHelp []key.Binding
	switch mode {
	case inputtypes.ModeEntry:
		shortHelp = m.keys.EntryHelp()
	case inputtypes.ModeConfirmClear:
		shortHelp = m.keys.ConfirmHelp()
	default:
		shortHelp = m.keys.ShortHelp()
	}

	return views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Catalog:       m.catalog,
		Direction:     m.direction,
		Words:         m.store.List(),
		SelectedIndex: m.navigator.Selected(),
		WindowStart:   start,
		WindowEnd:     end,
		HasAbove:      hasAbove,
		HasBelow:      hasBelow,
		ListFocused:   mode == inputtypes.ModeNormal,
		DraftView:     ti.View(),
		DraftLength:   words.Length(ti.Value()),
		DraftFocused:  mode == inputtypes.ModeEntry,
		ErrorMessage:  m.errorMessage,
		Notification:  m.notification,
		StartPressed:  m.pressing,
		ShowHelp:      m.showHelp,
		ShowDialog:    mode == inputtypes.ModeConfirmClear,
		HelpModel:     m.help,
		ShortHelp:     shortHelp,
		FullHelp:      m.keys.FullHelp(),
	}
}

func (m *Model) context() *input.ModelContext {
	return &input.ModelContext{
		Words:     m.store.List(),
		Navigator: m.navigator,
		Text:      m.inputHandler.Draft(),
	}
}

func (m *Model) layout() views.Layout {
	return m.renderer.Layout(m.viewState())
}

func (m *Model) updateViewportHeight() {
	m.navigator.SetHeight(m.layout().ListHeight)
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit), msg.Type == tea.KeyEsc:
		m.showHelp = false
	}
	return nil
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.ChangeModeAction:
		// The handler has already switched; a gesture in progress no longer applies
		m.cancelPress()

	case inputtypes.UpdateDraftAction:
		m.errorMessage = ""

	case inputtypes.SubmitDraftAction:
		return m.addWord(a.Text)

	case inputtypes.DeleteWordAction:
		return m.deleteWord(a.Word)

	case inputtypes.ToggleSortAction:
		m.toggleSort()

	case inputtypes.ConfirmClearAction:
		return m.clearAll()

	case inputtypes.CancelClearAction:
		log.Printf("Clear all cancelled")

	case inputtypes.ToggleHelpAction:
		m.showHelp = !m.showHelp

	case inputtypes.OpenActivityAction:
		return m.openActivity()

	case inputtypes.QuitAction:
		log.Printf("Quit requested (force=%v)", a.Force)
		return tea.Quit
	}
	return nil
}

func (m *Model) navigate(direction string) {
	switch direction {
	case "up":
		m.navigator.Up()
	case "down":
		m.navigator.Down()
	case "pageup":
		m.navigator.PageUp()
	case "pagedown":
		m.navigator.PageDown()
	case "start":
		m.navigator.ScrollToStart()
	case "end":
		m.navigator.ScrollToEnd()
	}
}

// addWord validates the draft and adds it, keeping the list sorted
func (m *Model) addWord(draft string) tea.Cmd {
	word, err := words.Validate(draft, m.store.List())
	if err != nil {
		switch {
		case errors.Is(err, words.ErrDuplicate):
			m.errorMessage = m.catalog.ErrExists
		case errors.Is(err, words.ErrNotLetters):
			m.errorMessage = m.catalog.ErrLetters
		default:
			m.errorMessage = m.catalog.LengthError(words.MaxLength)
		}
		log.Printf("Rejected word: %v", err)
		return nil
	}

	m.store.Add(word)
	m.store.Sort(m.direction.IsAscending())
	m.inputHandler.ResetDraft()
	m.errorMessage = ""
	m.navigator.SetCount(m.store.Len())
	m.selectWord(word)

	log.Printf("Added word %q (%d words)", word, m.store.Len())
	m.publish(eventbus.WordAddedEvent{Word: word, Count: m.store.Len()})
	return m.notify(m.catalog.Added)
}

func (m *Model) deleteWord(word string) tea.Cmd {
	before := m.store.Len()
	m.store.Remove(word)
	if m.store.Len() == before {
		return nil
	}
	m.navigator.SetCount(m.store.Len())

	log.Printf("Deleted word %q (%d words)", word, m.store.Len())
	m.publish(eventbus.WordRemovedEvent{Word: word, Count: m.store.Len()})
	return m.notify(m.catalog.Deleted(word))
}

func (m *Model) toggleSort() {
	selected := m.context().SelectedWord()
	m.direction = m.direction.Toggle()
	m.store.Sort(m.direction.IsAscending())
	if selected != "" {
		m.selectWord(selected)
	}

	log.Printf("Sort direction now %s", m.direction)
	m.publish(eventbus.SortToggledEvent{Direction: m.direction})
}

func (m *Model) clearAll() tea.Cmd {
	removed := m.store.Len()
	m.store.Clear()
	m.navigator.SetCount(0)

	log.Printf("Cleared %d words", removed)
	m.publish(eventbus.WordsClearedEvent{Removed: removed})
	return m.notify(m.catalog.Cleared)
}

func (m *Model) selectWord(word string) {
	for i, w := range m.store.List() {
		if w == word {
			m.navigator.Select(i)
			return
		}
	}
}

// notify shows text until a newer notification replaces it or it expires
func (m *Model) notify(text string) tea.Cmd {
	m.notificationID++
	id := m.notificationID
	m.notification = text
	return tea.Tick(m.config.UISettings.NotificationDuration(), func(time.Time) tea.Msg {
		return notificationExpiredMsg{id: id}
	})
}

func (m *Model) publish(e eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}

// openActivity returns a command that shows the journal in the pager
func (m *Model) openActivity() tea.Cmd {
	if m.program == nil || m.journal == nil {
		log.Printf("Activity pager unavailable")
		return nil
	}
	content := m.journal.Render(m.catalog.ActivityName)
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.pager.Show(content)
		m.program.Send(resumeRenderingMsg{})
		return activityClosedMsg{err: err}
	}
}

// handleMouse dispatches clicks and the long press gesture
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.showHelp {
		if msg.Action == tea.MouseActionPress {
			m.showHelp = false
		}
		return nil
	}

	if m.inputHandler.CurrentMode() == inputtypes.ModeConfirmClear {
		return m.handleDialogMouse(msg)
	}

	layout := m.layout()

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.navigator.Up()
			return nil
		case tea.MouseButtonWheelDown:
			m.navigator.Down()
			return nil
		case tea.MouseButtonLeft:
		default:
			return nil
		}
		return m.handleClick(msg.X, msg.Y, layout)

	case tea.MouseActionRelease:
		if !m.pressing {
			return nil
		}
		m.cancelPress()
		if layout.StartButton.Contains(msg.X, msg.Y) {
			m.navigator.ScrollToStart()
		}

	case tea.MouseActionMotion:
		if m.pressing && !layout.StartButton.Contains(msg.X, msg.Y) {
			m.cancelPress()
		}
	}
	return nil
}

func (m *Model) handleClick(x, y int, layout views.Layout) tea.Cmd {
	switch {
	case layout.StartButton.Contains(x, y):
		m.pressing = true
		m.pressID++
		id := m.pressID
		return tea.Tick(m.config.UISettings.LongPress(), func(time.Time) tea.Msg {
			return longPressMsg{id: id}
		})

	case layout.EndButton.Contains(x, y):
		m.navigator.ScrollToEnd()

	case layout.SortButton.Contains(x, y):
		m.toggleSort()

	case layout.AddButton.Contains(x, y):
		return m.addWord(m.inputHandler.Draft())

	case y == layout.AddButton.Y && x < layout.AddButton.X:
		return m.inputHandler.ChangeMode(inputtypes.ModeEntry, m.context())

	default:
		start, end, hasAbove, _ := m.navigator.Window()
		index, onDelete, ok := layout.ItemAt(x, y, start, end, hasAbove)
		if !ok {
			return nil
		}
		if onDelete {
			return m.deleteWord(m.store.List()[index])
		}
		m.navigator.Select(index)
		return m.inputHandler.ChangeMode(inputtypes.ModeNormal, m.context())
	}
	return nil
}

func (m *Model) handleDialogMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	d := m.renderer.Dialog(m.viewState())
	switch {
	case d.Yes.Contains(msg.X, msg.Y):
		cmd := m.inputHandler.ChangeMode(inputtypes.ModeNormal, m.context())
		return tea.Batch(m.clearAll(), cmd)
	case d.No.Contains(msg.X, msg.Y):
		log.Printf("Clear all cancelled")
		return m.inputHandler.ChangeMode(inputtypes.ModeNormal, m.context())
	}
	return nil
}

func (m *Model) cancelPress() {
	if m.pressing {
		m.pressing = false
		m.pressID++
	}
}
