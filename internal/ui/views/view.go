package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"wordlist/internal/domain"
	"wordlist/internal/locale"
	"wordlist/internal/words"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width     int
	Height    int
	Catalog   locale.Catalog
	Direction domain.SortDirection

	Words         []string // stored words in display order
	SelectedIndex int
	WindowStart   int
	WindowEnd     int
	HasAbove      bool
	HasBelow      bool
	ListFocused   bool

	DraftView    string // rendered text input
	DraftLength  int
	DraftFocused bool
	ErrorMessage string
	Notification string
	StartPressed bool

	ShowHelp   bool
	ShowDialog bool
	HelpModel  help.Model
	ShortHelp  []key.Binding
	FullHelp   [][]key.Binding
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles exposes the style set, mostly for the text input
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Layout computes the hit areas for the given state
func (r *Renderer) Layout(state ViewState) Layout {
	return NewLayout(state.Width, state.Height, LabelsFor(state.Catalog, state.Direction))
}

// Dialog returns the clear-all dialog placement for the given state
func (r *Renderer) Dialog(state ViewState) DialogLayout {
	l := r.Layout(state)
	return r.popupRender.Dialog(l.Width, l.Height, state.Catalog)
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	layout := r.Layout(state)
	labels := LabelsFor(state.Catalog, state.Direction)

	rows := make([]string, layout.Height-2*padTop)
	set := func(absY int, s string) {
		if i := absY - padTop; i >= 0 && i < len(rows) {
			rows[i] = s
		}
	}

	// Title with the sort toggle on the right
	title := r.styles.Title.Render(state.Catalog.Title)
	sortButton := r.styles.Button.Render(labels.Sort)
	set(padTop+rowTitle, spread(title, sortButton, layout.ContentWidth))

	// Draft field
	set(padTop+rowLabel, r.styles.Label.Render(state.Catalog.InputLabel))
	prompt := r.styles.Input.Render("› ")
	if state.DraftFocused {
		prompt = r.styles.InputFocused.Render("› ")
	}
	field := padRight(state.DraftView, fieldWidth)
	set(padTop+rowInput, prompt+field+" "+r.styles.Button.Render(labels.Add))

	errorText := ""
	if state.ErrorMessage != "" {
		errorText = r.styles.StatusError.Render(state.ErrorMessage)
	}
	counter := r.styles.Counter.Render(fmt.Sprintf("%d / %d", state.DraftLength, words.MaxLength))
	set(padTop+rowStatus, spread(errorText, counter, promptWidth+fieldWidth))

	// Word list
	for i, line := range r.renderList(state, layout) {
		set(layout.ListTop+i, line)
	}

	// Footer buttons
	startStyle := r.styles.Button
	if state.StartPressed {
		startStyle = r.styles.ButtonPressed
	}
	set(layout.FooterY, startStyle.Render(labels.Start)+"  "+r.styles.Button.Render(labels.End))

	// Notification replaces the key hints while it is showing
	switch {
	case state.Notification != "":
		set(layout.HelpY, r.styles.StatusSuccess.Render(state.Notification))
	case len(state.ShortHelp) > 0:
		set(layout.HelpY, state.HelpModel.ShortHelpView(state.ShortHelp))
	default:
		set(layout.HelpY, r.styles.Help.Render(state.Catalog.HelpHint))
	}

	finalContent := r.styles.Main.Render(strings.Join(rows, "\n"))

	// Overlay popups on top of main content
	if state.ShowDialog {
		return r.popupRender.RenderDialog(finalContent, layout.Width, layout.Height, state.Catalog)
	}

	if state.ShowHelp {
		helpContent := r.renderHelpContent(state)
		return r.popupRender.RenderPopupOverlay(finalContent, helpContent, layout.Height, layout.Width, r.styles.InfoBox)
	}

	return finalContent
}

// renderList renders the visible window of words with scroll indicators
func (r *Renderer) renderList(state ViewState, layout Layout) []string {
	if len(state.Words) == 0 {
		return []string{r.styles.Dim.Render(state.Catalog.EmptyList)}
	}

	var lines []string
	if state.HasAbove {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", state.WindowStart)))
	}

	rowWidth := layout.ContentWidth - deleteWidth
	for i := state.WindowStart; i < state.WindowEnd && i < len(state.Words); i++ {
		word := words.Capitalize(state.Words[i], state.Catalog.Language)
		selected := i == state.SelectedIndex

		cursor := "  "
		if selected {
			cursor = r.styles.Cursor.Render("› ")
		}
		text := padRight(cursor+r.styles.Word.Render(word), rowWidth)
		if selected && state.ListFocused {
			text = r.styles.SelectionBg.Render(text)
		}
		lines = append(lines, text+r.styles.Delete.Render(" ✕ "))
	}

	if state.HasBelow {
		below := len(state.Words) - state.WindowEnd
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
	}
	return lines
}

// renderHelpContent renders the full key reference
func (r *Renderer) renderHelpContent(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.DialogTitle.Render(state.Catalog.Title))
	b.WriteString("\n\n")

	h := state.HelpModel
	h.ShowAll = true
	b.WriteString(h.FullHelpView(state.FullHelp))
	return b.String()
}

// spread places left and right at opposite ends of a row of the given width
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
