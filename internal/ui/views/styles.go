package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Label         lipgloss.Style
	Input         lipgloss.Style
	InputFocused  lipgloss.Style
	Counter       lipgloss.Style
	Dim           lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Word          lipgloss.Style
	Cursor        lipgloss.Style
	SelectionBg   lipgloss.Style
	Delete        lipgloss.Style
	Button        lipgloss.Style
	ButtonPressed lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	DialogBox     lipgloss.Style
	DialogTitle   lipgloss.Style
	InfoBox       lipgloss.Style
	Backdrop      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Input:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		InputFocused:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		Counter:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:           lipgloss.NewStyle().Faint(true),
		Help:          lipgloss.NewStyle().Faint(true),
		Main:          lipgloss.NewStyle().Padding(1, 2),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Word:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Cursor:        lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Delete:        lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Button:        lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("238")).Foreground(lipgloss.Color("252")),
		ButtonPressed: lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("99")).Foreground(lipgloss.Color("231")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		DialogBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
		DialogTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1),
		Backdrop: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
