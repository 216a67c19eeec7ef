package views

import (
	"github.com/charmbracelet/lipgloss"

	"wordlist/internal/domain"
	"wordlist/internal/locale"
	"wordlist/internal/words"
)

// Content rows, counted inside the Main padding
const (
	rowTitle   = 0
	rowLabel   = 2
	rowInput   = 3
	rowStatus  = 4
	rowListTop = 6

	padTop  = 1
	padLeft = 2

	// room for the longest draft plus the cursor
	fieldWidth  = words.MaxLength + 1
	promptWidth = 2
	deleteWidth = 3

	defaultWidth  = 80
	defaultHeight = 24
)

// Rect is a single-row hit area in absolute terminal cells
type Rect struct {
	X, Y, W int
}

// Contains reports whether the cell (x, y) falls inside the rect
func (r Rect) Contains(x, y int) bool {
	return y == r.Y && x >= r.X && x < r.X+r.W
}

// Labels are the texts of the clickable buttons
type Labels struct {
	Sort  string
	Add   string
	Start string
	End   string
}

// LabelsFor returns the button texts for a catalog and sort direction
func LabelsFor(cat locale.Catalog, dir domain.SortDirection) Labels {
	return Labels{
		Sort:  SortIcon(dir) + " " + cat.SortLabel,
		Add:   cat.AddButton,
		Start: cat.GoToStart,
		End:   cat.GoToEnd,
	}
}

// SortIcon is ↓ while ascending and ↑ while descending
func SortIcon(dir domain.SortDirection) string {
	if dir.IsAscending() {
		return "↓"
	}
	return "↑"
}

// ButtonWidth is the rendered width of a button with the given label
func ButtonWidth(label string) int {
	return lipgloss.Width(label) + 2
}

// Layout computes where everything sits on screen. Rendering and mouse
// hit-testing both read from it so they cannot drift apart.
type Layout struct {
	Width        int
	Height       int
	ContentWidth int

	SortButton  Rect
	AddButton   Rect
	StartButton Rect
	EndButton   Rect

	ListTop    int // absolute row of the first list line
	ListHeight int // list rows including indicator rows
	FooterY    int
	HelpY      int
}

const minHeight = 2*padTop + 1

// NewLayout computes the layout for a terminal of the given size
func NewLayout(width, height int, labels Labels) Layout {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	// at least one content row between the vertical padding
	if height < minHeight {
		height = minHeight
	}

	contentWidth := width - 2*padLeft
	contentHeight := height - 2*padTop
	footerRow := contentHeight - 2
	listHeight := footerRow - 1 - rowListTop
	if listHeight < 1 {
		listHeight = 1
	}

	l := Layout{
		Width:        width,
		Height:       height,
		ContentWidth: contentWidth,
		ListTop:      padTop + rowListTop,
		ListHeight:   listHeight,
		FooterY:      padTop + footerRow,
		HelpY:        padTop + footerRow + 1,
	}

	sortW := ButtonWidth(labels.Sort)
	l.SortButton = Rect{X: padLeft + contentWidth - sortW, Y: padTop + rowTitle, W: sortW}
	l.AddButton = Rect{X: padLeft + promptWidth + fieldWidth + 1, Y: padTop + rowInput, W: ButtonWidth(labels.Add)}
	l.StartButton = Rect{X: padLeft, Y: l.FooterY, W: ButtonWidth(labels.Start)}
	l.EndButton = Rect{X: l.StartButton.X + l.StartButton.W + 2, Y: l.FooterY, W: ButtonWidth(labels.End)}
	return l
}

// ItemAt maps a click to a list item given the visible window. onDelete is
// true when the click landed on the row's delete mark.
func (l Layout) ItemAt(x, y, start, end int, hasAbove bool) (index int, onDelete bool, ok bool) {
	row := y - l.ListTop
	if row < 0 || row >= l.ListHeight || x < padLeft || x >= padLeft+l.ContentWidth {
		return 0, false, false
	}
	if hasAbove {
		row--
	}
	if row < 0 {
		return 0, false, false
	}
	index = start + row
	if index >= end {
		return 0, false, false
	}
	onDelete = x >= padLeft+l.ContentWidth-deleteWidth
	return index, onDelete, true
}
