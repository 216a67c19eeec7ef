package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"wordlist/internal/locale"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// DialogLayout is the placement of the clear-all dialog and its buttons
type DialogLayout struct {
	X, Y, W, H int
	Yes        Rect
	No         Rect
}

func (pr *PopupRenderer) dialogContent(cat locale.Catalog) string {
	yes := pr.styles.Button.Render(cat.Yes)
	no := pr.styles.Button.Render(cat.No)
	return strings.Join([]string{
		pr.styles.DialogTitle.Render(cat.DialogTitle),
		"",
		cat.DialogText,
		"",
		yes + "  " + no,
	}, "\n")
}

// Dialog computes where the clear-all dialog lands on a screen of the given size
func (pr *PopupRenderer) Dialog(width, height int, cat locale.Catalog) DialogLayout {
	box := pr.styles.DialogBox.Render(pr.dialogContent(cat))
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	x, y := centered(width, height, w, h)

	// border plus padding before the content starts
	innerX := x + 1 + pr.styles.DialogBox.GetPaddingLeft()
	buttonsY := y + 1 + pr.styles.DialogBox.GetPaddingTop() + 4

	yes := Rect{X: innerX, Y: buttonsY, W: ButtonWidth(cat.Yes)}
	no := Rect{X: yes.X + yes.W + 2, Y: buttonsY, W: ButtonWidth(cat.No)}
	return DialogLayout{X: x, Y: y, W: w, H: h, Yes: yes, No: no}
}

// RenderDialog draws the clear-all confirmation over a greyed-out screen
func (pr *PopupRenderer) RenderDialog(mainContent string, width, height int, cat locale.Catalog) string {
	d := pr.Dialog(width, height, cat)
	box := pr.styles.DialogBox.Render(pr.dialogContent(cat))
	return pr.overlay(pr.dim(mainContent), box, d.X, d.Y)
}

// RenderPopupOverlay renders a popup overlay on top of main content
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	x, y := centered(width, height, modalW, modalH)

	return pr.overlay(mainContent, styledPopup, x, y)
}

func centered(width, height, w, h int) (int, int) {
	x := (width - w) / 2
	y := (height - h) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}

// dim drops the styling of s and greys it out line by line
func (pr *PopupRenderer) dim(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = pr.styles.Backdrop.Render(ansi.Strip(line))
	}
	return strings.Join(lines, "\n")
}

// overlay splices the lines of top into base at cell (x, y), keeping the
// styling of whatever base shows around it
func (pr *PopupRenderer) overlay(base, top string, x, y int) string {
	baseLines := strings.Split(base, "\n")
	topLines := strings.Split(top, "\n")
	for len(baseLines) < y+len(topLines) {
		baseLines = append(baseLines, "")
	}

	for j, fg := range topLines {
		bg := baseLines[y+j]
		left := ansi.Cut(bg, 0, x)
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		right := ansi.Cut(bg, x+ansi.StringWidth(fg), ansi.StringWidth(bg))
		baseLines[y+j] = left + fg + right
	}
	return strings.Join(baseLines, "\n")
}
