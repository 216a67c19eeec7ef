package logic

// Navigator tracks the selected row and the viewport offset over a flat list.
// The viewport height counts the rows reserved for the "more above" and
// "more below" indicators, so Window never returns more rows than fit.
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	count          int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{viewportHeight: 1}
}

// Selected returns the current selected index
func (n *Navigator) Selected() int {
	return n.selectedIndex
}

// Offset returns the current viewport offset
func (n *Navigator) Offset() int {
	return n.viewportOffset
}

// Count returns the number of items being navigated
func (n *Navigator) Count() int {
	return n.count
}

// Height returns the viewport height including indicator rows
func (n *Navigator) Height() int {
	return n.viewportHeight
}

// SetCount updates the item count after a mutation and clamps the selection
func (n *Navigator) SetCount(count int) {
	if count < 0 {
		count = 0
	}
	n.count = count
	n.clamp()
}

// SetHeight updates the number of rows available to the list
func (n *Navigator) SetHeight(height int) {
	if height < 1 {
		height = 1
	}
	n.viewportHeight = height
	n.clamp()
}

// Select moves the selection to index, clamped to the list
func (n *Navigator) Select(index int) {
	n.selectedIndex = index
	n.clamp()
}

func (n *Navigator) Up()   { n.Select(n.selectedIndex - 1) }
func (n *Navigator) Down() { n.Select(n.selectedIndex + 1) }

func (n *Navigator) PageUp() {
	n.Select(n.selectedIndex - n.pageSize())
}

func (n *Navigator) PageDown() {
	n.Select(n.selectedIndex + n.pageSize())
}

// ScrollToStart selects the first item. It reports false on an empty list.
func (n *Navigator) ScrollToStart() bool {
	if n.count == 0 {
		return false
	}
	n.Select(0)
	return true
}

// ScrollToEnd selects the last item. It reports false on an empty list.
func (n *Navigator) ScrollToEnd() bool {
	if n.count == 0 {
		return false
	}
	n.Select(n.count - 1)
	return true
}

// Window returns the half-open range of visible items and whether the
// indicators above and below are needed.
func (n *Navigator) Window() (start, end int, hasAbove, hasBelow bool) {
	return n.window(n.viewportOffset)
}

func (n *Navigator) window(offset int) (start, end int, hasAbove, hasBelow bool) {
	if n.count <= n.viewportHeight {
		return 0, n.count, false, false
	}

	capacity := n.viewportHeight
	hasAbove = offset > 0
	if hasAbove {
		capacity--
	}
	hasBelow = offset+capacity < n.count
	if hasBelow {
		capacity--
	}
	// Ensure we have at least 1 line for content
	if capacity < 1 {
		capacity = 1
	}

	end = offset + capacity
	if end > n.count {
		end = n.count
	}
	return offset, end, hasAbove, hasBelow
}

func (n *Navigator) pageSize() int {
	_, end, _, _ := n.Window()
	if size := end - n.viewportOffset; size > 1 {
		return size
	}
	return 1
}

// clamp keeps the selection inside the list and visible
func (n *Navigator) clamp() {
	if n.count == 0 {
		n.selectedIndex = 0
		n.viewportOffset = 0
		return
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}
	if n.selectedIndex >= n.count {
		n.selectedIndex = n.count - 1
	}

	if n.viewportOffset > n.selectedIndex {
		n.viewportOffset = n.selectedIndex
	}
	for {
		_, end, _, _ := n.window(n.viewportOffset)
		if n.selectedIndex < end {
			break
		}
		n.viewportOffset++
	}

	// Don't leave blank rows at the bottom after the list shrinks
	for n.viewportOffset > 0 {
		_, end, _, _ := n.window(n.viewportOffset - 1)
		if end < n.count {
			break
		}
		n.viewportOffset--
	}
}
