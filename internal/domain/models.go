package domain

// SortDirection is the order the word list is kept in
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// Toggle returns the opposite direction
func (d SortDirection) Toggle() SortDirection {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// IsAscending reports whether d sorts A to Z
func (d SortDirection) IsAscending() bool {
	return d == Ascending
}

func (d SortDirection) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "unknown"
	}
}

// Viewport is the visible window over the word list
type Viewport struct {
	SelectedIndex int
	Offset        int
	Height        int
}
