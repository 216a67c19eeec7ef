package input

import "wordlist/internal/ui/logic"

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Words     []string
	Navigator *logic.Navigator
	Text      string
}

// CurrentIndex returns the current selected index
func (c *ModelContext) CurrentIndex() int {
	if c.Navigator == nil {
		return 0
	}
	return c.Navigator.Selected()
}

// TotalItems returns the number of words in display order
func (c *ModelContext) TotalItems() int {
	return len(c.Words)
}

// SelectedWord returns the stored word under the cursor, or "" on an empty list
func (c *ModelContext) SelectedWord() string {
	i := c.CurrentIndex()
	if i < 0 || i >= len(c.Words) {
		return ""
	}
	return c.Words[i]
}

// Draft returns the current draft text
func (c *ModelContext) Draft() string {
	return c.Text
}
