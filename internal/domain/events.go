package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventWordAdded    EventType = "WordAdded"
	EventWordRemoved  EventType = "WordRemoved"
	EventWordsCleared EventType = "WordsCleared"
	EventSortToggled  EventType = "SortToggled"
	EventError        EventType = "Error"
	EventConfigLoaded EventType = "ConfigLoaded"
	EventConfigSaved  EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// WordAddedEvent is emitted after a word passed validation and was stored
type WordAddedEvent struct {
	Word  string
	Count int // list size after the add
}

func (e WordAddedEvent) Type() EventType { return EventWordAdded }

// WordRemovedEvent is emitted after a row delete
type WordRemovedEvent struct {
	Word  string
	Count int
}

func (e WordRemovedEvent) Type() EventType { return EventWordRemoved }

// WordsClearedEvent is emitted when the clear-all dialog is confirmed
type WordsClearedEvent struct {
	Removed int
}

func (e WordsClearedEvent) Type() EventType { return EventWordsCleared }

// SortToggledEvent is emitted when the sort direction flips
type SortToggledEvent struct {
	Direction SortDirection
}

func (e SortToggledEvent) Type() EventType { return EventSortToggled }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path   string
	Locale string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
