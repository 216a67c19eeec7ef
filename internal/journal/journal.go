// Package journal keeps a bounded, in-memory history of word list changes
// fed from the event bus. It is what the activity pager shows.
package journal

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"wordlist/internal/eventbus"
)

// DefaultCapacity is the number of entries kept before the oldest is dropped
const DefaultCapacity = 200

// Entry is a single recorded change
type Entry struct {
	Time    time.Time
	Kind    eventbus.EventType
	Summary string
}

// Journal records domain events published on the bus
type Journal struct {
	mu       sync.RWMutex
	entries  []Entry
	capacity int
	now      func() time.Time
	unsubs   []func()
}

// New creates a journal subscribed to every word list event on bus
func New(bus eventbus.EventBus, capacity int) *Journal {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	j := &Journal{
		capacity: capacity,
		now:      time.Now,
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventWordAdded,
		eventbus.EventWordRemoved,
		eventbus.EventWordsCleared,
		eventbus.EventSortToggled,
		eventbus.EventError,
	} {
		j.unsubs = append(j.unsubs, bus.Subscribe(t, j.Record))
	}
	return j
}

// Record appends an entry for e
func (j *Journal) Record(e eventbus.DomainEvent) {
	summary := describe(e)
	if summary == "" {
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, Entry{Time: j.now(), Kind: e.Type(), Summary: summary})
	if over := len(j.entries) - j.capacity; over > 0 {
		j.entries = append(j.entries[:0], j.entries[over:]...)
	}
}

// Entries returns a copy of the recorded entries, oldest first
func (j *Journal) Entries() []Entry {
	j.mu.RLock()
	defer j.mu.RUnlock()
	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Close stops listening to the bus
func (j *Journal) Close() {
	for _, unsub := range j.unsubs {
		unsub()
	}
	j.unsubs = nil
}

// Render formats the journal as plain text, most recent first
func (j *Journal) Render(title string) string {
	entries := j.Entries()

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	if len(entries) == 0 {
		b.WriteString("No changes yet.\n")
		return b.String()
	}
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		fmt.Fprintf(&b, "[%s] %-12s %s\n", e.Time.Format("15:04:05"), e.Kind, e.Summary)
	}
	return b.String()
}

func describe(e eventbus.DomainEvent) string {
	switch ev := e.(type) {
	case eventbus.WordAddedEvent:
		return fmt.Sprintf("added %q (%d words)", ev.Word, ev.Count)
	case eventbus.WordRemovedEvent:
		return fmt.Sprintf("removed %q (%d words)", ev.Word, ev.Count)
	case eventbus.WordsClearedEvent:
		return fmt.Sprintf("cleared %d words", ev.Removed)
	case eventbus.SortToggledEvent:
		return "sort " + ev.Direction.String()
	case eventbus.ErrorEvent:
		if ev.Err != nil {
			return fmt.Sprintf("%s: %v", ev.Message, ev.Err)
		}
		return ev.Message
	default:
		return ""
	}
}
