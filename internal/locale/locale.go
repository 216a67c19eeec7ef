// Package locale holds the seed words and display strings for each
// supported language. Screens read strings from a Catalog instead of
// hardcoding them.
package locale

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Default is the locale used when none is configured
const Default = "en"

// Catalog contains everything user-visible that varies by locale
type Catalog struct {
	Code     string
	Language language.Tag
	Seed     []string

	Title        string
	SortLabel    string
	InputLabel   string
	Placeholder  string
	AddButton    string
	GoToStart    string
	GoToEnd      string
	EmptyList    string
	ErrLength    string // takes the max length
	ErrExists    string
	ErrLetters   string
	Added        string
	DeletedFmt   string // takes the deleted word
	Cleared      string
	DialogTitle  string
	DialogText   string
	Yes          string
	No           string
	HelpHint     string
	ActivityName string
}

var catalogs = map[string]Catalog{
	"en": {
		Code:         "en",
		Language:     language.English,
		Seed:         []string{"Demokratija", "Sloboda", "Studenti", "Univerzitet"},
		Title:        "Word List",
		SortLabel:    "Sort",
		InputLabel:   "Enter a word",
		Placeholder:  "letters only",
		AddButton:    "Add word",
		GoToStart:    "Go to start",
		GoToEnd:      "Go to end",
		EmptyList:    "No words yet.",
		ErrLength:    "Word must be 1 to %d letters",
		ErrExists:    "Word already exists",
		ErrLetters:   "Word may contain letters only",
		Added:        "Word added",
		DeletedFmt:   "Deleted: %s",
		Cleared:      "All words deleted",
		DialogTitle:  "Delete all words",
		DialogText:   "Are you sure you want to delete all words?",
		Yes:          "Yes",
		No:           "No",
		HelpHint:     "Press ? for help",
		ActivityName: "Activity",
	},
	"sr": {
		Code:         "sr",
		Language:     language.Serbian,
		Seed:         []string{"Demokratija", "Sloboda", "Studenti", "Univerzitet"},
		Title:        "Листа Речи",
		SortLabel:    "Сортирај",
		InputLabel:   "Унеси реч",
		Placeholder:  "само слова",
		AddButton:    "Додај реч",
		GoToStart:    "Иди на почетак",
		GoToEnd:      "Иди на крај",
		EmptyList:    "Нема речи.",
		ErrLength:    "Унесите реч до %d слова",
		ErrExists:    "Реч већ постоји",
		ErrLetters:   "Реч може да садржи само слова",
		Added:        "Реч успешно додата",
		DeletedFmt:   "Обрисано: %s",
		Cleared:      "Све речи обрисане",
		DialogTitle:  "Брисање свих речи",
		DialogText:   "Да ли сте сигурни да желите да обришете све речи?",
		Yes:          "Да",
		No:           "Не",
		HelpHint:     "Притисните ? за помоћ",
		ActivityName: "Активност",
	},
}

// Lookup returns the catalog for code. Region and script suffixes are
// ignored, so "sr-Cyrl-RS" resolves to "sr".
func Lookup(code string) (Catalog, error) {
	key := strings.ToLower(strings.TrimSpace(code))
	if key == "" {
		key = Default
	}
	if i := strings.IndexAny(key, "-_"); i > 0 {
		key = key[:i]
	}
	c, ok := catalogs[key]
	if !ok {
		return Catalog{}, fmt.Errorf("unknown locale %q (available: %s)", code, strings.Join(Available(), ", "))
	}
	c.Seed = append([]string(nil), c.Seed...)
	return c, nil
}

// MustLookup is Lookup for codes known to exist
func MustLookup(code string) Catalog {
	c, err := Lookup(code)
	if err != nil {
		panic(err)
	}
	return c
}

// Available lists the built-in locale codes in sorted order
func Available() []string {
	codes := make([]string, 0, len(catalogs))
	for code := range catalogs {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// WithSeed returns a copy of c whose seed words are replaced by seed.
// An empty seed keeps the built-in one.
func (c Catalog) WithSeed(seed []string) Catalog {
	if len(seed) == 0 {
		return c
	}
	c.Seed = append([]string(nil), seed...)
	return c
}

// LengthError formats the length validation message
func (c Catalog) LengthError(max int) string {
	return fmt.Sprintf(c.ErrLength, max)
}

// Deleted formats the row delete notification
func (c Catalog) Deleted(word string) string {
	return fmt.Sprintf(c.DeletedFmt, word)
}
