package words

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxLength is the longest word accepted, counted in runes
const MaxLength = 20

var (
	// ErrLength is returned for an empty draft or one longer than MaxLength
	ErrLength = errors.New("word must be 1 to 20 letters")
	// ErrDuplicate is returned when the word is already listed, ignoring case
	ErrDuplicate = errors.New("word already exists")
	// ErrNotLetters is returned when the draft holds anything but letters
	ErrNotLetters = errors.New("word must contain only letters")
)

// IsLetters reports whether every rune in s is a letter
func IsLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// FilterLetters drops every non-letter rune from s
func FilterLetters(s string) string {
	if IsLetters(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Length returns the number of runes in s
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// Contains reports whether word is in list under case-insensitive comparison
func Contains(list []string, word string) bool {
	for _, w := range list {
		if strings.EqualFold(w, word) {
			return true
		}
	}
	return false
}

// Validate checks a draft against the current list and returns the word to
// store. The draft is trimmed; the stored casing is whatever was typed.
func Validate(draft string, existing []string) (string, error) {
	word := strings.TrimSpace(draft)
	if n := Length(word); n == 0 || n > MaxLength {
		return "", fmt.Errorf("%q: %w", word, ErrLength)
	}
	if !IsLetters(word) {
		return "", fmt.Errorf("%q: %w", word, ErrNotLetters)
	}
	if Contains(existing, word) {
		return "", fmt.Errorf("%q: %w", word, ErrDuplicate)
	}
	return word, nil
}

// Capitalize renders word with its first letter upper-cased and the rest
// lower-cased, using the casing rules of tag.
func Capitalize(word string, tag language.Tag) string {
	if word == "" {
		return ""
	}
	return cases.Title(tag).String(word)
}
