// internal/words/words.go
//
// Dictionary of candidate words for the game engines.
//
// Responsibilities:
//   - Parse newline-delimited text into a normalized, de-duplicated word list.
//   - Keep a set alongside the list for O(1) membership lookups.
//   - Pick secrets uniformly through an injected random source.
//
// Normalization:
//   • Surrounding whitespace and control characters are stripped per line
//     (this covers "\r" left behind by CRLF input). Lookups are not trimmed.
//   • Words are lower-cased with golang.org/x/text/cases.
//   • Only lines of exactly the configured number of letters survive.
//
// A Dictionary is immutable after Load and safe for concurrent readers.

package words

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MinWordLength is the shortest word length a dictionary can be built for.
const MinWordLength = 3

var (
	// ErrDictionaryEmpty is returned when no word of the requested length
	// survives normalization.
	ErrDictionaryEmpty = errors.New("words: dictionary is empty")

	// ErrInvalidLength is returned for word lengths below MinWordLength.
	ErrInvalidLength = errors.New("words: invalid word length")
)

// Dictionary is an ordered set of lower-case words of one fixed length.
type Dictionary struct {
	length int
	list   []string            // first-seen order
	set    map[string]struct{} // same words, for lookups
}

// Load builds a Dictionary from raw newline-delimited text.
// Lines whose normalized form is not exactly wordLength letters are skipped.
func Load(raw string, wordLength int) (*Dictionary, error) {
	if wordLength < MinWordLength {
		return nil, fmt.Errorf("%w: %d (minimum %d)", ErrInvalidLength, wordLength, MinWordLength)
	}

	d := &Dictionary{
		length: wordLength,
		set:    make(map[string]struct{}),
	}
	for _, line := range strings.Split(raw, "\n") {
		w := Normalize(line)
		if utf8.RuneCountInString(w) != wordLength || !isLetters(w) {
			continue
		}
		if _, dup := d.set[w]; dup {
			continue
		}
		d.set[w] = struct{}{}
		d.list = append(d.list, w)
	}

	if len(d.list) == 0 {
		return nil, fmt.Errorf("%w: no %d-letter words", ErrDictionaryEmpty, wordLength)
	}
	return d, nil
}

// LoadFile reads path and hands its contents to Load.
func LoadFile(path string, wordLength int) (*Dictionary, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Load(string(b), wordLength)
}

// Normalize prepares one dictionary line: trim surrounding space/control
// runes, then lower-case. Guesses only go through Lower.
func Normalize(s string) string {
	s = strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	})
	return Lower(s)
}

// Lower lower-cases s and leaves everything else, whitespace included, as is.
func Lower(s string) string {
	// A Caser holds state, so each call gets its own.
	return cases.Lower(language.Und).String(s)
}

// Contains reports whether word is in the dictionary, ignoring case.
// Surrounding whitespace is not stripped, so " crane" is not a member.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.set[Lower(word)]
	return ok
}

// PickRandom returns a uniformly chosen entry using rng.
func (d *Dictionary) PickRandom(rng Rand) string {
	return d.list[rng.IntN(len(d.list))]
}

// WordLength is the fixed number of letters of every entry.
func (d *Dictionary) WordLength() int { return d.length }

// Len returns the number of distinct words.
func (d *Dictionary) Len() int { return len(d.list) }

// Words returns a copy of the entries in load order.
func (d *Dictionary) Words() []string {
	out := make([]string, len(d.list))
	copy(out, d.list)
	return out
}

// isLetters reports whether every rune of s is a letter.
func isLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
