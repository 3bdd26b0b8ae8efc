// Package assets ships the default dictionary so the server runs without any
// word file configured.
package assets

import (
	_ "embed"
)

//go:embed words.txt
var defaultWords string

// DefaultWords returns the raw embedded word list (newline-delimited, may
// contain comment lines and words of several lengths).
func DefaultWords() string {
	return defaultWords
}
