package command

import (
	"iter"
	"strings"
)

// Lines yields the non-blank lines of a message, trimmed.
func Lines(message string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, message, found = strings.Cut(message, "\n")
			piece = strings.TrimSpace(piece)
			if piece == "" {
				continue
			}
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}
