package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// punctuation is the ASCII punctuation set stripped by Normalize
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// maxFoldPasses bounds foldCase; real text settles after two passes
const maxFoldPasses = 4

// Normalize lowercases text, replaces ASCII punctuation with spaces and
// collapses whitespace. It is total and idempotent.
func Normalize(text string) string {
	text = foldCase(text)

	var b strings.Builder
	b.Grow(len(text))
	pendingSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) || strings.ContainsRune(punctuation, r) {
			pendingSpace = b.Len() > 0
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// foldCase applies NFKC and lowercasing until the text stops changing, as
// lowercasing can leave text outside NFKC and NFKC can yield capitals.
func foldCase(text string) string {
	// a Caser keeps state, so it is not shared between goroutines
	lower := cases.Lower(language.Und)
	for i := 0; i < maxFoldPasses; i++ {
		next := lower.String(norm.NFKC.String(text))
		if next == text {
			break
		}
		text = next
	}
	return text
}
