package domain

import (
	"strings"
	"unicode"
)

// NormalizeText prepares raw user input for tokenization:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	// Compress multiple spaces into one.
	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CleanInput tokenizes a raw input sentence into candidate seed words.
// The text is lowercased and split on whitespace and punctuation; letters,
// digits, and word-internal apostrophes and hyphens survive. Tokens found
// in the stopword set are dropped. Remaining tokens keep their original
// relative order; duplicates are not removed.
func CleanInput(text string, stopwords StopwordSet) []string {
	text = NormalizeText(text)
	if text == "" {
		return nil
	}

	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\'' && r != '-'
	})

	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.Trim(tok, "'-")
		if tok == "" || stopwords.Contains(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}
