package aggregator

import (
	"strings"
	"unicode/utf8"
)

// Acronym derives the first-letter acronym of a company name, keeping the
// casing the name provides ("Example Limited" -> "EL"). First letters are
// runes, not bytes, so multibyte names stay intact.
func Acronym(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
	}
	return b.String()
}

// StripLegalSuffix removes the "Limited"/"Ltd" legal suffixes from a
// company name and trims the leftover whitespace.
func StripLegalSuffix(name string) string {
	name = strings.ReplaceAll(name, "Limited", "")
	name = strings.ReplaceAll(name, "Ltd", "")
	return strings.Join(strings.Fields(name), " ")
}

// expandKeyword turns one company name into the derived query terms for the
// ticker fan-out: acronym, suffix-stripped name, and the registry ticker
// when the exact name is listed.
func (e *Engine) expandKeyword(keyword string) []string {
	terms := []string{Acronym(keyword), StripLegalSuffix(keyword)}
	if ticker := e.registry.TickerFor(keyword); ticker != "" {
		terms = append(terms, ticker)
	}
	return terms
}
