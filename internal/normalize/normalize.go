// Package normalize builds case- and punctuation-insensitive comparison keys
// for surface words and word translations.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var verseNumberPrefix = regexp.MustCompile(`^\d+\s*`)

var apostrophes = strings.NewReplacer("’", "'", "‘", "'", "ʼ", "'")

// Normalize returns the canonical comparison key of s: NFC, lower-cased, with
// a leading verse number removed and punctuation trimmed from both ends
// except the apostrophe. Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	return fixedPoint(prepare(s), true)
}

// Clean applies the same trimming as Normalize but keeps the original case.
// It is used to tidy a selected surface word before display or comparison.
func Clean(s string) string {
	return fixedPoint(prepare(s), false)
}

// Equal reports whether a and b normalize to the same non-empty key.
func Equal(a, b string) bool {
	na := Normalize(a)
	return na != "" && na == Normalize(b)
}

func prepare(s string) string {
	return apostrophes.Replace(norm.NFC.String(s))
}

// fixedPoint repeats the trimming pass until nothing changes, so that a
// prefix exposed by trimming (e.g. "1. 2And") is removed too. Every pass ends
// in NFC because lower-casing can leave combining marks out of canonical
// order (İ lowers to i + U+0307).
func fixedPoint(s string, lower bool) string {
	for {
		next := trimPass(s)
		if lower {
			next = strings.ToLower(next)
		}
		next = norm.NFC.String(next)
		if next == s {
			return s
		}
		s = next
	}
}

func trimPass(s string) string {
	s = strings.TrimSpace(s)
	s = verseNumberPrefix.ReplaceAllString(s, "")
	s = strings.TrimFunc(s, isTrimmable)
	return strings.TrimSpace(s)
}

func isTrimmable(r rune) bool {
	if r == '\'' {
		return false
	}
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
