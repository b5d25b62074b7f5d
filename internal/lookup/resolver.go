// Package lookup maps a user selection inside a rendered verse to the
// interlinear word it most likely refers to.
//
// Resolution runs an ordered chain of strategies, from the strict index match
// to the lenient position-overlap fallback, and stops at the first one that
// produces a word:
//
//	index     -> token index of the selection equals Word.WordIndex
//	exact     -> normalized surface word equals normalized TranslatedText
//	substring -> one normalized form contains the other
//	overlap   -> stored [StartPosition, EndPosition] overlaps the selection
//
// Failing every strategy is a normal outcome: the selection is plain text with
// no interlinear data. Nothing in this package returns an error for bad input.
package lookup

import (
	"strings"

	"github.com/mrlokans/interlinear/internal/entities"
	"github.com/mrlokans/interlinear/internal/normalize"
	"github.com/mrlokans/interlinear/internal/tokenizer"
)

// Range is a selection in runes of the verse text. Length 0 is a tap.
type Range struct {
	Location int `json:"location"`
	Length   int `json:"length"`
}

// End returns Location+Length.
func (r Range) End() int {
	return r.Location + r.Length
}

// IsTap reports whether the range is a zero-length selection.
func (r Range) IsTap() bool {
	return r.Length == 0
}

// Selection is the prepared input shared by all strategies.
type Selection struct {
	Verse   *entities.Verse
	Range   Range
	Surface string // cleaned surface word, may be empty for punctuation-only drags
	Key     string // normalized Surface
	Words   []entities.Word
	TextLen int
}

// Match is a resolved word and the strategy that found it.
type Match struct {
	Word     entities.Word `json:"word"`
	Strategy StrategyName  `json:"strategy"`
	Surface  string        `json:"surface"`
}

// Resolve returns the best word for the selection, or false when the verse has
// no words, the range is out of bounds, a tap lands outside a word, or no
// strategy matches.
func Resolve(verse *entities.Verse, r Range) (Match, bool) {
	return ResolveWith(verse, r, Strategies())
}

// ResolveWith runs the given strategies in order over the prepared selection.
func ResolveWith(verse *entities.Verse, r Range, strategies []Strategy) (Match, bool) {
	sel, ok := Prepare(verse, r)
	if !ok {
		return Match{}, false
	}
	for _, s := range strategies {
		if w, found := s.Match(sel); found {
			return Match{Word: w, Strategy: s.Name, Surface: sel.Surface}, true
		}
	}
	return Match{}, false
}

// Prepare validates the range and extracts the surface word. It reports false
// when resolution cannot proceed at all.
func Prepare(verse *entities.Verse, r Range) (Selection, bool) {
	if verse == nil || len(verse.Words) == 0 {
		return Selection{}, false
	}
	textLen := verse.Length()
	if r.Location < 0 || r.Location >= textLen || r.Length < 0 {
		return Selection{}, false
	}

	surface, ok := extractSurface(verse.Text, r, textLen)
	if !ok {
		return Selection{}, false
	}

	return Selection{
		Verse:   verse,
		Range:   r,
		Surface: surface,
		Key:     normalize.Normalize(surface),
		Words:   verse.SortedWords(),
		TextLen: textLen,
	}, true
}

func extractSurface(text string, r Range, textLen int) (string, bool) {
	if !r.IsTap() {
		end := r.End()
		if end > textLen {
			end = textLen
		}
		return normalize.Clean(tokenizer.Slice(text, r.Location, end)), true
	}

	start, end, ok := tokenizer.WordAt(text, r.Location)
	if !ok {
		return "", false
	}
	surface := normalize.Clean(tokenizer.Slice(text, start, end))
	return surface, strings.TrimSpace(surface) != ""
}
