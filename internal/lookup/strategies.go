package lookup

import (
	"strings"

	"github.com/mrlokans/interlinear/internal/entities"
	"github.com/mrlokans/interlinear/internal/normalize"
	"github.com/mrlokans/interlinear/internal/tokenizer"
)

type StrategyName string

const (
	StrategyIndex     StrategyName = "index"
	StrategyExact     StrategyName = "exact"
	StrategySubstring StrategyName = "substring"
	StrategyOverlap   StrategyName = "overlap"
)

// Strategy is one pure step of the fallback chain. Words in the selection
// are already in WordIndex order, so "first" means lowest index.
type Strategy struct {
	Name  StrategyName
	Match func(sel Selection) (entities.Word, bool)
}

// Strategies returns the default chain in evaluation order.
func Strategies() []Strategy {
	return []Strategy{
		{Name: StrategyIndex, Match: MatchIndex},
		{Name: StrategyExact, Match: MatchExact},
		{Name: StrategySubstring, Match: MatchSubstring},
		{Name: StrategyOverlap, Match: MatchOverlap},
	}
}

// MatchIndex returns the word whose WordIndex equals the token index of the
// selection start.
func MatchIndex(sel Selection) (entities.Word, bool) {
	idx := tokenizer.IndexAt(sel.Verse.Text, sel.Range.Location)
	if idx < 0 {
		return entities.Word{}, false
	}
	for _, w := range sel.Words {
		if w.WordIndex == idx {
			return w, true
		}
	}
	return entities.Word{}, false
}

// MatchExact returns the first word whose normalized translation equals the
// normalized surface word.
func MatchExact(sel Selection) (entities.Word, bool) {
	if sel.Key == "" {
		return entities.Word{}, false
	}
	for _, w := range sel.Words {
		if normalize.Normalize(w.TranslatedText) == sel.Key {
			return w, true
		}
	}
	return entities.Word{}, false
}

// MatchSubstring returns the first word whose normalized translation contains
// the surface word or is contained in it. Covers merged renderings such as
// "In the beginning" for a single original token.
func MatchSubstring(sel Selection) (entities.Word, bool) {
	if sel.Key == "" {
		return entities.Word{}, false
	}
	for _, w := range sel.Words {
		key := normalize.Normalize(w.TranslatedText)
		if key == "" {
			continue
		}
		if strings.Contains(sel.Key, key) || strings.Contains(key, sel.Key) {
			return w, true
		}
	}
	return entities.Word{}, false
}

// MatchOverlap returns the first word whose stored offsets overlap the
// selection, boundaries inclusive. Words with offsets outside the text or
// reversed never match.
func MatchOverlap(sel Selection) (entities.Word, bool) {
	selStart, selEnd := sel.Range.Location, sel.Range.End()
	for _, w := range sel.Words {
		if !w.HasValidPositions(sel.TextLen) {
			continue
		}
		if w.StartPosition <= selEnd && w.EndPosition >= selStart {
			return w, true
		}
	}
	return entities.Word{}, false
}
