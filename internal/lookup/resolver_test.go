package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/interlinear/internal/entities"
	"github.com/mrlokans/interlinear/internal/tokenizer"
)

const (
	genesis1 = "In the beginning God created the heaven and the earth."
	genesis2 = "And the earth was without form, and void; and darkness was upon the face of the deep."
)

func beginningVerse() *entities.Verse {
	return &entities.Verse{
		ID:      1,
		Book:    "Genesis",
		Chapter: 1,
		Number:  1,
		Version: "KJV",
		Text:    genesis1,
		Words: []entities.Word{
			{
				ID:              10,
				OriginalText:    "רֵאשִׁית",
				Transliteration: "reshith",
				StrongsNumber:   "H7225",
				Gloss:           "beginning, chief",
				WordIndex:       1,
				StartPosition:   7,
				EndPosition:     16,
				TranslatedText:  "beginning",
				Language:        entities.LanguageHebrew,
			},
		},
	}
}

func TestResolve_ScenarioA_DragSelection(t *testing.T) {
	m, ok := Resolve(beginningVerse(), Range{Location: 7, Length: 9})

	require.True(t, ok)
	assert.Equal(t, uint(10), m.Word.ID)
	assert.Equal(t, StrategyExact, m.Strategy)
	assert.Equal(t, "beginning", m.Surface)
}

func TestResolve_ScenarioB_Tap(t *testing.T) {
	m, ok := Resolve(beginningVerse(), Range{Location: 10, Length: 0})

	require.True(t, ok)
	assert.Equal(t, uint(10), m.Word.ID)
	assert.Equal(t, StrategyExact, m.Strategy)
}

func TestResolve_ScenarioC_NoMatch(t *testing.T) {
	// the second "the", token 5, with only "beginning" seeded
	_, ok := Resolve(beginningVerse(), Range{Location: 29, Length: 3})
	assert.False(t, ok)

	_, ok = Resolve(beginningVerse(), Range{Location: 30, Length: 0})
	assert.False(t, ok)
}

func TestResolve_ScenarioD_OverlapFallback(t *testing.T) {
	verse := &entities.Verse{
		Text: genesis2,
		Words: []entities.Word{
			{ID: 20, WordIndex: 4, StartPosition: 53, EndPosition: 56, TranslatedText: "obscurity"},
		},
	}

	m, ok := Resolve(verse, Range{Location: 53, Length: 3})

	require.True(t, ok)
	assert.Equal(t, uint(20), m.Word.ID)
	assert.Equal(t, StrategyOverlap, m.Strategy)
}

func TestResolve_IndexMatchFirst(t *testing.T) {
	verse := &entities.Verse{
		Text: genesis1,
		Words: []entities.Word{
			{ID: 1, WordIndex: 2, TranslatedText: "reshith"},
			{ID: 2, WordIndex: 7, TranslatedText: "beginning"},
		},
	}

	m, ok := Resolve(verse, Range{Location: 8, Length: 0})

	require.True(t, ok)
	assert.Equal(t, uint(1), m.Word.ID, "index match wins over a later exact match")
	assert.Equal(t, StrategyIndex, m.Strategy)
}

func TestResolve_StopsAtFirstSuccess(t *testing.T) {
	// exact matches word 3, overlap would match word 1
	verse := &entities.Verse{
		Text: genesis1,
		Words: []entities.Word{
			{ID: 1, WordIndex: 0, StartPosition: 17, EndPosition: 20, TranslatedText: "Elohim"},
			{ID: 3, WordIndex: 8, StartPosition: 0, EndPosition: 0, TranslatedText: "God"},
		},
	}

	m, ok := Resolve(verse, Range{Location: 17, Length: 3})

	require.True(t, ok)
	assert.Equal(t, uint(3), m.Word.ID)
	assert.Equal(t, StrategyExact, m.Strategy)
}

func TestResolve_SubstringMatch(t *testing.T) {
	verse := &entities.Verse{
		Text: genesis1,
		Words: []entities.Word{
			{ID: 5, WordIndex: 0, TranslatedText: "In the beginning"},
		},
	}

	m, ok := Resolve(verse, Range{Location: 7, Length: 9})

	require.True(t, ok)
	assert.Equal(t, uint(5), m.Word.ID)
	assert.Equal(t, StrategySubstring, m.Strategy)
}

func TestResolve_SubstringSurfaceContainsTranslation(t *testing.T) {
	verse := &entities.Verse{
		Text: genesis1,
		Words: []entities.Word{
			{ID: 6, WordIndex: 0, TranslatedText: "heaven"},
		},
	}

	m, ok := Resolve(verse, Range{Location: 33, Length: 10})

	require.True(t, ok, "selection %q", tokenizer.Slice(genesis1, 33, 43))
	assert.Equal(t, uint(6), m.Word.ID)
	assert.Equal(t, StrategySubstring, m.Strategy)
}

func TestResolve_TiesBrokenByLowestIndex(t *testing.T) {
	// storage order is reversed on purpose
	verse := &entities.Verse{
		Text: genesis1,
		Words: []entities.Word{
			{ID: 9, WordIndex: 12, TranslatedText: "the"},
			{ID: 4, WordIndex: 11, TranslatedText: "the"},
		},
	}

	m, ok := Resolve(verse, Range{Location: 44, Length: 3})

	require.True(t, ok)
	assert.Equal(t, uint(4), m.Word.ID)
	assert.Equal(t, StrategyExact, m.Strategy)
}

func TestResolve_OutOfRange(t *testing.T) {
	verse := beginningVerse()

	for _, r := range []Range{
		{Location: -1, Length: 0},
		{Location: 54, Length: 0},
		{Location: 500, Length: 3},
		{Location: 7, Length: -2},
	} {
		_, ok := Resolve(verse, r)
		assert.False(t, ok, "range %+v", r)
	}
}

func TestResolve_NoWords(t *testing.T) {
	_, ok := Resolve(&entities.Verse{Text: genesis1}, Range{Location: 7, Length: 9})
	assert.False(t, ok)

	_, ok = Resolve(nil, Range{Location: 0})
	assert.False(t, ok)
}

func TestResolve_TapOnPunctuationOrSpace(t *testing.T) {
	verse := &entities.Verse{
		Text: genesis1,
		Words: []entities.Word{
			{ID: 1, WordIndex: 3, StartPosition: 0, EndPosition: 54, TranslatedText: "God"},
		},
	}

	_, ok := Resolve(verse, Range{Location: 16, Length: 0})
	assert.False(t, ok, "tap on whitespace")

	_, ok = Resolve(verse, Range{Location: 53, Length: 0})
	assert.False(t, ok, "tap on the final period")
}

func TestResolve_DragClampedToText(t *testing.T) {
	verse := &entities.Verse{
		Text: genesis1,
		Words: []entities.Word{
			{ID: 1, WordIndex: 0, TranslatedText: "earth"},
		},
	}

	m, ok := Resolve(verse, Range{Location: 48, Length: 20})

	require.True(t, ok)
	assert.Equal(t, "earth", m.Surface)
	assert.Equal(t, StrategyExact, m.Strategy)
}

func TestResolve_MalformedOffsetsIgnoredByOverlap(t *testing.T) {
	verse := &entities.Verse{
		Text: genesis1,
		Words: []entities.Word{
			{ID: 1, WordIndex: 0, StartPosition: 30, EndPosition: 20, TranslatedText: "x"},
			{ID: 2, WordIndex: 1, StartPosition: -4, EndPosition: 25, TranslatedText: "y"},
			{ID: 3, WordIndex: 2, StartPosition: 22, EndPosition: 90, TranslatedText: "z"},
		},
	}

	_, ok := Resolve(verse, Range{Location: 22, Length: 4})
	assert.False(t, ok)
}

func TestResolve_Deterministic(t *testing.T) {
	verse := beginningVerse()
	first, firstOK := Resolve(verse, Range{Location: 10, Length: 0})

	for i := 0; i < 20; i++ {
		m, ok := Resolve(verse, Range{Location: 10, Length: 0})
		assert.Equal(t, firstOK, ok)
		assert.Equal(t, first, m)
	}
}

func TestResolve_DoesNotMutateVerse(t *testing.T) {
	verse := &entities.Verse{
		Text: genesis1,
		Words: []entities.Word{
			{ID: 2, WordIndex: 5},
			{ID: 1, WordIndex: 0},
		},
	}

	Resolve(verse, Range{Location: 0, Length: 0})

	assert.Equal(t, uint(2), verse.Words[0].ID)
}

func TestResolve_IndexRoundTrip(t *testing.T) {
	tokens := tokenizer.Tokenize(genesis1)
	verse := &entities.Verse{Text: genesis1}
	for _, tok := range tokens {
		verse.Words = append(verse.Words, entities.Word{
			ID:             uint(tok.Index + 100),
			WordIndex:      tok.Index,
			TranslatedText: "unrelated",
		})
	}

	for _, tok := range tokens {
		for offset := tok.Start; offset < tok.End; offset++ {
			m, ok := Resolve(verse, Range{Location: offset, Length: 1})
			require.True(t, ok, "offset %d", offset)
			assert.Equal(t, tok.Index, m.Word.WordIndex, "offset %d", offset)
			assert.Equal(t, StrategyIndex, m.Strategy)
		}
	}
}

func TestStrategies_Independent(t *testing.T) {
	sel, ok := Prepare(beginningVerse(), Range{Location: 7, Length: 9})
	require.True(t, ok)

	_, found := MatchIndex(sel)
	assert.False(t, found)

	w, found := MatchExact(sel)
	assert.True(t, found)
	assert.Equal(t, uint(10), w.ID)

	_, found = MatchSubstring(sel)
	assert.True(t, found)

	_, found = MatchOverlap(sel)
	assert.True(t, found)
}

func TestResolveWith_CustomChain(t *testing.T) {
	m, ok := ResolveWith(beginningVerse(), Range{Location: 7, Length: 9}, []Strategy{
		{Name: StrategyOverlap, Match: MatchOverlap},
	})

	require.True(t, ok)
	assert.Equal(t, StrategyOverlap, m.Strategy)

	_, ok = ResolveWith(beginningVerse(), Range{Location: 7, Length: 9}, nil)
	assert.False(t, ok)
}
