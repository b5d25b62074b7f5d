package tokenizer

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const genesis = "In the beginning God created the heaven and the earth."

func TestTokenize(t *testing.T) {
	tokens := Tokenize(genesis)

	require.Len(t, tokens, 10)
	assert.Equal(t, Token{Index: 0, Start: 0, End: 2, Text: "In"}, tokens[0])
	assert.Equal(t, Token{Index: 2, Start: 7, End: 16, Text: "beginning"}, tokens[2])
	assert.Equal(t, Token{Index: 9, Start: 48, End: 54, Text: "earth."}, tokens[9])
}

func TestTokenize_EmptyAndWhitespace(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("  \t\n "))
}

func TestTokenize_RuneOffsets(t *testing.T) {
	text := "Ἐν ἀρχῇ ἦν ὁ λόγος"
	tokens := Tokenize(text)

	require.Len(t, tokens, 5)
	assert.Equal(t, "ἀρχῇ", tokens[1].Text)
	assert.Equal(t, 3, tokens[1].Start)
	assert.Equal(t, 7, tokens[1].End)
}

func TestTokenize_SpanCoverage(t *testing.T) {
	texts := []string{
		genesis,
		"  leading and trailing  ",
		"1In the beginning",
		"tabs\tand\nnewlines  double",
		"ἦν ὁ λόγος",
		"",
		"single",
	}

	for _, text := range texts {
		runes := []rune(text)
		tokens := Tokenize(text)

		var rebuilt strings.Builder
		prev := 0
		for _, tok := range tokens {
			assert.True(t, tok.Start >= 0 && tok.Start < tok.End && tok.End <= len(runes), "bad span %v in %q", tok, text)
			gap := string(runes[prev:tok.Start])
			assert.Empty(t, strings.TrimSpace(gap), "non-whitespace between tokens in %q", text)
			rebuilt.WriteString(gap)
			rebuilt.WriteString(tok.Text)
			prev = tok.End
		}
		rebuilt.WriteString(string(runes[prev:]))
		assert.Equal(t, text, rebuilt.String())
	}
}

func TestIndexAt(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		want   int
	}{
		{"start of first token", 0, 0},
		{"inside beginning", 10, 2},
		{"start of beginning", 7, 2},
		{"whitespace resolves to next token", 6, 2},
		{"before first token", -3, 0},
		{"last rune", 53, 9},
		{"at end of text", 54, 9},
		{"past end of text", 200, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IndexAt(genesis, tt.offset))
		})
	}
}

func TestIndexAt_LeadingWhitespace(t *testing.T) {
	assert.Equal(t, 0, IndexAt("   word next", 1))
	assert.Equal(t, -1, IndexAt("   ", 1))
}

func TestWordAt(t *testing.T) {
	start, end, ok := WordAt(genesis, 10)
	require.True(t, ok)
	assert.Equal(t, 7, start)
	assert.Equal(t, 16, end)

	_, _, ok = WordAt(genesis, 2)
	assert.False(t, ok, "whitespace is not a word")

	_, _, ok = WordAt(genesis, 53)
	assert.False(t, ok, "period is not a word")

	_, _, ok = WordAt(genesis, 54)
	assert.False(t, ok, "offset past end")
}

func TestWordAt_ApostropheAndDigits(t *testing.T) {
	text := "1In the LORD's house"

	start, end, ok := WordAt(text, 1)
	require.True(t, ok)
	assert.Equal(t, "1In", Slice(text, start, end))

	start, end, ok = WordAt(text, 9)
	require.True(t, ok)
	assert.Equal(t, "LORD's", Slice(text, start, end))
}

func TestSlice_Clamps(t *testing.T) {
	assert.Equal(t, "earth.", Slice(genesis, 48, 100))
	assert.Equal(t, "", Slice(genesis, 60, 70))
	assert.Equal(t, "In", Slice(genesis, -5, 2))
	assert.Equal(t, utf8.RuneCountInString(genesis), len([]rune(Slice(genesis, 0, 1000))))
}
