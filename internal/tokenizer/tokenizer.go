// Package tokenizer splits verse text into whitespace-delimited tokens.
//
// All offsets are rune (code point) offsets into the text, not byte offsets,
// so they can be compared directly with stored word positions and selection
// ranges.
package tokenizer

import "unicode"

// Token is a maximal run of non-whitespace runes.
type Token struct {
	Index int    `json:"index"`
	Start int    `json:"start"` // inclusive
	End   int    `json:"end"`   // exclusive
	Text  string `json:"text"`
}

// Len returns the token length in runes.
func (t Token) Len() int {
	return t.End - t.Start
}

// Contains reports whether offset falls inside [Start, End).
func (t Token) Contains(offset int) bool {
	return offset >= t.Start && offset < t.End
}

// Tokenize returns the ordered whitespace-delimited tokens of text.
func Tokenize(text string) []Token {
	return tokenizeRunes([]rune(text))
}

func tokenizeRunes(runes []rune) []Token {
	var tokens []Token
	start := -1
	for i, r := range runes {
		if unicode.IsSpace(r) {
			if start >= 0 {
				tokens = append(tokens, newToken(len(tokens), start, i, runes))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, newToken(len(tokens), start, len(runes), runes))
	}
	return tokens
}

func newToken(index, start, end int, runes []rune) Token {
	return Token{
		Index: index,
		Start: start,
		End:   end,
		Text:  string(runes[start:end]),
	}
}

// IndexAt returns the index of the token containing offset. An offset in
// leading or inter-token whitespace resolves to the next token, and an offset
// at or past the end of text resolves to the last token. Returns -1 when the
// text has no tokens.
func IndexAt(text string, offset int) int {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return -1
	}
	for _, tok := range tokens {
		if offset < tok.End {
			return tok.Index
		}
	}
	return tokens[len(tokens)-1].Index
}

// IsWordRune reports whether r is word-internal: letters, digits and the
// apostrophe (straight or typographic).
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '\'' || r == '’'
}

// WordAt expands left and right from offset across word runes and returns the
// enclosing [start, end) span. ok is false when offset is out of range or the
// rune at offset is not a word rune.
func WordAt(text string, offset int) (start, end int, ok bool) {
	runes := []rune(text)
	if offset < 0 || offset >= len(runes) || !IsWordRune(runes[offset]) {
		return 0, 0, false
	}
	start, end = offset, offset+1
	for start > 0 && IsWordRune(runes[start-1]) {
		start--
	}
	for end < len(runes) && IsWordRune(runes[end]) {
		end++
	}
	return start, end, true
}

// Slice returns the runes of text in [start, end), clamped to the text.
func Slice(text string, start, end int) string {
	runes := []rune(text)
	if start < 0 {
		start = 0
	}
	if end > len(runes) {
		end = len(runes)
	}
	if start >= end {
		return ""
	}
	return string(runes[start:end])
}
