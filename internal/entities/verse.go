package entities

import (
	"fmt"
	"sort"
	"time"
	"unicode/utf8"
)

type Language string

const (
	LanguageGreek   Language = "greek"
	LanguageHebrew  Language = "hebrew"
	LanguageAramaic Language = "aramaic"
)

var validLanguages = map[Language]bool{
	LanguageGreek:   true,
	LanguageHebrew:  true,
	LanguageAramaic: true,
}

// IsValid reports whether the language belongs to the closed set of
// original languages.
func (l Language) IsValid() bool {
	return validLanguages[l]
}

// Verse is one verse of a translation. Word offsets are relative to Text, and
// since a verse is unique per version the offsets are keyed by translation.
type Verse struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Book      string    `gorm:"uniqueIndex:idx_verse_ref;size:64" json:"book"`
	Chapter   int       `gorm:"uniqueIndex:idx_verse_ref" json:"chapter"`
	Number    int       `gorm:"uniqueIndex:idx_verse_ref" json:"verse"`
	Version   string    `gorm:"uniqueIndex:idx_verse_ref;size:20" json:"version"`
	Text      string    `gorm:"type:text" json:"text"`
	Words     []Word    `gorm:"foreignKey:VerseID" json:"words,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Reference formats the verse as "Book Chapter:Verse".
func (v *Verse) Reference() string {
	return fmt.Sprintf("%s %d:%d", v.Book, v.Chapter, v.Number)
}

// Length returns the text length in runes, the unit used by word offsets
// and selection ranges.
func (v *Verse) Length() int {
	return utf8.RuneCountInString(v.Text)
}

// SortedWords returns a copy of the words ordered by WordIndex. Storage order
// is never meaningful.
func (v *Verse) SortedWords() []Word {
	words := make([]Word, len(v.Words))
	copy(words, v.Words)
	sort.SliceStable(words, func(i, j int) bool {
		return words[i].WordIndex < words[j].WordIndex
	})
	return words
}

// Word is an interlinear alignment record owned by a single verse.
type Word struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	VerseID         uint      `gorm:"index" json:"verse_id"`
	OriginalText    string    `gorm:"size:128" json:"original_text"`
	Transliteration string    `gorm:"size:128" json:"transliteration"`
	StrongsNumber   string    `gorm:"index;size:16" json:"strongs_number,omitempty"`
	Gloss           string    `gorm:"type:text" json:"gloss"`
	Morphology      string    `gorm:"size:128" json:"morphology,omitempty"`
	WordIndex       int       `gorm:"index" json:"word_index"`
	StartPosition   int       `json:"start_position"`
	EndPosition     int       `json:"end_position"`
	TranslatedText  string    `gorm:"size:256" json:"translated_text"`
	Language        Language  `gorm:"size:16" json:"language"`
	CreatedAt       time.Time `json:"created_at"`
}

// HasValidPositions reports whether the stored offsets are ordered and fall
// inside a text of textLen runes. Seed data is known to violate this.
func (w *Word) HasValidPositions(textLen int) bool {
	return w.StartPosition >= 0 &&
		w.StartPosition <= w.EndPosition &&
		w.EndPosition <= textLen
}

func (Verse) TableName() string {
	return "verses"
}

func (Word) TableName() string {
	return "words"
}
