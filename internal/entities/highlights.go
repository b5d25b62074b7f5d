package entities

import (
	"time"

	"gorm.io/gorm"
)

type HighlightStyle string

const (
	HighlightStyleHighlight     HighlightStyle = "highlight"
	HighlightStyleUnderline     HighlightStyle = "underline"
	HighlightStyleStrikethrough HighlightStyle = "strikethrough"
	HighlightStyleNoteOnly      HighlightStyle = "note_only"
)

var validHighlightStyles = map[HighlightStyle]bool{
	HighlightStyleHighlight:     true,
	HighlightStyleUnderline:     true,
	HighlightStyleStrikethrough: true,
	HighlightStyleNoteOnly:      true,
}

func (s HighlightStyle) IsValid() bool {
	return validHighlightStyles[s]
}

// Highlight marks a character range of a verse. WordID is set when the range
// resolved to an interlinear word at creation time.
type Highlight struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	VerseID uint   `gorm:"index" json:"verse_id"`
	Verse   Verse  `gorm:"foreignKey:VerseID" json:"-"`
	WordID  *uint  `gorm:"index" json:"word_id,omitempty"`
	Word    *Word  `gorm:"foreignKey:WordID" json:"word,omitempty"`
	Text    string `gorm:"type:text" json:"text"`
	Note    string `gorm:"type:text" json:"note,omitempty"`

	// Range in runes of the verse text
	Location int `json:"location"`
	Length   int `json:"length"`

	// Styling
	Color string         `gorm:"size:10" json:"color,omitempty"` // Hex color code
	Style HighlightStyle `gorm:"size:20;default:'highlight'" json:"style,omitempty"`

	// How the word was matched, empty for plain highlights
	MatchStrategy string `gorm:"size:20" json:"match_strategy,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Highlight) TableName() string {
	return "highlights"
}
