// Package seeding loads interlinear book documents and stores their verses
// and words.
//
// # Document format
//
// One JSON document per book:
//
//	{
//	  "book": "Genesis",
//	  "version": "KJV",
//	  "verses": [
//	    {
//	      "chapter": 1,
//	      "verse": 1,
//	      "text": "In the beginning God created the heaven and the earth.",
//	      "words": [
//	        {"originalText": "בְּרֵאשִׁית", "transliteration": "bereshit", "strongsNumber": "H7225",
//	         "gloss": "beginning", "morphology": "N-DSF", "wordIndex": 1,
//	         "startPosition": 7, "endPosition": 16, "translatedText": "beginning",
//	         "language": "hebrew"}
//	      ]
//	    }
//	  ]
//	}
//
// "version" and "text" are optional. Without "version" the seeder's default
// version is used; without "text" only verses that already exist can receive
// words.
//
// Offsets are stored as given. Seed data is known to carry stale or reversed
// offsets; they are counted in the report but never rejected.
package seeding

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mrlokans/interlinear/internal/entities"
)

type Document struct {
	Book    string        `json:"book"`
	Version string        `json:"version,omitempty"`
	Verses  []VerseRecord `json:"verses"`
}

type VerseRecord struct {
	Chapter int          `json:"chapter"`
	Verse   int          `json:"verse"`
	Text    string       `json:"text,omitempty"`
	Words   []WordRecord `json:"words"`
}

type WordRecord struct {
	OriginalText    string `json:"originalText"`
	Transliteration string `json:"transliteration"`
	StrongsNumber   string `json:"strongsNumber,omitempty"`
	Gloss           string `json:"gloss"`
	Morphology      string `json:"morphology,omitempty"`
	WordIndex       int    `json:"wordIndex"`
	StartPosition   int    `json:"startPosition"`
	EndPosition     int    `json:"endPosition"`
	TranslatedText  string `json:"translatedText"`
	Language        string `json:"language"`
}

// Entity converts the record into an unsaved Word.
func (w WordRecord) Entity() entities.Word {
	return entities.Word{
		OriginalText:    w.OriginalText,
		Transliteration: w.Transliteration,
		StrongsNumber:   strings.TrimSpace(w.StrongsNumber),
		Gloss:           w.Gloss,
		Morphology:      strings.TrimSpace(w.Morphology),
		WordIndex:       w.WordIndex,
		StartPosition:   w.StartPosition,
		EndPosition:     w.EndPosition,
		TranslatedText:  w.TranslatedText,
		Language:        entities.Language(strings.ToLower(strings.TrimSpace(w.Language))),
	}
}

// Entities converts all word records of a verse.
func (v VerseRecord) Entities() []entities.Word {
	words := make([]entities.Word, 0, len(v.Words))
	for _, w := range v.Words {
		words = append(words, w.Entity())
	}
	return words
}

// ParseDocument decodes a book document.
func ParseDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode seed document: %w", err)
	}
	doc.Book = strings.TrimSpace(doc.Book)
	doc.Version = strings.TrimSpace(doc.Version)
	if doc.Book == "" {
		return nil, ErrMissingBook
	}
	if len(doc.Verses) == 0 {
		return nil, fmt.Errorf("%s: %w", doc.Book, ErrNoVerses)
	}
	return &doc, nil
}

// LoadFile reads and decodes a book document from disk.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	doc, err := ParseDocument(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
