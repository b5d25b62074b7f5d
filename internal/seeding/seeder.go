package seeding

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sort"

	"gorm.io/gorm"

	"github.com/mrlokans/interlinear/internal/entities"
)

var (
	ErrNoVerses    = errors.New("seed document has no verses")
	ErrMissingBook = errors.New("seed document has no book name")
)

// Store is the persistence the seeder needs. verses.Repository implements it.
type Store interface {
	FindVerse(book string, chapter, number int, version string) (*entities.Verse, error)
	CreateVerse(verse *entities.Verse) error
	CountWords(verseID uint) (int64, error)
	AddWords(verseID uint, words []entities.Word) error
	ReplaceWords(verseID uint, words []entities.Word) error
}

// Report summarises one seeded document.
type Report struct {
	Book           string `json:"book"`
	Version        string `json:"version"`
	VersesCreated  int    `json:"verses_created"`
	VersesSeeded   int    `json:"verses_seeded"`
	VersesSkipped  int    `json:"verses_skipped"`
	VersesMissing  int    `json:"verses_missing"`
	WordsInserted  int    `json:"words_inserted"`
	InvalidOffsets int    `json:"invalid_offsets"`

	// Words stored with a language outside greek, hebrew and aramaic.
	UnknownLanguages int `json:"unknown_languages"`
}

func (r Report) String() string {
	return fmt.Sprintf("%s (%s): %d created, %d seeded, %d skipped, %d missing, %d words, %d invalid offsets, %d unknown languages",
		r.Book, r.Version, r.VersesCreated, r.VersesSeeded, r.VersesSkipped, r.VersesMissing,
		r.WordsInserted, r.InvalidOffsets, r.UnknownLanguages)
}

// Seeder stores documents idempotently: a verse that already owns words is
// left alone unless force is set, in which case its words are replaced.
type Seeder struct {
	store          Store
	defaultVersion string
}

func NewSeeder(store Store, defaultVersion string) *Seeder {
	return &Seeder{store: store, defaultVersion: defaultVersion}
}

// IsSeeded reports whether a verse already owns words.
func (s *Seeder) IsSeeded(verseID uint) (bool, error) {
	count, err := s.store.CountWords(verseID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Seeder) SeedDocument(doc *Document, force bool) (Report, error) {
	version := doc.Version
	if version == "" {
		version = s.defaultVersion
	}
	report := Report{Book: doc.Book, Version: version}

	if len(doc.Verses) == 0 {
		return report, ErrNoVerses
	}

	for _, record := range doc.Verses {
		if err := s.seedVerse(doc.Book, version, record, force, &report); err != nil {
			return report, fmt.Errorf("%s %d:%d: %w", doc.Book, record.Chapter, record.Verse, err)
		}
	}

	log.Printf("[SEED] %s", report)
	return report, nil
}

func (s *Seeder) seedVerse(book, version string, record VerseRecord, force bool, report *Report) error {
	words := record.Entities()

	verse, err := s.store.FindVerse(book, record.Chapter, record.Verse, version)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if record.Text == "" {
			log.Printf("[SEED] %s %d:%d (%s) not found and no text given, skipping", book, record.Chapter, record.Verse, version)
			report.VersesMissing++
			return nil
		}
		verse = &entities.Verse{
			Book:    book,
			Chapter: record.Chapter,
			Number:  record.Verse,
			Version: version,
			Text:    record.Text,
			Words:   words,
		}
		if err := s.store.CreateVerse(verse); err != nil {
			return fmt.Errorf("failed to create verse: %w", err)
		}
		report.VersesCreated++
		report.tally(words, verse.Length())
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up verse: %w", err)
	}

	if record.Text != "" && record.Text != verse.Text {
		log.Printf("[SEED] %s differs from stored text, keeping stored text", verse.Reference())
	}

	seeded, err := s.IsSeeded(verse.ID)
	if err != nil {
		return fmt.Errorf("failed to count words: %w", err)
	}

	switch {
	case seeded && !force:
		report.VersesSkipped++
		return nil
	case seeded:
		err = s.store.ReplaceWords(verse.ID, words)
	default:
		err = s.store.AddWords(verse.ID, words)
	}
	if err != nil {
		return fmt.Errorf("failed to store words: %w", err)
	}

	report.VersesSeeded++
	report.tally(words, verse.Length())
	return nil
}

// tally counts stored words. Malformed offsets and unknown languages are
// stored as given and only counted.
func (r *Report) tally(words []entities.Word, textLen int) {
	r.WordsInserted += len(words)
	for i := range words {
		if !words[i].HasValidPositions(textLen) {
			r.InvalidOffsets++
		}
		if !words[i].Language.IsValid() {
			r.UnknownLanguages++
		}
	}
}

func (s *Seeder) SeedFile(path string, force bool) (Report, error) {
	doc, err := LoadFile(path)
	if err != nil {
		return Report{}, err
	}
	return s.SeedDocument(doc, force)
}

// SeedDirectory seeds every *.json document in dir in name order. A failing
// file does not stop the others; their errors are joined.
func (s *Seeder) SeedDirectory(dir string, force bool) ([]Report, error) {
	paths, err := DocumentPaths(dir)
	if err != nil {
		return nil, err
	}

	var reports []Report
	var errs []error
	for _, path := range paths {
		report, err := s.SeedFile(path, force)
		if err != nil {
			log.Printf("[SEED] Failed to seed %s: %v", path, err)
			errs = append(errs, err)
			continue
		}
		reports = append(reports, report)
	}
	return reports, errors.Join(errs...)
}

// DocumentPaths lists the seed documents of a directory in name order.
func DocumentPaths(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list seed directory: %w", err)
	}
	sort.Strings(paths)
	return paths, nil
}
