// Package verses provides database operations for verses and their
// interlinear words.
//
// Words are always loaded ordered by word_index; storage order carries no
// meaning.
//
// # Usage
//
//	repo := verses.NewRepository(db)
//	verse, err := repo.FindVerse("Genesis", 1, 1, "KJV")
package verses

import (
	"gorm.io/gorm"

	"github.com/mrlokans/interlinear/internal/entities"
)

// Repository handles verse and word database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new verses repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func orderedWords(db *gorm.DB) *gorm.DB {
	return db.Order("word_index ASC, id ASC")
}

// GetVerseByID retrieves a verse with its words.
func (r *Repository) GetVerseByID(id uint) (*entities.Verse, error) {
	var verse entities.Verse
	err := r.db.Preload("Words", orderedWords).First(&verse, id).Error
	if err != nil {
		return nil, err
	}
	return &verse, nil
}

// FindVerse retrieves a verse by reference and version.
func (r *Repository) FindVerse(book string, chapter, number int, version string) (*entities.Verse, error) {
	var verse entities.Verse
	err := r.db.Preload("Words", orderedWords).
		Where("book = ? AND chapter = ? AND number = ? AND version = ?", book, chapter, number, version).
		First(&verse).Error
	if err != nil {
		return nil, err
	}
	return &verse, nil
}

// ListChapter retrieves every verse of a chapter in verse order.
func (r *Repository) ListChapter(book string, chapter int, version string) ([]entities.Verse, error) {
	var verses []entities.Verse
	err := r.db.Preload("Words", orderedWords).
		Where("book = ? AND chapter = ? AND version = ?", book, chapter, version).
		Order("number ASC").
		Find(&verses).Error
	return verses, err
}

// ListBooks returns the distinct book names stored for a version.
func (r *Repository) ListBooks(version string) ([]string, error) {
	var books []string
	err := r.db.Model(&entities.Verse{}).
		Where("version = ?", version).
		Distinct("book").
		Order("book ASC").
		Pluck("book", &books).Error
	return books, err
}

// CreateVerse inserts a verse together with any words it already carries.
func (r *Repository) CreateVerse(verse *entities.Verse) error {
	return r.db.Create(verse).Error
}

// CountWords returns the number of words owned by a verse.
func (r *Repository) CountWords(verseID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entities.Word{}).Where("verse_id = ?", verseID).Count(&count).Error
	return count, err
}

// AddWords attaches words to a verse.
func (r *Repository) AddWords(verseID uint, words []entities.Word) error {
	if len(words) == 0 {
		return nil
	}
	for i := range words {
		words[i].ID = 0
		words[i].VerseID = verseID
	}
	return r.db.Create(&words).Error
}

// ReplaceWords drops a verse's words and stores the given set in one
// transaction.
func (r *Repository) ReplaceWords(verseID uint, words []entities.Word) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("verse_id = ?", verseID).Delete(&entities.Word{}).Error; err != nil {
			return err
		}
		return NewRepository(tx).AddWords(verseID, words)
	})
}

// GetWordByID retrieves a single word.
func (r *Repository) GetWordByID(id uint) (*entities.Word, error) {
	var word entities.Word
	err := r.db.First(&word, id).Error
	if err != nil {
		return nil, err
	}
	return &word, nil
}

// FindWordsByStrongs retrieves words sharing a Strong's number across all
// verses, in storage order of the verses.
func (r *Repository) FindWordsByStrongs(strongs string, limit int) ([]entities.Word, error) {
	var words []entities.Word
	query := r.db.Where("strongs_number = ?", strongs).Order("verse_id ASC, word_index ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&words).Error
	return words, err
}
