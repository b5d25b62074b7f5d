// Package highlights provides database operations for verse highlights.
//
// # Usage
//
//	repo := highlights.NewRepository(db)
//	list, err := repo.ListByVerse(verseID)
package highlights

import (
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/interlinear/internal/entities"
)

// Repository handles highlight database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new highlights repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateHighlight stores a highlight. The verse and word associations are
// referenced by ID only and never upserted.
func (r *Repository) CreateHighlight(highlight *entities.Highlight) error {
	if highlight.Style == "" {
		highlight.Style = entities.HighlightStyleHighlight
	}
	return r.db.Omit("Verse", "Word").Create(highlight).Error
}

// GetHighlightByID retrieves a highlight with its resolved word.
func (r *Repository) GetHighlightByID(id uint) (*entities.Highlight, error) {
	var highlight entities.Highlight
	err := r.db.Preload("Word").First(&highlight, id).Error
	if err != nil {
		return nil, err
	}
	return &highlight, nil
}

// ListByVerse retrieves the highlights of a verse in reading order.
func (r *Repository) ListByVerse(verseID uint) ([]entities.Highlight, error) {
	var highlights []entities.Highlight
	err := r.db.Preload("Word").
		Where("verse_id = ?", verseID).
		Order("location ASC, created_at ASC").
		Find(&highlights).Error
	return highlights, err
}

// ListByBook retrieves the highlights of a book translation with their verse
// and word loaded, ordered by chapter, verse and location. A chapter of 0
// selects the whole book.
func (r *Repository) ListByBook(book, version string, chapter int) ([]entities.Highlight, error) {
	query := r.db.Preload("Verse").Preload("Word").
		Joins("JOIN verses ON verses.id = highlights.verse_id").
		Where("verses.book = ? AND verses.version = ?", book, version)
	if chapter > 0 {
		query = query.Where("verses.chapter = ?", chapter)
	}

	var highlights []entities.Highlight
	err := query.
		Order("verses.chapter ASC, verses.number ASC, highlights.location ASC").
		Find(&highlights).Error
	return highlights, err
}

// UpdateNote changes the note and style of a highlight.
func (r *Repository) UpdateNote(id uint, note string, style entities.HighlightStyle) error {
	result := r.db.Model(&entities.Highlight{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"note": note, "style": style})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteHighlight performs a soft delete.
func (r *Repository) DeleteHighlight(id uint) error {
	result := r.db.Delete(&entities.Highlight{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// PurgeDeleted permanently removes highlights soft-deleted longer ago than
// retention.
func (r *Repository) PurgeDeleted(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	result := r.db.Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&entities.Highlight{})
	return result.RowsAffected, result.Error
}
