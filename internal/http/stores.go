package http

import (
	"context"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/interlinear/internal/entities"
	"github.com/mrlokans/interlinear/internal/seeding"
)

// This file consolidates the store interfaces used by HTTP controllers.
// Each controller depends only on the methods it calls.

// VerseGetter provides read access to a single verse with its words.
type VerseGetter interface {
	GetVerseByID(id uint) (*entities.Verse, error)
}

// VerseStore provides read access to verses and words (verses.Repository).
type VerseStore interface {
	VerseGetter
	FindVerse(book string, chapter, number int, version string) (*entities.Verse, error)
	ListChapter(book string, chapter int, version string) ([]entities.Verse, error)
	ListBooks(version string) ([]string, error)
	GetWordByID(id uint) (*entities.Word, error)
	FindWordsByStrongs(strongs string, limit int) ([]entities.Word, error)
}

// HighlightStore manages verse highlights (highlights.Repository).
type HighlightStore interface {
	CreateHighlight(highlight *entities.Highlight) error
	GetHighlightByID(id uint) (*entities.Highlight, error)
	ListByVerse(verseID uint) ([]entities.Highlight, error)
	ListByBook(book, version string, chapter int) ([]entities.Highlight, error)
	UpdateNote(id uint, note string, style entities.HighlightStyle) error
	DeleteHighlight(id uint) error
}

// DocumentSeeder stores seed documents inline when no task queue runs
// (seeding.Seeder).
type DocumentSeeder interface {
	SeedDocument(doc *seeding.Document, force bool) (seeding.Report, error)
}

// TaskQueue enqueues background work and reports on it (tasks.Client).
type TaskQueue interface {
	Enqueue(task backlite.Task) (string, error)
	Status(ctx context.Context, taskID string) (backlite.TaskStatus, error)
}

// DocumentAuditor archives uploaded seed documents (audit.Auditor).
type DocumentAuditor interface {
	SaveDocument(doc *seeding.Document) (string, error)
}
