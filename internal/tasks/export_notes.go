package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/interlinear/internal/exporters"
)

// NotesExporter writes the highlights of books as markdown notes.
type NotesExporter interface {
	ExportBooks(books []string, version string) (exporters.ExportResult, error)
}

// BookLister lists the books stored for a translation.
type BookLister interface {
	ListBooks(version string) ([]string, error)
}

// ExportNotesTask exports highlights to the configured export directory.
// An empty Books list exports every book of the version.
type ExportNotesTask struct {
	Books   []string `json:"books,omitempty"`
	Version string   `json:"version"`
}

// Config returns the queue configuration for export tasks.
func (t ExportNotesTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "export_notes",
		MaxAttempts: 2,
		Backoff:     time.Minute,
		Timeout:     5 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// ExportNotesProcessor creates a processor function for ExportNotesTask.
func ExportNotesProcessor(exporter NotesExporter, books BookLister) backlite.QueueProcessor[ExportNotesTask] {
	return func(ctx context.Context, task ExportNotesTask) error {
		if exporter == nil {
			return fmt.Errorf("notes exporter not configured")
		}
		if task.Version == "" {
			return fmt.Errorf("export version is required")
		}

		selected := task.Books
		if len(selected) == 0 {
			if books == nil {
				return fmt.Errorf("book lister not configured")
			}
			var err error
			selected, err = books.ListBooks(task.Version)
			if err != nil {
				return fmt.Errorf("list books: %w", err)
			}
		}

		result, err := exporter.ExportBooks(selected, task.Version)
		if err != nil {
			return fmt.Errorf("export notes: %w", err)
		}

		log.Printf("[TASK] Exported %d highlights from %d books (%s)",
			result.HighlightsProcessed, result.BooksProcessed, task.Version)
		if result.BooksFailed > 0 {
			return fmt.Errorf("%d books failed to export", result.BooksFailed)
		}
		return nil
	}
}

// NewExportNotesQueue creates a backlite queue for export tasks.
func NewExportNotesQueue(exporter NotesExporter, books BookLister) backlite.Queue {
	return backlite.NewQueue(ExportNotesProcessor(exporter, books))
}
