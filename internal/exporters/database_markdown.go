package exporters

import (
	"fmt"
	"log"

	"github.com/mrlokans/interlinear/internal/entities"
)

// HighlightLister is the read side the database exporter needs.
type HighlightLister interface {
	ListByBook(book, version string, chapter int) ([]entities.Highlight, error)
}

// DatabaseMarkdownExporter loads highlights from the database and writes
// them as markdown notes.
type DatabaseMarkdownExporter struct {
	store            HighlightLister
	markdownExporter *MarkdownExporter
}

func NewDatabaseMarkdownExporter(store HighlightLister, exportDir string) *DatabaseMarkdownExporter {
	return &DatabaseMarkdownExporter{
		store:            store,
		markdownExporter: NewMarkdownExporter(exportDir),
	}
}

// LoadBookNotes collects the highlights of a book translation. A chapter of
// 0 selects the whole book.
func LoadBookNotes(store HighlightLister, book, version string, chapter int) (*BookNotes, error) {
	highlights, err := store.ListByBook(book, version, chapter)
	if err != nil {
		return nil, fmt.Errorf("failed to load highlights for %s (%s): %w", book, version, err)
	}
	return &BookNotes{Book: book, Version: version, Highlights: highlights}, nil
}

// ExportBooks writes one note per book. Books without highlights are skipped
// and not counted.
func (exporter *DatabaseMarkdownExporter) ExportBooks(books []string, version string) (ExportResult, error) {
	var notes []BookNotes
	for _, book := range books {
		bookNotes, err := LoadBookNotes(exporter.store, book, version, 0)
		if err != nil {
			return ExportResult{}, err
		}
		if len(bookNotes.Highlights) == 0 {
			continue
		}
		notes = append(notes, *bookNotes)
	}

	result, err := exporter.markdownExporter.Export(notes)
	if err != nil {
		return result, fmt.Errorf("failed to export to markdown: %w", err)
	}

	log.Printf("Export completed: %d books processed, %d highlights processed, %d books failed",
		result.BooksProcessed, result.HighlightsProcessed, result.BooksFailed)

	return result, nil
}
