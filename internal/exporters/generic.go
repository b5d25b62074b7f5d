package exporters

import "github.com/mrlokans/interlinear/internal/entities"

// BookNotes groups the highlights of one book translation. Highlights are
// expected in reading order with Verse loaded.
type BookNotes struct {
	Book       string
	Version    string
	Highlights []entities.Highlight
}

type NotesExporter interface {
	Export(notes []BookNotes) (ExportResult, error)
}

type ExportResult struct {
	BooksProcessed      int      `json:"books_processed"`
	HighlightsProcessed int      `json:"highlights_processed"`
	BooksFailed         int      `json:"books_failed"`
	Files               []string `json:"files,omitempty"`
}
