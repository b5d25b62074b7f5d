package exporters

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mrlokans/interlinear/internal/entities"
	"github.com/mrlokans/interlinear/internal/morphology"
	"github.com/mrlokans/interlinear/internal/utils"
)

// MarkdownExporter writes one Obsidian note per book translation under
// ExportDir/<version>/<book>.md.
type MarkdownExporter struct {
	ExportDir string
	Result    ExportResult
}

func NewMarkdownExporter(exportDir string) *MarkdownExporter {
	return &MarkdownExporter{
		ExportDir: exportDir,
		Result:    ExportResult{},
	}
}

func (exporter *MarkdownExporter) exportBook(notes *BookNotes) (string, error) {
	versionDir := filepath.Join(exporter.ExportDir, utils.SanitizeFilename(notes.Version))
	if err := os.MkdirAll(versionDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	outputPath := filepath.Join(versionDir, utils.SanitizeFilename(notes.Book)+".md")
	if err := os.WriteFile(outputPath, []byte(GenerateMarkdown(notes)), 0644); err != nil {
		return "", err
	}
	return outputPath, nil
}

func quoteYAML(value string) string {
	return fmt.Sprintf("\"%s\"", strings.ReplaceAll(value, "\"", "\\\""))
}

// GenerateMarkdown renders the highlights of a book as an Obsidian note with
// one section per verse and one callout per highlight.
func GenerateMarkdown(notes *BookNotes) string {
	var builder strings.Builder

	currentDateTime := time.Now().Format("2006-01-02")
	fmt.Fprintf(&builder, "---\n")
	fmt.Fprintf(&builder, "content_type: verse_highlights\n")
	fmt.Fprintf(&builder, "created_at: %s\n", currentDateTime)
	fmt.Fprintf(&builder, "book: %s\n", quoteYAML(notes.Book))
	fmt.Fprintf(&builder, "version: %s\n", quoteYAML(notes.Version))
	fmt.Fprintf(&builder, "tags: [highlights, interlinear]\n")
	fmt.Fprintf(&builder, "---\n\n")
	fmt.Fprintf(&builder, "# %s (%s)\n\n", notes.Book, notes.Version)

	var lastVerse uint
	for _, highlight := range notes.Highlights {
		if highlight.VerseID != lastVerse {
			fmt.Fprintf(&builder, "## %s\n\n", highlight.Verse.Reference())
			fmt.Fprintf(&builder, "%s\n\n", highlight.Verse.Text)
			lastVerse = highlight.VerseID
		}
		writeHighlight(&builder, &highlight)
	}

	return builder.String()
}

func writeHighlight(builder *strings.Builder, highlight *entities.Highlight) {
	callout := utils.HighlightCalloutType(string(highlight.Style), highlight.Color)
	fmt.Fprintf(builder, "> [!%s] %s\n", callout, strings.TrimSpace(highlight.Text))

	if w := highlight.Word; w != nil {
		original := w.OriginalText
		if w.Transliteration != "" {
			original = fmt.Sprintf("%s (%s)", original, w.Transliteration)
		}
		if original != "" {
			fmt.Fprintf(builder, "> **%s**", original)
			if w.StrongsNumber != "" {
				fmt.Fprintf(builder, " %s", w.StrongsNumber)
			}
			fmt.Fprintf(builder, "\n")
		}
		if w.Gloss != "" {
			fmt.Fprintf(builder, "> *%s*\n", w.Gloss)
		}
		if w.Morphology != "" {
			annotation := morphology.Parse(w.Morphology)
			if !annotation.IsUnknown() {
				description := strings.TrimSpace(string(annotation.PartOfSpeech) + " " + annotation.Summary)
				fmt.Fprintf(builder, "> %s\n", description)
			}
		}
	}
	fmt.Fprintf(builder, "\n")

	if highlight.Note != "" {
		fmt.Fprintf(builder, "**Note:** %s\n\n", highlight.Note)
	}
}

func (exporter *MarkdownExporter) Export(notes []BookNotes) (ExportResult, error) {
	// Reset result state for each export
	exporter.Result = ExportResult{}

	if err := os.MkdirAll(exporter.ExportDir, 0755); err != nil {
		return ExportResult{}, fmt.Errorf("failed to create export directory: %w", err)
	}

	for i := range notes {
		path, err := exporter.exportBook(&notes[i])
		if err != nil {
			log.Printf("Failed to export %s (%s): %v", notes[i].Book, notes[i].Version, err)
			exporter.Result.BooksFailed++
			continue
		}
		exporter.Result.BooksProcessed++
		exporter.Result.HighlightsProcessed += len(notes[i].Highlights)
		exporter.Result.Files = append(exporter.Result.Files, path)
	}

	return exporter.Result, nil
}

var _ NotesExporter = (*MarkdownExporter)(nil)
