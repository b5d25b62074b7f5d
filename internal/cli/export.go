package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mrlokans/interlinear/internal/config"
	"github.com/mrlokans/interlinear/internal/database"
	"github.com/mrlokans/interlinear/internal/database/highlights"
	"github.com/mrlokans/interlinear/internal/database/verses"
	"github.com/mrlokans/interlinear/internal/exporters"
)

// ExportCommand writes highlights as markdown notes, one file per book
type ExportCommand struct {
	DatabasePath string
	OutputDir    string
	Version      string
	Book         string

	out io.Writer
}

func NewExportCommand() *ExportCommand {
	return &ExportCommand{out: os.Stdout}
}

func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.StringVar(&cmd.OutputDir, "out", config.DefaultExportDir, "Directory to write notes to")
	fs.StringVar(&cmd.Version, "version", config.DefaultSeedVersion, "Translation to export")
	fs.StringVar(&cmd.Book, "book", "", "Export a single book (default: every book)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export highlights and notes as Obsidian markdown.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s export -out ~/vault/Bible\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s export -book John -version ESV\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.OutputDir == "" {
		return fmt.Errorf("-out is required")
	}

	return nil
}

func (cmd *ExportCommand) Run() error {
	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}

	db, err := database.NewQuietDatabase(absDBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	books := []string{cmd.Book}
	if cmd.Book == "" {
		books, err = verses.NewRepository(db.DB).ListBooks(cmd.Version)
		if err != nil {
			return fmt.Errorf("failed to list books: %w", err)
		}
	}

	exporter := exporters.NewDatabaseMarkdownExporter(highlights.NewRepository(db.DB), cmd.OutputDir)
	result, err := exporter.ExportBooks(books, cmd.Version)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.out, "\n=== Export Summary ===\n")
	fmt.Fprintf(cmd.out, "Books exported: %d\n", result.BooksProcessed)
	fmt.Fprintf(cmd.out, "Highlights exported: %d\n", result.HighlightsProcessed)
	for _, path := range result.Files {
		fmt.Fprintf(cmd.out, "  %s\n", path)
	}
	if result.BooksFailed > 0 {
		return fmt.Errorf("%d books failed to export", result.BooksFailed)
	}
	return nil
}
