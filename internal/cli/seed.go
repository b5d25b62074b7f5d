package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mrlokans/interlinear/internal/config"
	"github.com/mrlokans/interlinear/internal/database"
	"github.com/mrlokans/interlinear/internal/database/verses"
	"github.com/mrlokans/interlinear/internal/seeding"
)

// SeedCommand loads interlinear book documents into the database
type SeedCommand struct {
	File         string
	Dir          string
	DatabasePath string
	Version      string
	Force        bool
	Verbose      bool

	out io.Writer
}

func NewSeedCommand() *SeedCommand {
	return &SeedCommand{out: os.Stdout}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)

	fs.StringVar(&cmd.File, "file", "", "Path to a single book document")
	fs.StringVar(&cmd.Dir, "dir", "", "Directory of book documents (*.json)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.StringVar(&cmd.Version, "version", config.DefaultSeedVersion, "Version for documents that do not name one")
	fs.BoolVar(&cmd.Force, "force", false, "Replace words of verses that are already seeded")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Print a report line per document")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed (-file <path> | -dir <path>) [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Seed verses and interlinear words from book documents.\n\n")
		fmt.Fprintf(os.Stderr, "Verses that already have words are skipped unless -force is given.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s seed -dir ./seed\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s seed -file ./seed/genesis.json -force\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if (cmd.File == "") == (cmd.Dir == "") {
		return fmt.Errorf("exactly one of -file or -dir is required")
	}

	return nil
}

func (cmd *SeedCommand) Run() error {
	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}

	db, err := database.NewQuietDatabase(absDBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	seeder := seeding.NewSeeder(verses.NewRepository(db.DB), cmd.Version)

	fmt.Fprintf(cmd.out, "Seeding into %s\n", absDBPath)

	var reports []seeding.Report
	var seedErr error
	if cmd.File != "" {
		report, err := seeder.SeedFile(cmd.File, cmd.Force)
		if err != nil {
			return err
		}
		reports = append(reports, report)
	} else {
		if _, err := os.Stat(cmd.Dir); os.IsNotExist(err) {
			return fmt.Errorf("directory does not exist: %s", cmd.Dir)
		}
		// Partial failures still report the documents that succeeded
		reports, seedErr = seeder.SeedDirectory(cmd.Dir, cmd.Force)
	}

	var total seeding.Report
	for _, r := range reports {
		if cmd.Verbose {
			fmt.Fprintf(cmd.out, "  %s\n", r)
		}
		total.VersesCreated += r.VersesCreated
		total.VersesSeeded += r.VersesSeeded
		total.VersesSkipped += r.VersesSkipped
		total.VersesMissing += r.VersesMissing
		total.WordsInserted += r.WordsInserted
		total.InvalidOffsets += r.InvalidOffsets
		total.UnknownLanguages += r.UnknownLanguages
	}

	fmt.Fprintf(cmd.out, "\n=== Seed Summary ===\n")
	fmt.Fprintf(cmd.out, "Documents: %d\n", len(reports))
	fmt.Fprintf(cmd.out, "Verses created: %d\n", total.VersesCreated)
	fmt.Fprintf(cmd.out, "Verses seeded: %d\n", total.VersesSeeded)
	fmt.Fprintf(cmd.out, "Verses skipped: %d\n", total.VersesSkipped)
	fmt.Fprintf(cmd.out, "Verses missing: %d\n", total.VersesMissing)
	fmt.Fprintf(cmd.out, "Words inserted: %d\n", total.WordsInserted)
	if total.InvalidOffsets > 0 {
		fmt.Fprintf(cmd.out, "Words with invalid offsets: %d\n", total.InvalidOffsets)
	}
	if total.UnknownLanguages > 0 {
		fmt.Fprintf(cmd.out, "Words with unknown language: %d\n", total.UnknownLanguages)
	}

	if seedErr != nil {
		fmt.Fprintf(cmd.out, "\nErrors:\n%v\n", seedErr)
		return fmt.Errorf("seeding finished with errors")
	}
	return nil
}
