package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/interlinear/internal/config"
	"github.com/mrlokans/interlinear/internal/database"
	"github.com/mrlokans/interlinear/internal/database/verses"
	"github.com/mrlokans/interlinear/internal/lookup"
	"github.com/mrlokans/interlinear/internal/morphology"
	"github.com/mrlokans/interlinear/internal/tokenizer"
)

// ResolveCommand resolves a selection in a stored verse to its interlinear word
type ResolveCommand struct {
	DatabasePath string
	Book         string
	Chapter      int
	Verse        int
	Version      string
	Location     int
	Length       int

	out io.Writer
}

func NewResolveCommand() *ResolveCommand {
	return &ResolveCommand{out: os.Stdout}
}

func (cmd *ResolveCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("resolve", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.StringVar(&cmd.Book, "book", "", "Book name, e.g. Genesis (required)")
	fs.IntVar(&cmd.Chapter, "chapter", 0, "Chapter number (required)")
	fs.IntVar(&cmd.Verse, "verse", 0, "Verse number (required)")
	fs.StringVar(&cmd.Version, "version", config.DefaultSeedVersion, "Translation version")
	fs.IntVar(&cmd.Location, "location", 0, "Selection start, in characters of the verse text")
	fs.IntVar(&cmd.Length, "length", 0, "Selection length; 0 selects the word under -location")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s resolve -book <name> -chapter <n> -verse <n> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Show the original-language word behind a selection of verse text.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s resolve -book Genesis -chapter 1 -verse 1 -location 9\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s resolve -book John -chapter 1 -verse 1 -location 7 -length 9\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.Book) == "" {
		return fmt.Errorf("required flag -book not provided")
	}
	if cmd.Chapter <= 0 || cmd.Verse <= 0 {
		return fmt.Errorf("-chapter and -verse must be positive")
	}

	return nil
}

func (cmd *ResolveCommand) Run() error {
	db, err := database.NewQuietDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	verse, err := verses.NewRepository(db.DB).FindVerse(cmd.Book, cmd.Chapter, cmd.Verse, cmd.Version)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("verse %s %d:%d (%s) not found", cmd.Book, cmd.Chapter, cmd.Verse, cmd.Version)
	}
	if err != nil {
		return fmt.Errorf("failed to load verse: %w", err)
	}

	r := lookup.Range{Location: cmd.Location, Length: cmd.Length}

	fmt.Fprintf(cmd.out, "%s (%s)\n", verse.Reference(), verse.Version)
	fmt.Fprintf(cmd.out, "%s\n", verse.Text)
	if !r.IsTap() {
		fmt.Fprintf(cmd.out, "Selection: %q\n", tokenizer.Slice(verse.Text, r.Location, r.End()))
	}

	m, ok := lookup.Resolve(verse, r)
	if !ok {
		fmt.Fprintln(cmd.out, "\nNo interlinear word found for this selection")
		return nil
	}

	w := m.Word
	fmt.Fprintf(cmd.out, "\n=== %s ===\n", w.TranslatedText)
	fmt.Fprintf(cmd.out, "Original: %s", w.OriginalText)
	if w.Transliteration != "" {
		fmt.Fprintf(cmd.out, " (%s)", w.Transliteration)
	}
	fmt.Fprintln(cmd.out)
	if w.StrongsNumber != "" {
		fmt.Fprintf(cmd.out, "Strong's: %s\n", w.StrongsNumber)
	}
	if w.Gloss != "" {
		fmt.Fprintf(cmd.out, "Gloss: %s\n", w.Gloss)
	}
	if w.Morphology != "" {
		printAnnotation(cmd.out, morphology.Parse(w.Morphology))
	}
	fmt.Fprintf(cmd.out, "Matched by: %s\n", m.Strategy)
	return nil
}
