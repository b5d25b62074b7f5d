package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/interlinear/internal/morphology"
)

// MorphCommand decodes morphology tags without touching the database
type MorphCommand struct {
	Tags []string
	JSON bool

	out io.Writer
}

func NewMorphCommand() *MorphCommand {
	return &MorphCommand{out: os.Stdout}
}

func (cmd *MorphCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("morph", flag.ExitOnError)

	var tag string
	fs.StringVar(&tag, "tag", "", "Morphology tag to decode; further tags may follow as arguments")
	fs.BoolVar(&cmd.JSON, "json", false, "Print annotations as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s morph [-json] <tag> [tag...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Decode compact (V-AAI-3S) or readable (Noun - Dative Feminine Singular) tags.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s morph V-AAI-3S N-DSF\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s morph -tag \"Noun - Dative Feminine Singular\" -json\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	cmd.Tags = nil
	if tag != "" {
		cmd.Tags = append(cmd.Tags, tag)
	}
	cmd.Tags = append(cmd.Tags, fs.Args()...)

	if len(cmd.Tags) == 0 {
		return fmt.Errorf("at least one tag is required")
	}
	return nil
}

func (cmd *MorphCommand) Run() error {
	annotations := make([]morphology.Annotation, 0, len(cmd.Tags))
	for _, tag := range cmd.Tags {
		annotations = append(annotations, morphology.Parse(tag))
	}

	if cmd.JSON {
		enc := json.NewEncoder(cmd.out)
		enc.SetIndent("", "  ")
		return enc.Encode(annotations)
	}

	for i, a := range annotations {
		if i > 0 {
			fmt.Fprintln(cmd.out)
		}
		fmt.Fprintf(cmd.out, "%s\n", a.Raw)
		printAnnotation(cmd.out, a)
	}
	return nil
}

func printAnnotation(out io.Writer, a morphology.Annotation) {
	if a.IsUnknown() {
		fmt.Fprintf(out, "Morphology: %s (not recognised)\n", a.Raw)
		return
	}
	fmt.Fprintf(out, "Morphology: %s %s\n", a.PartOfSpeech, a.Summary)
	for _, d := range a.Details {
		fmt.Fprintf(out, "  %-7s %-14s %s\n", d.Term+":", d.Value, d.Explanation)
	}
}
