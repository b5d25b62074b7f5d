package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/interlinear/internal/database"
	"github.com/mrlokans/interlinear/internal/database/highlights"
	"github.com/mrlokans/interlinear/internal/database/verses"
	"github.com/mrlokans/interlinear/internal/entities"
	"github.com/mrlokans/interlinear/internal/morphology"
)

const john1Document = `{
  "book": "John",
  "verses": [
    {"chapter": 1, "verse": 1,
     "text": "In the beginning was the Word, and the Word was with God, and the Word was God.",
     "words": [
       {"wordIndex": 2, "originalText": "ἀρχῇ", "transliteration": "archē", "strongsNumber": "G746",
        "gloss": "beginning", "morphology": "N-DSF", "translatedText": "beginning",
        "startPosition": 7, "endPosition": 16, "language": "greek"},
       {"wordIndex": 3, "originalText": "ἦν", "strongsNumber": "G1510", "morphology": "V-IAI-3S",
        "translatedText": "was", "startPosition": 17, "endPosition": 20, "language": "greek"}
     ]}
  ]
}`

func writeSeedDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "john.json"), []byte(john1Document), 0o644))
	return dir
}

func seedDatabase(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "cli.db")

	cmd := NewSeedCommand()
	var out bytes.Buffer
	cmd.out = &out
	require.NoError(t, cmd.ParseFlags([]string{"-dir", writeSeedDir(t), "-db", dbPath, "-verbose"}))
	require.NoError(t, cmd.Run())

	assert.Contains(t, out.String(), "Documents: 1")
	assert.Contains(t, out.String(), "Verses created: 1")
	assert.Contains(t, out.String(), "Words inserted: 2")
	assert.Contains(t, out.String(), "John (KJV)")
	return dbPath
}

func TestSeedCommand_ParseFlags(t *testing.T) {
	cmd := NewSeedCommand()
	assert.Error(t, cmd.ParseFlags([]string{}))

	cmd = NewSeedCommand()
	assert.Error(t, cmd.ParseFlags([]string{"-file", "a.json", "-dir", "seed"}))

	cmd = NewSeedCommand()
	require.NoError(t, cmd.ParseFlags([]string{"-file", "a.json", "-force", "-version", "ESV"}))
	assert.True(t, cmd.Force)
	assert.Equal(t, "ESV", cmd.Version)
}

func TestSeedCommand_RerunSkipsSeededVerses(t *testing.T) {
	dbPath := seedDatabase(t)

	cmd := NewSeedCommand()
	var out bytes.Buffer
	cmd.out = &out
	require.NoError(t, cmd.ParseFlags([]string{"-file", filepath.Join(writeSeedDir(t), "john.json"), "-db", dbPath}))
	require.NoError(t, cmd.Run())

	assert.Contains(t, out.String(), "Verses skipped: 1")
	assert.Contains(t, out.String(), "Words inserted: 0")
}

func TestSeedCommand_ReportsUnknownLanguages(t *testing.T) {
	dir := t.TempDir()
	doc := `{"book": "Ruth", "verses": [{"chapter": 1, "verse": 1, "text": "Now it came to pass",
		"words": [{"wordIndex": 1, "translatedText": "Now", "startPosition": 0, "endPosition": 3, "language": "syriac"}]}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ruth.json"), []byte(doc), 0o644))

	cmd := NewSeedCommand()
	var out bytes.Buffer
	cmd.out = &out
	require.NoError(t, cmd.ParseFlags([]string{"-dir", dir, "-db", filepath.Join(t.TempDir(), "ruth.db")}))
	require.NoError(t, cmd.Run())

	assert.Contains(t, out.String(), "Words inserted: 1")
	assert.Contains(t, out.String(), "Words with unknown language: 1")
}

func TestSeedCommand_MissingDirectory(t *testing.T) {
	cmd := NewSeedCommand()
	cmd.out = &bytes.Buffer{}
	require.NoError(t, cmd.ParseFlags([]string{"-dir", filepath.Join(t.TempDir(), "absent"), "-db", filepath.Join(t.TempDir(), "x.db")}))
	assert.ErrorContains(t, cmd.Run(), "directory does not exist")
}

func TestResolveCommand(t *testing.T) {
	dbPath := seedDatabase(t)

	cmd := NewResolveCommand()
	var out bytes.Buffer
	cmd.out = &out
	require.NoError(t, cmd.ParseFlags([]string{
		"-db", dbPath, "-book", "John", "-chapter", "1", "-verse", "1", "-location", "9",
	}))
	require.NoError(t, cmd.Run())

	text := out.String()
	assert.Contains(t, text, "John 1:1 (KJV)")
	assert.Contains(t, text, "=== beginning ===")
	assert.Contains(t, text, "Original: ἀρχῇ (archē)")
	assert.Contains(t, text, "Strong's: G746")
	assert.Contains(t, text, "Feminine Singular Dative")
	assert.Contains(t, text, "Matched by: index")
}

func TestResolveCommand_NoMatch(t *testing.T) {
	dbPath := seedDatabase(t)

	cmd := NewResolveCommand()
	var out bytes.Buffer
	cmd.out = &out
	require.NoError(t, cmd.ParseFlags([]string{
		"-db", dbPath, "-book", "John", "-chapter", "1", "-verse", "1", "-location", "35", "-length", "3",
	}))
	require.NoError(t, cmd.Run())
	assert.Contains(t, out.String(), `Selection: "the"`)
	assert.Contains(t, out.String(), "No interlinear word found")
}

func TestResolveCommand_Errors(t *testing.T) {
	cmd := NewResolveCommand()
	assert.Error(t, cmd.ParseFlags([]string{"-chapter", "1", "-verse", "1"}))

	cmd = NewResolveCommand()
	assert.Error(t, cmd.ParseFlags([]string{"-book", "John", "-chapter", "0", "-verse", "1"}))

	dbPath := seedDatabase(t)
	cmd = NewResolveCommand()
	cmd.out = &bytes.Buffer{}
	require.NoError(t, cmd.ParseFlags([]string{"-db", dbPath, "-book", "John", "-chapter", "3", "-verse", "16"}))
	assert.ErrorContains(t, cmd.Run(), "not found")
}

func TestMorphCommand(t *testing.T) {
	cmd := NewMorphCommand()
	var out bytes.Buffer
	cmd.out = &out
	require.NoError(t, cmd.ParseFlags([]string{"V-AAI-3S", "X-ABC"}))
	require.NoError(t, cmd.Run())

	text := out.String()
	assert.Contains(t, text, "Verb Aorist Active Indicative 3rd Person Singular")
	assert.Contains(t, text, "Tense:")
	assert.Contains(t, text, "X-ABC (not recognised)")
}

func TestMorphCommand_JSON(t *testing.T) {
	cmd := NewMorphCommand()
	var out bytes.Buffer
	cmd.out = &out
	require.NoError(t, cmd.ParseFlags([]string{"-json", "-tag", "Noun - Dative Feminine Singular"}))
	require.NoError(t, cmd.Run())

	var annotations []morphology.Annotation
	require.NoError(t, json.Unmarshal(out.Bytes(), &annotations))
	require.Len(t, annotations, 1)
	assert.Equal(t, "Feminine Singular Dative", annotations[0].Summary)
	assert.Equal(t, morphology.FormReadable, annotations[0].Form)
}

func TestMorphCommand_RequiresTag(t *testing.T) {
	cmd := NewMorphCommand()
	assert.Error(t, cmd.ParseFlags([]string{"-json"}))
}

func addHighlight(t *testing.T, dbPath string) {
	t.Helper()
	db, err := database.NewQuietDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	verse, err := verses.NewRepository(db.DB).FindVerse("John", 1, 1, "KJV")
	require.NoError(t, err)
	wordID := verse.Words[0].ID
	require.NoError(t, highlights.NewRepository(db.DB).CreateHighlight(&entities.Highlight{
		VerseID: verse.ID, WordID: &wordID, Location: 7, Length: 9, Text: "beginning", Note: "cf. Genesis 1:1",
	}))
}

func TestExportCommand(t *testing.T) {
	dbPath := seedDatabase(t)
	addHighlight(t, dbPath)
	outDir := t.TempDir()

	cmd := NewExportCommand()
	var out bytes.Buffer
	cmd.out = &out
	require.NoError(t, cmd.ParseFlags([]string{"-db", dbPath, "-out", outDir}))
	require.NoError(t, cmd.Run())

	assert.Contains(t, out.String(), "Books exported: 1")
	assert.Contains(t, out.String(), "Highlights exported: 1")

	content, err := os.ReadFile(filepath.Join(outDir, "KJV", "John.md"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "## John 1:1")
	assert.Contains(t, string(content), "ἀρχῇ (archē)")
	assert.Contains(t, string(content), "**Note:** cf. Genesis 1:1")
}

func TestExportCommand_NothingToExport(t *testing.T) {
	dbPath := seedDatabase(t)

	cmd := NewExportCommand()
	var out bytes.Buffer
	cmd.out = &out
	require.NoError(t, cmd.ParseFlags([]string{"-db", dbPath, "-out", t.TempDir(), "-book", "John"}))
	require.NoError(t, cmd.Run())
	assert.Contains(t, out.String(), "Books exported: 0")
}

func TestExportCommand_RequiresOutput(t *testing.T) {
	cmd := NewExportCommand()
	assert.Error(t, cmd.ParseFlags([]string{"-out", ""}))
}
