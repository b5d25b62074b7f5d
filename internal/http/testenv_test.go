package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mikestefanello/backlite"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/interlinear/internal/database"
	"github.com/mrlokans/interlinear/internal/database/highlights"
	"github.com/mrlokans/interlinear/internal/database/verses"
	"github.com/mrlokans/interlinear/internal/entities"
	"github.com/mrlokans/interlinear/internal/seeding"
)

const john11Text = "In the beginning was the Word, and the Word was with God, and the Word was God."

// Token positions of john11Text: In(0) the(1) beginning(2) was(3) the(4)
// Word,(5) and(6) the(7) Word(8) was(9) with(10) God,(11) ...
var johnWords = []entities.Word{
	{WordIndex: 0, OriginalText: "Ἐν", Transliteration: "En", StrongsNumber: "G1722", Gloss: "in", Morphology: "Preposition", TranslatedText: "In", StartPosition: 0, EndPosition: 2, Language: entities.LanguageGreek},
	{WordIndex: 2, OriginalText: "ἀρχῇ", Transliteration: "archē", StrongsNumber: "G746", Gloss: "beginning", Morphology: "N-DSF", TranslatedText: "beginning", StartPosition: 7, EndPosition: 16, Language: entities.LanguageGreek},
	{WordIndex: 3, OriginalText: "ἦν", Transliteration: "ēn", StrongsNumber: "G1510", Gloss: "was", Morphology: "V-IAI-3S", TranslatedText: "was", StartPosition: 17, EndPosition: 20, Language: entities.LanguageGreek},
	{WordIndex: 5, OriginalText: "λόγος", Transliteration: "logos", StrongsNumber: "G3056", Gloss: "word", Morphology: "N-NSM", TranslatedText: "Word", StartPosition: 25, EndPosition: 29, Language: entities.LanguageGreek},
	{WordIndex: 8, OriginalText: "λόγος", Transliteration: "logos", StrongsNumber: "G3056", Gloss: "word", Morphology: "N-NSM", TranslatedText: "Word", StartPosition: 39, EndPosition: 43, Language: entities.LanguageGreek},
	{WordIndex: 11, OriginalText: "θεόν", Transliteration: "theon", StrongsNumber: "G2316", Gloss: "God", Morphology: "N-ASM", TranslatedText: "God", StartPosition: 53, EndPosition: 56, Language: entities.LanguageGreek},
}

type testEnv struct {
	db         *database.Database
	verses     *verses.Repository
	highlights *highlights.Repository
	verse      *entities.Verse
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.NewQuietDatabase(filepath.Join(t.TempDir(), "test_http.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	verseRepo := verses.NewRepository(db.DB)
	words := make([]entities.Word, len(johnWords))
	copy(words, johnWords)
	verse := &entities.Verse{Book: "John", Chapter: 1, Number: 1, Version: "KJV", Text: john11Text, Words: words}
	require.NoError(t, verseRepo.CreateVerse(verse))

	loaded, err := verseRepo.GetVerseByID(verse.ID)
	require.NoError(t, err)

	return &testEnv{
		db:         db,
		verses:     verseRepo,
		highlights: highlights.NewRepository(db.DB),
		verse:      loaded,
	}
}

// wordAtIndex returns the stored word with the given WordIndex.
func (e *testEnv) wordAtIndex(t *testing.T, index int) entities.Word {
	t.Helper()
	for _, w := range e.verse.Words {
		if w.WordIndex == index {
			return w
		}
	}
	t.Fatalf("no word with index %d", index)
	return entities.Word{}
}

func (e *testEnv) router(cfg RouterConfig) *gin.Engine {
	cfg.Database = e.db
	cfg.Verses = e.verses
	cfg.Highlights = e.highlights
	if cfg.DefaultVersion == "" {
		cfg.DefaultVersion = "KJV"
	}
	return NewRouter(cfg)
}

func newJSONRequest(t *testing.T, method, url string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doJSON(t *testing.T, router http.Handler, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return serve(router, newJSONRequest(t, method, url, body))
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

// fakeQueue records enqueued tasks.
type fakeQueue struct {
	mu     sync.Mutex
	tasks  []backlite.Task
	status backlite.TaskStatus
	err    error
}

func (q *fakeQueue) Enqueue(task backlite.Task) (string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err != nil {
		return "", q.err
	}
	q.tasks = append(q.tasks, task)
	return "task-1", nil
}

func (q *fakeQueue) Status(ctx context.Context, taskID string) (backlite.TaskStatus, error) {
	return q.status, q.err
}

// fakeSeeder records inline seeding calls.
type fakeSeeder struct {
	docs  []*seeding.Document
	force bool
}

func (s *fakeSeeder) SeedDocument(doc *seeding.Document, force bool) (seeding.Report, error) {
	s.docs = append(s.docs, doc)
	s.force = force
	return seeding.Report{Book: doc.Book, Version: doc.Version, VersesSeeded: len(doc.Verses)}, nil
}
