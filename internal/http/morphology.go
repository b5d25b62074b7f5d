package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/interlinear/internal/morphology"
)

const defaultStrongsLimit = 50

// WordsController serves individual words and their grammar.
type WordsController struct {
	store VerseStore
}

func NewWordsController(store VerseStore) *WordsController {
	return &WordsController{store: store}
}

// ParseTag handles GET /api/morphology?tag=
// Unknown tags are returned as-is with no details rather than rejected.
func (wc *WordsController) ParseTag(c *gin.Context) {
	tag := c.Query("tag")
	if strings.TrimSpace(tag) == "" {
		respondBadRequest(c, "tag is required")
		return
	}
	c.JSON(http.StatusOK, morphology.Parse(tag))
}

// GetWord handles GET /api/words/:id
func (wc *WordsController) GetWord(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	word, err := wc.store.GetWordByID(id)
	if err != nil {
		respondStoreError(c, err, "word")
		return
	}
	c.JSON(http.StatusOK, word)
}

// GetWordMorphology handles GET /api/words/:id/morphology
func (wc *WordsController) GetWordMorphology(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	word, err := wc.store.GetWordByID(id)
	if err != nil {
		respondStoreError(c, err, "word")
		return
	}
	if strings.TrimSpace(word.Morphology) == "" {
		respondNotFound(c, "morphology")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"word_id":    word.ID,
		"morphology": morphology.Parse(word.Morphology),
	})
}

// FindByStrongs handles GET /api/words?strongs=&limit=
func (wc *WordsController) FindByStrongs(c *gin.Context) {
	strongs := strings.ToUpper(strings.TrimSpace(c.Query("strongs")))
	if strongs == "" {
		respondBadRequest(c, "strongs is required")
		return
	}
	limit, ok := parseOptionalInt(c, "limit", defaultStrongsLimit)
	if !ok {
		return
	}

	words, err := wc.store.FindWordsByStrongs(strongs, limit)
	if err != nil {
		respondInternalError(c, err, "find words by strongs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"strongs": strongs, "count": len(words), "words": words})
}
