package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// VersesController serves verse text and word alignments.
type VersesController struct {
	store          VerseStore
	defaultVersion string
}

func NewVersesController(store VerseStore, defaultVersion string) *VersesController {
	return &VersesController{store: store, defaultVersion: defaultVersion}
}

func (vc *VersesController) version(c *gin.Context) string {
	if v := strings.TrimSpace(c.Query("version")); v != "" {
		return v
	}
	return vc.defaultVersion
}

// ListBooks handles GET /api/books
func (vc *VersesController) ListBooks(c *gin.Context) {
	version := vc.version(c)
	books, err := vc.store.ListBooks(version)
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	if books == nil {
		books = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"version": version, "books": books})
}

// ListChapter handles GET /api/verses?book=&chapter=
func (vc *VersesController) ListChapter(c *gin.Context) {
	book := strings.TrimSpace(c.Query("book"))
	if book == "" {
		respondBadRequest(c, "book is required")
		return
	}
	chapter, ok := parseQueryInt(c, "chapter")
	if !ok {
		return
	}

	verses, err := vc.store.ListChapter(book, chapter, vc.version(c))
	if err != nil {
		respondInternalError(c, err, "list chapter")
		return
	}
	if len(verses) == 0 {
		respondNotFound(c, "chapter")
		return
	}
	c.JSON(http.StatusOK, gin.H{"book": book, "chapter": chapter, "verses": verses})
}

// FindVerse handles GET /api/verses/find?book=&chapter=&verse=
func (vc *VersesController) FindVerse(c *gin.Context) {
	book := strings.TrimSpace(c.Query("book"))
	if book == "" {
		respondBadRequest(c, "book is required")
		return
	}
	chapter, ok := parseQueryInt(c, "chapter")
	if !ok {
		return
	}
	number, ok := parseQueryInt(c, "verse")
	if !ok {
		return
	}

	verse, err := vc.store.FindVerse(book, chapter, number, vc.version(c))
	if err != nil {
		respondStoreError(c, err, "verse")
		return
	}
	c.JSON(http.StatusOK, verse)
}

// GetVerse handles GET /api/verses/:id
func (vc *VersesController) GetVerse(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	verse, err := vc.store.GetVerseByID(id)
	if err != nil {
		respondStoreError(c, err, "verse")
		return
	}
	c.JSON(http.StatusOK, verse)
}
