package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/interlinear/internal/exporters"
	"github.com/mrlokans/interlinear/internal/utils"
)

// ExportController renders highlights as downloadable markdown notes.
type ExportController struct {
	store          exporters.HighlightLister
	defaultVersion string
}

func NewExportController(store exporters.HighlightLister, defaultVersion string) *ExportController {
	return &ExportController{store: store, defaultVersion: defaultVersion}
}

// Markdown handles GET /api/export/markdown?book=&chapter=&version=
// chapter is optional and limits the note to one chapter.
func (ec *ExportController) Markdown(c *gin.Context) {
	book := strings.TrimSpace(c.Query("book"))
	if book == "" {
		respondBadRequest(c, "book is required")
		return
	}
	chapter, ok := parseOptionalInt(c, "chapter", 0)
	if !ok {
		return
	}
	version := strings.TrimSpace(c.Query("version"))
	if version == "" {
		version = ec.defaultVersion
	}

	notes, err := exporters.LoadBookNotes(ec.store, book, version, chapter)
	if err != nil {
		respondInternalError(c, err, "load highlights")
		return
	}
	if len(notes.Highlights) == 0 {
		respondNotFound(c, "highlights")
		return
	}

	filename := utils.SanitizeFilename(book) + ".md"
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(exporters.GenerateMarkdown(notes)))
}
