package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/interlinear/internal/entities"
	"github.com/mrlokans/interlinear/internal/lookup"
	"github.com/mrlokans/interlinear/internal/tokenizer"
	"github.com/mrlokans/interlinear/internal/utils"
)

// HighlightsController manages highlights over verse text.
type HighlightsController struct {
	verses VerseGetter
	store  HighlightStore
}

func NewHighlightsController(verses VerseGetter, store HighlightStore) *HighlightsController {
	return &HighlightsController{verses: verses, store: store}
}

// CreateHighlightRequest is the request body for POST /api/highlights.
type CreateHighlightRequest struct {
	VerseID  uint                    `json:"verse_id" binding:"required"`
	Location *int                    `json:"location" binding:"required"`
	Length   int                     `json:"length"`
	Note     string                  `json:"note"`
	Color    string                  `json:"color"`
	Style    entities.HighlightStyle `json:"style"`
}

// UpdateHighlightRequest is the request body for PATCH /api/highlights/:id.
type UpdateHighlightRequest struct {
	Note  string                  `json:"note"`
	Style entities.HighlightStyle `json:"style"`
}

func validStyle(style entities.HighlightStyle) bool {
	return style == "" || style.IsValid()
}

// Create handles POST /api/highlights
// The range is resolved against the verse's words so the highlight remembers
// which word it marks. A tap highlights the whole word under it.
func (hc *HighlightsController) Create(c *gin.Context) {
	var req CreateHighlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "verse_id and location are required")
		return
	}
	if !validStyle(req.Style) {
		respondBadRequest(c, "invalid style")
		return
	}
	color := req.Color
	if color != "" {
		normalized, err := utils.NormalizeHexColor(color)
		if err != nil {
			respondBadRequest(c, "color must be a hex code")
			return
		}
		color = normalized
	}

	verse, err := hc.verses.GetVerseByID(req.VerseID)
	if err != nil {
		respondStoreError(c, err, "verse")
		return
	}

	r := lookup.Range{Location: *req.Location, Length: req.Length}
	if r.Location < 0 || r.Length < 0 || r.End() > verse.Length() {
		respondBadRequest(c, "range is outside the verse text")
		return
	}

	highlight := &entities.Highlight{
		VerseID:  verse.ID,
		Location: r.Location,
		Length:   r.Length,
		Note:     strings.TrimSpace(req.Note),
		Color:    color,
		Style:    req.Style,
		Text:     tokenizer.Slice(verse.Text, r.Location, r.End()),
	}

	m, found := lookup.Resolve(verse, r)
	if found {
		wordID := m.Word.ID
		highlight.WordID = &wordID
		highlight.MatchStrategy = string(m.Strategy)
	}
	if r.IsTap() {
		start, end, ok := tokenizer.WordAt(verse.Text, r.Location)
		if !ok {
			respondBadRequest(c, "selection does not cover a word")
			return
		}
		highlight.Location = start
		highlight.Length = end - start
		highlight.Text = tokenizer.Slice(verse.Text, start, end)
	}

	if err := hc.store.CreateHighlight(highlight); err != nil {
		respondInternalError(c, err, "create highlight")
		return
	}

	created, err := hc.store.GetHighlightByID(highlight.ID)
	if err != nil {
		respondCreated(c, highlight)
		return
	}
	respondCreated(c, created)
}

// Get handles GET /api/highlights/:id
func (hc *HighlightsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	highlight, err := hc.store.GetHighlightByID(id)
	if err != nil {
		respondStoreError(c, err, "highlight")
		return
	}
	c.JSON(http.StatusOK, highlight)
}

// ListByVerse handles GET /api/verses/:id/highlights
func (hc *HighlightsController) ListByVerse(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	list, err := hc.store.ListByVerse(id)
	if err != nil {
		respondInternalError(c, err, "list highlights")
		return
	}
	if list == nil {
		list = []entities.Highlight{}
	}
	c.JSON(http.StatusOK, gin.H{"verse_id": id, "highlights": list})
}

// Update handles PATCH /api/highlights/:id
// An empty style keeps the current one.
func (hc *HighlightsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateHighlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if !validStyle(req.Style) {
		respondBadRequest(c, "invalid style")
		return
	}

	current, err := hc.store.GetHighlightByID(id)
	if err != nil {
		respondStoreError(c, err, "highlight")
		return
	}
	style := req.Style
	if style == "" {
		style = current.Style
	}

	if err := hc.store.UpdateNote(id, strings.TrimSpace(req.Note), style); err != nil {
		respondStoreError(c, err, "highlight")
		return
	}

	updated, err := hc.store.GetHighlightByID(id)
	if err != nil {
		respondStoreError(c, err, "highlight")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/highlights/:id
func (hc *HighlightsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := hc.store.DeleteHighlight(id); err != nil {
		respondStoreError(c, err, "highlight")
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "highlight deleted"})
}
