package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/interlinear/internal/entities"
	"github.com/mrlokans/interlinear/internal/lookup"
	"github.com/mrlokans/interlinear/internal/morphology"
)

// SelectionStreamHeader identifies the client view a streamed selection
// belongs to. Requests without it are grouped by client IP.
const SelectionStreamHeader = "X-Selection-Stream"

// LookupController resolves text selections to interlinear words.
type LookupController struct {
	store      VerseGetter
	debouncers *lookup.DebounceGroup
}

func NewLookupController(store VerseGetter, debouncers *lookup.DebounceGroup) *LookupController {
	return &LookupController{store: store, debouncers: debouncers}
}

// ResolveRequest is a selection in runes of the verse text. Length 0 is a tap.
type ResolveRequest struct {
	Location *int `json:"location" binding:"required"`
	Length   int  `json:"length"`
}

// ResolveResponse carries the matched word with its decoded morphology.
type ResolveResponse struct {
	VerseID    uint                   `json:"verse_id"`
	Location   int                    `json:"location"`
	Length     int                    `json:"length"`
	Matched    bool                   `json:"matched"`
	Strategy   lookup.StrategyName    `json:"strategy,omitempty"`
	Surface    string                 `json:"surface,omitempty"`
	Word       *entities.Word         `json:"word,omitempty"`
	Morphology *morphology.Annotation `json:"morphology,omitempty"`
}

func newResolveResponse(verseID uint, r lookup.Range, m lookup.Match, ok bool) ResolveResponse {
	resp := ResolveResponse{VerseID: verseID, Location: r.Location, Length: r.Length, Matched: ok}
	if !ok {
		return resp
	}
	word := m.Word
	resp.Strategy = m.Strategy
	resp.Surface = m.Surface
	resp.Word = &word
	if strings.TrimSpace(word.Morphology) != "" {
		annotation := morphology.Parse(word.Morphology)
		resp.Morphology = &annotation
	}
	return resp
}

// bindSelection loads the verse and reads the requested range.
func (lc *LookupController) bindSelection(c *gin.Context) (*entities.Verse, lookup.Range, bool) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil, lookup.Range{}, false
	}

	var req ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "location is required")
		return nil, lookup.Range{}, false
	}

	verse, err := lc.store.GetVerseByID(id)
	if err != nil {
		respondStoreError(c, err, "verse")
		return nil, lookup.Range{}, false
	}
	return verse, lookup.Range{Location: *req.Location, Length: req.Length}, true
}

// Resolve handles POST /api/verses/:id/resolve
// An unresolvable range is not an error; it yields matched=false.
func (lc *LookupController) Resolve(c *gin.Context) {
	verse, r, ok := lc.bindSelection(c)
	if !ok {
		return
	}

	m, found := lookup.Resolve(verse, r)
	c.JSON(http.StatusOK, newResolveResponse(verse.ID, r, m, found))
}

// ResolveSelection handles POST /api/verses/:id/selection
// Used while a drag is in progress: only the latest selection of a stream
// within the debounce window is resolved, earlier ones get 409.
func (lc *LookupController) ResolveSelection(c *gin.Context) {
	verse, r, ok := lc.bindSelection(c)
	if !ok {
		return
	}

	stream := strings.TrimSpace(c.GetHeader(SelectionStreamHeader))
	if stream == "" {
		stream = c.ClientIP()
	}

	m, found, err := lc.debouncers.Resolve(c.Request.Context(), stream, verse, r)
	switch {
	case errors.Is(err, lookup.ErrSuperseded):
		respondError(c, http.StatusConflict, "selection superseded by a newer one", CodeSuperseded)
		return
	case err != nil:
		respondError(c, http.StatusRequestTimeout, "selection cancelled", CodeCancelled)
		return
	}
	c.JSON(http.StatusOK, newResolveResponse(verse.ID, r, m, found))
}
