package http

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/interlinear/internal/lookup"
	"github.com/mrlokans/interlinear/internal/morphology"
)

func TestLookupController_Resolve(t *testing.T) {
	env := setupTestEnv(t)
	router := env.router(RouterConfig{})
	url := fmt.Sprintf("/api/verses/%d/resolve", env.verse.ID)

	tests := []struct {
		name         string
		location     int
		length       int
		wantMatched  bool
		wantIndex    int
		wantStrategy lookup.StrategyName
	}{
		{"tap inside word with trailing comma", 27, 0, true, 5, lookup.StrategyIndex},
		{"tap on second occurrence", 40, 0, true, 8, lookup.StrategyIndex},
		{"drag over word", 7, 9, true, 2, lookup.StrategyIndex},
		{"tap on space", 2, 0, false, 0, ""},
		{"tap on word without alignment", 4, 0, false, 0, ""},
		{"location past end", 500, 0, false, 0, ""},
		{"negative location", -1, 3, false, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, "POST", url, map[string]int{"location": tt.location, "length": tt.length})
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			resp := decode[ResolveResponse](t, w)
			assert.Equal(t, env.verse.ID, resp.VerseID)
			assert.Equal(t, tt.wantMatched, resp.Matched)
			if !tt.wantMatched {
				assert.Nil(t, resp.Word)
				return
			}
			require.NotNil(t, resp.Word)
			assert.Equal(t, env.wordAtIndex(t, tt.wantIndex).ID, resp.Word.ID)
			assert.Equal(t, tt.wantStrategy, resp.Strategy)
		})
	}
}

func TestLookupController_Resolve_IncludesMorphology(t *testing.T) {
	env := setupTestEnv(t)
	router := env.router(RouterConfig{})

	w := doJSON(t, router, "POST", fmt.Sprintf("/api/verses/%d/resolve", env.verse.ID),
		map[string]int{"location": 26, "length": 0})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[ResolveResponse](t, w)
	require.True(t, resp.Matched)
	assert.Equal(t, "Word", resp.Surface)
	require.NotNil(t, resp.Morphology)
	assert.Equal(t, morphology.Noun, resp.Morphology.PartOfSpeech)
	assert.Equal(t, "Masculine Singular Nominative", resp.Morphology.Summary)
}

func TestLookupController_Resolve_BadRequests(t *testing.T) {
	env := setupTestEnv(t)
	router := env.router(RouterConfig{})

	w := doJSON(t, router, "POST", fmt.Sprintf("/api/verses/%d/resolve", env.verse.ID), map[string]int{"length": 2})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, "POST", "/api/verses/abc/resolve", map[string]int{"location": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, "POST", "/api/verses/999/resolve", map[string]int{"location": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLookupController_ResolveSelection_Debounces(t *testing.T) {
	env := setupTestEnv(t)
	router := env.router(RouterConfig{DebounceWindow: 200 * time.Millisecond})
	url := fmt.Sprintf("/api/verses/%d/selection", env.verse.ID)

	var wg sync.WaitGroup
	var firstCode int
	wg.Add(1)
	go func() {
		defer wg.Done()
		w := doJSON(t, router, "POST", url, map[string]int{"location": 7, "length": 3})
		firstCode = w.Code
	}()

	time.Sleep(50 * time.Millisecond)
	w := doJSON(t, router, "POST", url, map[string]int{"location": 7, "length": 9})
	wg.Wait()

	assert.Equal(t, http.StatusConflict, firstCode)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[ResolveResponse](t, w)
	assert.True(t, resp.Matched)
	assert.Equal(t, 9, resp.Length)
	assert.Equal(t, env.wordAtIndex(t, 2).ID, resp.Word.ID)
}

func TestLookupController_ResolveSelection_SeparateStreams(t *testing.T) {
	env := setupTestEnv(t)
	debouncers := lookup.NewDebounceGroup(100 * time.Millisecond)
	controller := NewLookupController(env.verses, debouncers)
	router := env.router(RouterConfig{})
	router.POST("/test/verses/:id/selection", controller.ResolveSelection)

	url := fmt.Sprintf("/test/verses/%d/selection", env.verse.ID)
	streams := []string{"left-pane", "right-pane"}
	codes := make([]int, len(streams))
	var wg sync.WaitGroup
	for i, stream := range streams {
		req := newJSONRequest(t, "POST", url, map[string]int{"location": 40})
		req.Header.Set(SelectionStreamHeader, stream)
		wg.Add(1)
		go func(i int, req *http.Request) {
			defer wg.Done()
			codes[i] = serve(router, req).Code
		}(i, req)
	}
	wg.Wait()

	assert.Equal(t, []int{http.StatusOK, http.StatusOK}, codes, "streams never supersede each other")
	assert.Equal(t, 0, debouncers.Len(), "finished streams are not retained")
}

func TestLookupController_ResolveSelection_StreamsAreReleased(t *testing.T) {
	env := setupTestEnv(t)
	debouncers := lookup.NewDebounceGroup(time.Millisecond)
	controller := NewLookupController(env.verses, debouncers)
	router := env.router(RouterConfig{})
	router.POST("/test/verses/:id/selection", controller.ResolveSelection)

	url := fmt.Sprintf("/test/verses/%d/selection", env.verse.ID)
	for i := 0; i < 200; i++ {
		req := newJSONRequest(t, "POST", url, map[string]int{"location": 7, "length": 9})
		req.Header.Set(SelectionStreamHeader, fmt.Sprintf("view-%d", i))
		require.Equal(t, http.StatusOK, serve(router, req).Code)
	}
	assert.Equal(t, 0, debouncers.Len())
}
