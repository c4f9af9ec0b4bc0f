package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdullahever182/travel-recomend/internal/domain"
	"github.com/Abdullahever182/travel-recomend/internal/handler/gen"
)

// ---- GET /api/search -------------------------------------------------------

func TestSearch_200_Results(t *testing.T) {
	var gotRaw string
	svc := &mockTravelServicer{
		search: func(raw string) domain.SearchResult {
			gotRaw = raw
			return resultsFixture(domain.CategoryCountry, kyoto(), boraBora())
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=Countries%21", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Countries!", gotRaw)

	var resp gen.SearchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, gen.SearchStateResults, resp.State)
	assert.Equal(t, "country", resp.Category)
	assert.Equal(t, "Showing recommendations for: country", resp.Hint)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "Kyoto, Japan", resp.Results[0].Title)
	assert.Equal(t, "Kyoto, Japan", resp.Results[0].ImageAlt)
	assert.Equal(t, "kyoto.jpg", resp.Results[0].ImageUrl)
	require.NotNil(t, resp.Results[0].LocalTime)
	assert.Equal(t, "9:00:00 PM", *resp.Results[0].LocalTime)
	assert.Nil(t, resp.Results[1].LocalTime)
}

func TestSearch_200_NoResults(t *testing.T) {
	svc := &mockTravelServicer{
		search: func(string) domain.SearchResult {
			return domain.SearchResult{
				Keyword: domain.Keyword{Category: domain.CategoryUnknown, Text: "pizza"},
				Outcome: domain.OutcomeNoResults,
				Hint:    `No recommendations found for "pizza". Try beach, temple, or country.`,
				Places:  []domain.Place{},
			}
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=pizza", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp gen.SearchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, gen.SearchStateNoResults, resp.State)
	assert.Equal(t, "pizza", resp.Keyword)
	assert.NotNil(t, resp.Results)
	assert.Empty(t, resp.Results)
}

func TestSearch_200_MissingQueryIsEmptyInput(t *testing.T) {
	var gotRaw = "unset"
	svc := &mockTravelServicer{
		search: func(raw string) domain.SearchResult {
			gotRaw = raw
			return domain.SearchResult{
				Keyword: domain.Keyword{Category: domain.CategoryEmpty},
				Outcome: domain.OutcomeEmptyInput,
				Hint:    "Type a keyword: beach, temple, or country.",
				Places:  []domain.Place{},
			}
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, gotRaw)

	var resp gen.SearchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, gen.SearchStateEmptyInput, resp.State)
}

func TestSearch_503_Loading(t *testing.T) {
	svc := &mockTravelServicer{
		search: func(string) domain.SearchResult {
			return domain.SearchResult{
				Keyword: domain.Keyword{Category: domain.CategoryBeach, Text: "beach"},
				Outcome: domain.OutcomeLoading,
				Hint:    "Data still loading... try again in a moment.",
				Places:  []domain.Place{},
			}
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=beach", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp gen.SearchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, gen.SearchStateLoading, resp.State)
	assert.Equal(t, "Data still loading... try again in a moment.", resp.Hint)
}

func TestSearch_503_LoadFailed(t *testing.T) {
	svc := &mockTravelServicer{
		search: func(string) domain.SearchResult {
			return domain.SearchResult{Outcome: domain.OutcomeLoadFailed, Hint: "failed", Places: []domain.Place{}}
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=beach", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

// ---- GET /api/categories/{category}/recommendations ------------------------

func TestListRecommendations_200(t *testing.T) {
	var got domain.Category
	svc := &mockTravelServicer{
		recommend: func(c domain.Category) domain.SearchResult {
			got = c
			return resultsFixture(c, boraBora())
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/categories/beach/recommendations", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.CategoryBeach, got)

	var resp gen.SearchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Bora Bora", resp.Results[0].Title)
}

func TestListRecommendations_400_UnknownCategory(t *testing.T) {
	svc := &mockTravelServicer{
		recommend: func(domain.Category) domain.SearchResult {
			t.Fatal("Recommend must not be called for an unknown category")
			return domain.SearchResult{}
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/categories/pizza/recommendations", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp gen.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "invalid_category", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "pizza")
}

func TestListRecommendations_503_Loading(t *testing.T) {
	svc := &mockTravelServicer{
		recommend: func(c domain.Category) domain.SearchResult {
			return domain.SearchResult{Keyword: domain.Keyword{Category: c}, Outcome: domain.OutcomeLoading, Places: []domain.Place{}}
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/categories/temple/recommendations", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
