package handler

import (
	"context"

	"github.com/Abdullahever182/travel-recomend/internal/domain"
	"github.com/Abdullahever182/travel-recomend/internal/handler/gen"
)

// Search handles GET /api/search?q=.
// Empty input and unmatched keywords are ordinary 200 responses; the state
// field tells them apart. While the dataset is loading or after it failed to
// load the same body is returned with 503.
func (s *Server) Search(ctx context.Context, req gen.SearchRequestObject) (gen.SearchResponseObject, error) {
	res := s.travel.Search(derefString(req.Params.Q))

	body := s.searchResponse(res)
	if unavailable(res.Outcome) {
		return gen.Search503JSONResponse(body), nil
	}
	return gen.Search200JSONResponse(body), nil
}

// ListRecommendations handles GET /api/categories/{category}/recommendations.
func (s *Server) ListRecommendations(ctx context.Context, req gen.ListRecommendationsRequestObject) (gen.ListRecommendationsResponseObject, error) {
	c := domain.ParseCategory(string(req.Category))
	if c == domain.CategoryUnknown {
		return gen.ListRecommendations400JSONResponse(invalidCategoryBody(string(req.Category))), nil
	}

	res := s.travel.Recommend(c)

	body := s.searchResponse(res)
	if unavailable(res.Outcome) {
		return gen.ListRecommendations503JSONResponse(body), nil
	}
	return gen.ListRecommendations200JSONResponse(body), nil
}

// unavailable reports whether the outcome means the dataset cannot be served.
func unavailable(o domain.Outcome) bool {
	return o == domain.OutcomeLoading || o == domain.OutcomeLoadFailed
}

// --- mapping helpers --------------------------------------------------------

// searchResponse converts a domain.SearchResult into the generated response type.
func (s *Server) searchResponse(res domain.SearchResult) gen.SearchResponse {
	cards := s.cards.Render(res.Places)
	out := gen.SearchResponse{
		State:    gen.SearchState(res.Outcome),
		Category: res.Keyword.Category.String(),
		Keyword:  res.Keyword.Text,
		Hint:     res.Hint,
		Results:  make([]gen.Card, len(cards)),
	}
	for i, c := range cards {
		out.Results[i] = gen.Card{
			ImageUrl:    c.ImageURL,
			ImageAlt:    c.ImageAlt,
			Title:       c.Title,
			Description: c.Description,
		}
		if c.LocalTime != "" {
			lt := c.LocalTime
			out.Results[i].LocalTime = &lt
		}
	}
	return out
}
