package handler_test

import (
	"net/http"
	"time"

	"github.com/Abdullahever182/travel-recomend/internal/domain"
	"github.com/Abdullahever182/travel-recomend/internal/handler"
	"github.com/Abdullahever182/travel-recomend/internal/handler/gen"
	"github.com/Abdullahever182/travel-recomend/internal/render"
)

// mockTravelServicer is a test double for handler.TravelServicer.
// Set only the method fields your test needs.
type mockTravelServicer struct {
	search    func(raw string) domain.SearchResult
	recommend func(c domain.Category) domain.SearchResult
	status    func() domain.CatalogStatus
}

func (m *mockTravelServicer) Search(raw string) domain.SearchResult {
	return m.search(raw)
}
func (m *mockTravelServicer) Recommend(c domain.Category) domain.SearchResult {
	return m.recommend(c)
}
func (m *mockTravelServicer) Status() domain.CatalogStatus {
	return m.status()
}

// compile-time check: mockTravelServicer must satisfy handler.TravelServicer.
var _ handler.TravelServicer = (*mockTravelServicer)(nil)

// fixedNow is 2025-06-01 12:00:00 UTC.
var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// newHTTPHandler wires a Server with the given mock into the generated chi router.
// This mirrors how main.go wires it in production.
func newHTTPHandler(svc handler.TravelServicer) http.Handler {
	cards := render.NewCardRenderer(func() time.Time { return fixedNow })
	pages, err := render.NewPageRenderer(cards)
	if err != nil {
		panic(err)
	}
	srv := handler.NewServer(svc, cards, pages)
	return gen.Handler(gen.NewStrictHandler(srv, nil))
}

func kyoto() domain.Place {
	return domain.Place{Name: "Kyoto, Japan", ImageURL: "kyoto.jpg", Description: "Temples and gardens.", TimeZone: "Asia/Tokyo"}
}

func boraBora() domain.Place {
	return domain.Place{Name: "Bora Bora", ImageURL: "bora.jpg", Description: "Lagoon."}
}

func resultsFixture(c domain.Category, places ...domain.Place) domain.SearchResult {
	return domain.SearchResult{
		Keyword: domain.Keyword{Category: c, Text: c.String()},
		Outcome: domain.OutcomeResults,
		Hint:    "Showing recommendations for: " + c.String(),
		Places:  places,
	}
}
