// Package handler implements the HTTP handlers for the travel recommendation service.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into files by surface (health.go, search.go, page.go) but
// all share the same Server struct so they can access its dependencies.
package handler

import (
	"io"

	"github.com/Abdullahever182/travel-recomend/internal/domain"
	"github.com/Abdullahever182/travel-recomend/internal/handler/gen"
	"github.com/Abdullahever182/travel-recomend/internal/render"
	"github.com/Abdullahever182/travel-recomend/internal/ui"
)

// TravelServicer defines the business operations the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without loading a dataset.
type TravelServicer interface {
	Search(raw string) domain.SearchResult
	Recommend(c domain.Category) domain.SearchResult
	Status() domain.CatalogStatus
}

// PageRenderer writes the HTML page for a UI state.
type PageRenderer interface {
	Render(w io.Writer, s ui.State) error
}

// Server implements gen.StrictServerInterface for all endpoints.
// Wire it in main.go via gen.NewStrictHandler(server, nil).
type Server struct {
	travel TravelServicer
	cards  render.Renderer
	pages  PageRenderer
}

// compile-time check: Server must satisfy the generated strict interface.
var _ gen.StrictServerInterface = (*Server)(nil)

// NewServer constructs the Server with all its dependencies.
func NewServer(travel TravelServicer, cards render.Renderer, pages PageRenderer) *Server {
	return &Server{travel: travel, cards: cards, pages: pages}
}

// derefString returns the value of s, or "" if s is nil.
func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
