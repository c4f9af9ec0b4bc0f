package service

import (
	"errors"
	"fmt"

	"github.com/Abdullahever182/travel-recomend/internal/domain"
)

// Hint texts shown alongside search results.
const (
	DefaultHint    = "Enter a keyword and click Search to see results."
	EmptyInputHint = "Type a keyword: beach, temple, or country."
	LoadingHint    = "Data still loading... try again in a moment."
	LoadFailedHint = "Could not load travel recommendation data. Please try again later."
)

// SnapshotSource is the part of Catalog the search service depends on.
type SnapshotSource interface {
	Snapshot() (domain.Snapshot, error)
	Status() domain.CatalogStatus
}

// SearchService turns raw search text into a presentable SearchResult.
type SearchService struct {
	catalog SnapshotSource
}

// NewSearchService constructs a SearchService reading from catalog.
func NewSearchService(catalog SnapshotSource) *SearchService {
	return &SearchService{catalog: catalog}
}

// Search normalizes raw and resolves it against the loaded dataset.
// Blank input is answered without consulting the catalog.
func (s *SearchService) Search(raw string) domain.SearchResult {
	kw := Normalize(raw)
	if kw.IsEmpty() {
		return domain.SearchResult{Keyword: kw, Outcome: domain.OutcomeEmptyInput, Hint: EmptyInputHint, Places: []domain.Place{}}
	}
	return s.resolve(kw)
}

// Recommend resolves a known category directly, skipping normalization.
func (s *SearchService) Recommend(c domain.Category) domain.SearchResult {
	return s.resolve(domain.Keyword{Category: c, Text: c.String()})
}

// Status exposes the catalog lifecycle state.
func (s *SearchService) Status() domain.CatalogStatus {
	return s.catalog.Status()
}

func (s *SearchService) resolve(kw domain.Keyword) domain.SearchResult {
	res := domain.SearchResult{Keyword: kw, Places: []domain.Place{}}

	snap, err := s.catalog.Snapshot()
	switch {
	case errors.Is(err, domain.ErrLoadFailed):
		res.Outcome, res.Hint = domain.OutcomeLoadFailed, LoadFailedHint
		return res
	case err != nil:
		res.Outcome, res.Hint = domain.OutcomeLoading, LoadingHint
		return res
	}

	if kw.Recognized() {
		res.Places = Resolve(kw.Category, snap.Dataset)
	}
	if len(res.Places) == 0 {
		res.Outcome, res.Hint = domain.OutcomeNoResults, noResultsHint(kw.Text)
		return res
	}

	res.Outcome = domain.OutcomeResults
	res.Hint = "Showing recommendations for: " + kw.Category.String()
	return res
}

func noResultsHint(text string) string {
	return fmt.Sprintf("No recommendations found for %q. Try beach, temple, or country.", text)
}
