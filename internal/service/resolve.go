package service

import (
	"github.com/Abdullahever182/travel-recomend/internal/domain"
)

// Resolve returns the places for category c, in dataset order, capped at
// domain.MaxResults. Countries are flattened into their cities: country order
// first, then city order within each country.
//
// The returned slice never aliases ds, and is empty (not nil) for
// CategoryUnknown, CategoryEmpty, or a category with no entries.
func Resolve(c domain.Category, ds domain.Dataset) []domain.Place {
	out := make([]domain.Place, 0, domain.MaxResults)

	switch c {
	case domain.CategoryBeach:
		out = appendCapped(out, ds.Beaches)
	case domain.CategoryTemple:
		out = appendCapped(out, ds.Temples)
	case domain.CategoryCountry:
		for _, country := range ds.Countries {
			out = appendCapped(out, country.Cities)
			if len(out) == domain.MaxResults {
				break
			}
		}
	}

	return out
}

// appendCapped appends from src until dst holds domain.MaxResults items.
func appendCapped(dst, src []domain.Place) []domain.Place {
	room := domain.MaxResults - len(dst)
	if room <= 0 {
		return dst
	}
	if len(src) > room {
		src = src[:room]
	}
	return append(dst, src...)
}
