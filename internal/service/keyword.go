// Package service contains the business logic for the travel recommendation service.
// Services normalize input, enforce the dataset lifecycle, and resolve
// recommendations. No I/O lives here; the dataset arrives through repo.DatasetRepo.
package service

import (
	"strings"

	"github.com/Abdullahever182/travel-recomend/internal/domain"
)

// keywordTable maps accepted spellings to their category.
var keywordTable = map[string]domain.Category{
	"beach":     domain.CategoryBeach,
	"beaches":   domain.CategoryBeach,
	"temple":    domain.CategoryTemple,
	"temples":   domain.CategoryTemple,
	"country":   domain.CategoryCountry,
	"countries": domain.CategoryCountry,
}

// Normalize maps free-text search input to a Keyword.
//
// Input is trimmed and lowercased, then looked up in the keyword table.
// On a miss every character outside a-z is removed and the lookup is retried,
// so "beach!" and " Temples." still match. Input with no usable letters
// yields CategoryEmpty; anything else unmatched yields CategoryUnknown
// carrying the cleaned text.
func Normalize(raw string) domain.Keyword {
	k := strings.ToLower(strings.TrimSpace(raw))
	if k == "" {
		return domain.Keyword{Category: domain.CategoryEmpty}
	}

	if c, ok := keywordTable[k]; ok {
		return domain.Keyword{Category: c, Text: c.String()}
	}

	cleaned := stripNonLetters(k)
	if cleaned == "" {
		return domain.Keyword{Category: domain.CategoryEmpty}
	}
	if c, ok := keywordTable[cleaned]; ok {
		return domain.Keyword{Category: c, Text: c.String()}
	}

	return domain.Keyword{Category: domain.CategoryUnknown, Text: cleaned}
}

// stripNonLetters keeps only the ASCII letters a-z. s must already be lowercase.
func stripNonLetters(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'a' && c <= 'z' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
