package handler

import (
	"fmt"

	"github.com/Abdullahever182/travel-recomend/internal/handler/gen"
)

// invalidCategoryBody returns an ErrorResponse for a category path segment
// that is not beach, temple or country.
func invalidCategoryBody(category string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{
		Code:    "invalid_category",
		Message: fmt.Sprintf("unknown category %q: use beach, temple, or country", category),
	}}
}
