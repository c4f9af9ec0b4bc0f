package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdullahever182/travel-recomend/internal/domain"
	"github.com/Abdullahever182/travel-recomend/internal/service"
)

func searchFixture() domain.Dataset {
	return domain.Dataset{
		Beaches: places("beach", 8),
		Temples: []domain.Place{},
		Countries: []domain.Country{
			{Name: "Japan", Cities: []domain.Place{place("Tokyo"), place("Kyoto")}},
			{Name: "Brazil", Cities: []domain.Place{place("Rio")}},
		},
	}
}

// loadedSearch returns a SearchService over a catalog already holding ds.
func loadedSearch(t *testing.T, ds domain.Dataset) *service.SearchService {
	t.Helper()
	c := service.NewCatalog(discardLogger())
	require.NoError(t, c.Load(context.Background(), staticRepo(ds)))
	return service.NewSearchService(c)
}

func TestSearch_Results(t *testing.T) {
	svc := loadedSearch(t, searchFixture())

	got := svc.Search(" Beaches!")

	assert.Equal(t, domain.OutcomeResults, got.Outcome)
	assert.Equal(t, domain.CategoryBeach, got.Keyword.Category)
	assert.Equal(t, "Showing recommendations for: beach", got.Hint)
	assert.Len(t, got.Places, domain.MaxResults)
}

func TestSearch_Country(t *testing.T) {
	svc := loadedSearch(t, searchFixture())

	got := svc.Search("country")

	require.Equal(t, domain.OutcomeResults, got.Outcome)
	assert.Equal(t, []domain.Place{place("Tokyo"), place("Kyoto"), place("Rio")}, got.Places)
	assert.Equal(t, "Showing recommendations for: country", got.Hint)
}

func TestSearch_EmptyInput_DoesNotConsultCatalog(t *testing.T) {
	// A catalog that is still loading must not matter for blank input.
	svc := service.NewSearchService(service.NewCatalog(discardLogger()))

	got := svc.Search("   ")

	assert.Equal(t, domain.OutcomeEmptyInput, got.Outcome)
	assert.Equal(t, service.EmptyInputHint, got.Hint)
	assert.Empty(t, got.Places)
}

func TestSearch_UnknownKeyword(t *testing.T) {
	svc := loadedSearch(t, searchFixture())

	got := svc.Search("pizza")

	assert.Equal(t, domain.OutcomeNoResults, got.Outcome)
	assert.Equal(t, `No recommendations found for "pizza". Try beach, temple, or country.`, got.Hint)
	assert.Empty(t, got.Places)
}

func TestSearch_RecognizedButEmptyCategory(t *testing.T) {
	svc := loadedSearch(t, searchFixture())

	got := svc.Search("temples")

	assert.Equal(t, domain.OutcomeNoResults, got.Outcome)
	assert.Equal(t, domain.CategoryTemple, got.Keyword.Category)
	assert.Equal(t, `No recommendations found for "temple". Try beach, temple, or country.`, got.Hint)
}

func TestSearch_BeforeLoad_IsLoading(t *testing.T) {
	svc := service.NewSearchService(service.NewCatalog(discardLogger()))

	got := svc.Search("beach")

	assert.Equal(t, domain.OutcomeLoading, got.Outcome)
	assert.Equal(t, service.LoadingHint, got.Hint)
	assert.Empty(t, got.Places)
}

func TestSearch_AfterFailedLoad(t *testing.T) {
	c := service.NewCatalog(discardLogger())
	_ = c.Load(context.Background(), failingRepo(errors.New("parse error")))
	svc := service.NewSearchService(c)

	got := svc.Search("temple")

	assert.Equal(t, domain.OutcomeLoadFailed, got.Outcome)
	assert.Equal(t, service.LoadFailedHint, got.Hint)
}

func TestRecommend_KnownCategory(t *testing.T) {
	svc := loadedSearch(t, searchFixture())

	got := svc.Recommend(domain.CategoryCountry)

	assert.Equal(t, domain.OutcomeResults, got.Outcome)
	assert.Len(t, got.Places, 3)
}

func TestSearchService_Status(t *testing.T) {
	svc := loadedSearch(t, searchFixture())

	assert.Equal(t, domain.CatalogLoaded, svc.Status().State)
}
