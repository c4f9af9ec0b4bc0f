package service_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdullahever182/travel-recomend/internal/domain"
	"github.com/Abdullahever182/travel-recomend/internal/service"
)

func place(name string) domain.Place {
	return domain.Place{Name: name, ImageURL: name + ".jpg", Description: name + " description"}
}

func places(prefix string, n int) []domain.Place {
	out := make([]domain.Place, n)
	for i := range out {
		out[i] = place(fmt.Sprintf("%s-%d", prefix, i))
	}
	return out
}

func TestResolve_Beach_IsIdentity(t *testing.T) {
	ds := domain.Dataset{Beaches: places("beach", 3)}

	got := service.Resolve(domain.CategoryBeach, ds)

	assert.Equal(t, ds.Beaches, got)
}

func TestResolve_Temple(t *testing.T) {
	ds := domain.Dataset{Beaches: places("beach", 2), Temples: places("temple", 2)}

	got := service.Resolve(domain.CategoryTemple, ds)

	assert.Equal(t, ds.Temples, got)
}

func TestResolve_Country_FlattensCitiesInOrder(t *testing.T) {
	a, b, c := place("A"), place("B"), place("C")
	ds := domain.Dataset{Countries: []domain.Country{
		{Name: "first", Cities: []domain.Place{a, b}},
		{Name: "second", Cities: []domain.Place{c}},
	}}

	got := service.Resolve(domain.CategoryCountry, ds)

	assert.Equal(t, []domain.Place{a, b, c}, got)
}

func TestResolve_Country_SkipsCountriesWithoutCities(t *testing.T) {
	ds := domain.Dataset{Countries: []domain.Country{
		{Name: "empty"},
		{Name: "full", Cities: []domain.Place{place("X")}},
	}}

	got := service.Resolve(domain.CategoryCountry, ds)

	assert.Equal(t, []domain.Place{place("X")}, got)
}

func TestResolve_CapsAtMaxResults(t *testing.T) {
	ds := domain.Dataset{Beaches: places("beach", 10)}

	got := service.Resolve(domain.CategoryBeach, ds)

	require.Len(t, got, domain.MaxResults)
	assert.Equal(t, ds.Beaches[:domain.MaxResults], got)
}

func TestResolve_Country_CapsAcrossCountries(t *testing.T) {
	ds := domain.Dataset{Countries: []domain.Country{
		{Cities: places("a", 4)},
		{Cities: places("b", 4)},
		{Cities: places("c", 4)},
	}}

	got := service.Resolve(domain.CategoryCountry, ds)

	require.Len(t, got, domain.MaxResults)
	assert.Equal(t, "a-0", got[0].Name)
	assert.Equal(t, "a-3", got[3].Name)
	assert.Equal(t, "b-1", got[5].Name)
}

func TestResolve_UnknownAndEmpty_ReturnEmptySlice(t *testing.T) {
	ds := domain.Dataset{Beaches: places("beach", 2)}

	for _, c := range []domain.Category{domain.CategoryUnknown, domain.CategoryEmpty} {
		got := service.Resolve(c, ds)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestResolve_EmptyCategoryList(t *testing.T) {
	got := service.Resolve(domain.CategoryTemple, domain.Dataset{})

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestResolve_DoesNotAliasDataset(t *testing.T) {
	ds := domain.Dataset{Beaches: places("beach", 2)}

	got := service.Resolve(domain.CategoryBeach, ds)
	got[0].Name = "mutated"

	assert.Equal(t, "beach-0", ds.Beaches[0].Name)
}
