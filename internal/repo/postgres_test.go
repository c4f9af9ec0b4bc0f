package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdullahever182/travel-recomend/internal/domain"
	"github.com/Abdullahever182/travel-recomend/internal/repo"
	"github.com/Abdullahever182/travel-recomend/testutil"
)

// newTestRepo opens a transaction against the test database and returns a
// PostgresRepo backed by that transaction. The transaction is rolled back
// when the test finishes, giving free per-test isolation.
//
// Requires TEST_DATABASE_URL to be set; TestMain applies the migrations.
func newTestRepo(t *testing.T) *repo.PostgresRepo {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return repo.NewPostgresRepo(tx)
}

func datasetFixture() domain.Dataset {
	return domain.Dataset{
		Beaches: []domain.Place{
			{Name: "Bora Bora", ImageURL: "bora.jpg", Description: "Lagoon."},
			{Name: "Copacabana", ImageURL: "copa.jpg", Description: "Rio.", TimeZone: "America/Sao_Paulo"},
		},
		Temples: []domain.Place{
			{Name: "Angkor Wat", ImageURL: "angkor.jpg", Description: "Khmer."},
		},
		Countries: []domain.Country{
			{Name: "Japan", Cities: []domain.Place{
				{Name: "Tokyo", ImageURL: "tokyo.jpg", Description: "Capital.", TimeZone: "Asia/Tokyo"},
				{Name: "Kyoto", ImageURL: "kyoto.jpg", Description: "Temples.", TimeZone: "Asia/Tokyo"},
			}},
			{Name: "Brazil", Cities: []domain.Place{
				{Name: "Rio de Janeiro", ImageURL: "rio.jpg", Description: "Carnival."},
			}},
		},
	}
}

func TestPostgresRepo_ReplaceThenLoad_RoundTrips(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	want := datasetFixture()
	require.NoError(t, r.Replace(ctx, want))

	got, err := r.Load(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPostgresRepo_Replace_OverwritesPreviousData(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Replace(ctx, datasetFixture()))
	second := domain.Dataset{
		Beaches:   []domain.Place{{Name: "Maya Bay", ImageURL: "maya.jpg", Description: "Thailand."}},
		Temples:   []domain.Place{},
		Countries: []domain.Country{},
	}
	require.NoError(t, r.Replace(ctx, second))

	got, err := r.Load(ctx)

	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestPostgresRepo_Load_Empty(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, r.Replace(ctx, domain.Dataset{}))

	got, err := r.Load(ctx)

	require.NoError(t, err)
	assert.Empty(t, got.Beaches)
	assert.Empty(t, got.Temples)
	assert.Empty(t, got.Countries)
}
