package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinebyt/cinema-ticketing/internal/domain"
)

func TestMemoryProductRepository(t *testing.T) {
	repo := NewMemoryProductRepository()
	ctx := context.Background()

	popcorn := &domain.Product{Name: "Palomitas Jumbo", Price: decimal.RequireFromString("120")}
	soda := &domain.Product{Name: "Refresco Grande", Price: decimal.RequireFromString("45")}

	require.NoError(t, repo.Create(ctx, popcorn))
	require.NoError(t, repo.Create(ctx, soda))

	got, err := repo.GetById(ctx, popcorn.ID)
	require.NoError(t, err)
	assert.Equal(t, "Palomitas Jumbo", got.Name)

	_, err = repo.GetById(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*domain.Product{popcorn, soda}, all)
}

func TestMemoryComboRepository(t *testing.T) {
	repo := NewMemoryComboRepository()
	ctx := context.Background()

	combo := &domain.Combo{Name: "Combo Pareja"}
	require.NoError(t, repo.Create(ctx, combo))
	require.Equal(t, 1, combo.ID)

	popcorn := domain.Product{ID: 1, Name: "Palomitas Jumbo", Price: decimal.RequireFromString("120")}
	soda := domain.Product{ID: 2, Name: "Refresco Grande", Price: decimal.RequireFromString("45")}

	updated, err := repo.AddProduct(ctx, combo.ID, popcorn)
	require.NoError(t, err)
	require.Len(t, updated.Products, 1)

	updated, err = repo.AddProduct(ctx, combo.ID, soda)
	require.NoError(t, err)
	require.Len(t, updated.Products, 2)

	// 0.9 * (120 + 45)
	assert.True(t, updated.TotalPrice().Equal(decimal.RequireFromString("148.5")))

	_, err = repo.AddProduct(ctx, 42, popcorn)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)

	_, err = repo.GetById(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestMemoryComboRepository_ReadsAreIsolatedFromConcurrentAdds(t *testing.T) {
	repo := NewMemoryComboRepository()
	ctx := context.Background()

	combo := &domain.Combo{Name: "Combo Pareja"}
	require.NoError(t, repo.Create(ctx, combo))

	popcorn := domain.Product{ID: 1, Name: "Palomitas Jumbo", Price: decimal.RequireFromString("120")}

	const adds = 50

	// Readers price the combo while writers grow it; snapshots keep the two
	// from sharing a Products slice.
	var wg sync.WaitGroup
	for i := 0; i < adds; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()

			_, err := repo.AddProduct(ctx, combo.ID, popcorn)
			assert.NoError(t, err)
		}()

		go func() {
			defer wg.Done()

			got, err := repo.GetById(ctx, combo.ID)
			if assert.NoError(t, err) {
				got.TotalPrice()
			}
		}()
	}

	wg.Wait()

	got, err := repo.GetById(ctx, combo.ID)
	require.NoError(t, err)
	require.Len(t, got.Products, adds)
	assert.True(t, got.TotalPrice().Equal(decimal.NewFromInt(120*adds).Mul(decimal.RequireFromString("0.9"))))
}
