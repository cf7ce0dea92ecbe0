package repository

import (
	"context"
	"sync"

	"github.com/cinebyt/cinema-ticketing/internal/domain"
)

// MemoryProductRepository is the in-memory product catalogue consumed by
// combo composition.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products map[int]*domain.Product
	order    []int
	nextID   int
}

func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[int]*domain.Product),
		nextID:   1,
	}
}

func (r *MemoryProductRepository) Create(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	r.products[product.ID] = product
	r.order = append(r.order, product.ID)

	return nil
}

func (r *MemoryProductRepository) GetById(ctx context.Context, id int) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return product, nil
}

func (r *MemoryProductRepository) GetAll(ctx context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]*domain.Product, len(r.order))
	for i, id := range r.order {
		products[i] = r.products[id]
	}

	return products, nil
}
