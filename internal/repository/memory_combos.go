package repository

import (
	"context"
	"sync"

	"github.com/cinebyt/cinema-ticketing/internal/domain"
)

// MemoryComboRepository keeps combos in memory. Stored combos never leave
// the repository: every method hands out a snapshot taken under the lock, so
// callers can read a combo while another request appends products to it.
type MemoryComboRepository struct {
	mu     sync.RWMutex
	combos map[int]*domain.Combo
	nextID int
}

func NewMemoryComboRepository() *MemoryComboRepository {
	return &MemoryComboRepository{
		combos: make(map[int]*domain.Combo),
		nextID: 1,
	}
}

func (r *MemoryComboRepository) Create(ctx context.Context, combo *domain.Combo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	combo.ID = r.nextID
	r.nextID++
	r.combos[combo.ID] = snapshotCombo(combo)

	return nil
}

func (r *MemoryComboRepository) GetById(ctx context.Context, id int) (*domain.Combo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	combo, ok := r.combos[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return snapshotCombo(combo), nil
}

// AddProduct appends the product to the combo's component list and returns
// the updated combo.
func (r *MemoryComboRepository) AddProduct(
	ctx context.Context,
	comboID int,
	product domain.Product,
) (*domain.Combo, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	combo, ok := r.combos[comboID]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	combo.AddProduct(product)

	return snapshotCombo(combo), nil
}

// snapshotCombo must be called with the lock held.
func snapshotCombo(combo *domain.Combo) *domain.Combo {
	out := *combo
	out.Products = append([]domain.Product(nil), combo.Products...)

	return &out
}
