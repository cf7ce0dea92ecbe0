package repository

import (
	"context"
	"sync"

	"github.com/cinebyt/cinema-ticketing/internal/domain"
)

// MemoryShowingRepository is the in-memory showing catalogue. Admission of
// a new showing and the schedule-conflict check run under the same lock, so
// two concurrent requests for overlapping times in the same room can never
// both succeed.
type MemoryShowingRepository struct {
	mu       sync.RWMutex
	showings map[string]*domain.Showing
	order    []string
}

func NewMemoryShowingRepository() *MemoryShowingRepository {
	return &MemoryShowingRepository{
		showings: make(map[string]*domain.Showing),
	}
}

// Create admits the showing into the catalogue. It fails with
// ErrScheduleConflict when the showing overlaps an existing one in the same
// room, and with ErrShowingExists on a duplicate identifier. Admission is
// all-or-nothing.
func (r *MemoryShowingRepository) Create(ctx context.Context, showing *domain.Showing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.showings[showing.ID]; ok {
		return domain.ErrShowingExists
	}

	if conflict := domain.FindConflict(r.all(), showing); conflict != nil {
		return domain.ErrScheduleConflict
	}

	r.showings[showing.ID] = showing
	r.order = append(r.order, showing.ID)

	return nil
}

func (r *MemoryShowingRepository) GetById(ctx context.Context, id string) (*domain.Showing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	showing, ok := r.showings[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return showing, nil
}

// GetAll returns the catalogue in admission order.
func (r *MemoryShowingRepository) GetAll(ctx context.Context) ([]*domain.Showing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.all(), nil
}

// all must be called with the lock held.
func (r *MemoryShowingRepository) all() []*domain.Showing {
	showings := make([]*domain.Showing, len(r.order))
	for i, id := range r.order {
		showings[i] = r.showings[id]
	}

	return showings
}
