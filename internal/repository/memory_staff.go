package repository

import (
	"context"
	"sync"
	"time"

	"github.com/cinebyt/cinema-ticketing/internal/domain"
	"github.com/google/uuid"
)

// MemoryStaffRepository keeps staff records in memory, keyed by nickname.
type MemoryStaffRepository struct {
	mu    sync.RWMutex
	staff map[string]*domain.Staff
}

func NewMemoryStaffRepository() *MemoryStaffRepository {
	return &MemoryStaffRepository{
		staff: make(map[string]*domain.Staff),
	}
}

// Create registers a staff member, assigning a fresh ID and creation time.
// Nicknames are unique; a duplicate fails with ErrStaffExists.
func (r *MemoryStaffRepository) Create(ctx context.Context, staff *domain.Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.staff[staff.Nickname]; ok {
		return domain.ErrStaffExists
	}

	staff.ID = uuid.New()
	staff.CreatedAt = time.Now()
	r.staff[staff.Nickname] = staff

	return nil
}

func (r *MemoryStaffRepository) GetByNickname(ctx context.Context, nickname string) (*domain.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	staff, ok := r.staff[nickname]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return staff, nil
}
