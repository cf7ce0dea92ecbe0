package mocks

import (
	"context"

	"github.com/cinebyt/cinema-ticketing/internal/domain"
)

type MockShowingRepo struct {
	CreateFunc  func(ctx context.Context, showing *domain.Showing) error
	GetByIdFunc func(ctx context.Context, id string) (*domain.Showing, error)
	GetAllFunc  func(ctx context.Context) ([]*domain.Showing, error)
}

func (m *MockShowingRepo) Create(ctx context.Context, showing *domain.Showing) error {
	return m.CreateFunc(ctx, showing)
}

func (m *MockShowingRepo) GetById(ctx context.Context, id string) (*domain.Showing, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockShowingRepo) GetAll(ctx context.Context) ([]*domain.Showing, error) {
	return m.GetAllFunc(ctx)
}
