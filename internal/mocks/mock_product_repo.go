package mocks

import (
	"context"

	"github.com/cinebyt/cinema-ticketing/internal/domain"
)

type MockProductRepo struct {
	CreateFunc  func(ctx context.Context, product *domain.Product) error
	GetByIdFunc func(ctx context.Context, id int) (*domain.Product, error)
	GetAllFunc  func(ctx context.Context) ([]*domain.Product, error)
}

func (m *MockProductRepo) Create(ctx context.Context, product *domain.Product) error {
	return m.CreateFunc(ctx, product)
}

func (m *MockProductRepo) GetById(ctx context.Context, id int) (*domain.Product, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockProductRepo) GetAll(ctx context.Context) ([]*domain.Product, error) {
	return m.GetAllFunc(ctx)
}
