package mocks

import (
	"context"

	"github.com/cinebyt/cinema-ticketing/internal/domain"
)

type MockFilmRepo struct {
	CreateFunc  func(ctx context.Context, film *domain.Film) error
	GetByIdFunc func(ctx context.Context, id int) (*domain.Film, error)
	GetAllFunc  func(ctx context.Context, pagination domain.Pagination) ([]*domain.Film, *domain.Metadata, error)
}

func (m *MockFilmRepo) Create(ctx context.Context, film *domain.Film) error {
	return m.CreateFunc(ctx, film)
}

func (m *MockFilmRepo) GetById(ctx context.Context, id int) (*domain.Film, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockFilmRepo) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]*domain.Film, *domain.Metadata, error) {

	return m.GetAllFunc(ctx, pagination)
}
