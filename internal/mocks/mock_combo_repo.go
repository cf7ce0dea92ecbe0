package mocks

import (
	"context"

	"github.com/cinebyt/cinema-ticketing/internal/domain"
)

type MockComboRepo struct {
	CreateFunc     func(ctx context.Context, combo *domain.Combo) error
	GetByIdFunc    func(ctx context.Context, id int) (*domain.Combo, error)
	AddProductFunc func(ctx context.Context, comboID int, product domain.Product) (*domain.Combo, error)
}

func (m *MockComboRepo) Create(ctx context.Context, combo *domain.Combo) error {
	return m.CreateFunc(ctx, combo)
}

func (m *MockComboRepo) GetById(ctx context.Context, id int) (*domain.Combo, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockComboRepo) AddProduct(
	ctx context.Context,
	comboID int,
	product domain.Product) (*domain.Combo, error) {

	return m.AddProductFunc(ctx, comboID, product)
}
