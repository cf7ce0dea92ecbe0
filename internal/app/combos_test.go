package app

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/cinebyt/cinema-ticketing/api"
	"github.com/cinebyt/cinema-ticketing/internal/domain"
	"github.com/cinebyt/cinema-ticketing/internal/mocks"
)

type CombosTestSuite struct {
	suite.Suite
	app         *application
	productRepo *mocks.MockProductRepo
	comboRepo   *mocks.MockComboRepo
}

func (s *CombosTestSuite) SetupTest() {
	s.productRepo = &mocks.MockProductRepo{}
	s.comboRepo = &mocks.MockComboRepo{}

	s.app = newTestApplication(func(a *application) {
		a.productRepo = s.productRepo
		a.comboRepo = s.comboRepo
	})
}

func TestCombosSuite(t *testing.T) {
	suite.Run(t, new(CombosTestSuite))
}

func (s *CombosTestSuite) TestCreateProduct() {
	tests := []struct {
		name           string
		body           api.CreateProductRequest
		setupMocks     func()
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:           "should fail validation when name is missing",
			body:           api.CreateProductRequest{Price: decimal.RequireFromString("45")},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "is required",
		},
		{
			name:           "should fail validation on a negative price",
			body:           api.CreateProductRequest{Name: "Refresco", Price: decimal.RequireFromString("-1")},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must be a non-negative amount",
		},
		{
			name: "should create a product",
			body: api.CreateProductRequest{Name: "Palomitas Jumbo", Price: decimal.RequireFromString("120")},
			setupMocks: func() {
				s.productRepo.CreateFunc = func(ctx context.Context, product *domain.Product) error {
					product.ID = 1
					return nil
				}
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w := executeRequest(s.T(), s.app, http.MethodPost, "/products", tt.body)

			s.Equal(tt.wantStatus, w.Code)
			checkErrorResponse(s.T(), w, tt.wantStatus, tt.wantErrMessage)
		})
	}
}

func (s *CombosTestSuite) TestAddComboProduct() {
	popcorn := &domain.Product{ID: 1, Name: "Palomitas Jumbo", Price: decimal.RequireFromString("120")}
	soda := &domain.Product{ID: 2, Name: "Refresco Grande", Price: decimal.RequireFromString("45")}

	tests := []struct {
		name           string
		url            string
		body           api.AddComboProductRequest
		setupMocks     func()
		wantStatus     int
		wantErrMessage string
		wantTotal      string
	}{
		{
			name:           "should fail validation when product ID is missing",
			url:            "/combos/1/products",
			body:           api.AddComboProductRequest{},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "is required",
		},
		{
			name: "should fail when the product does not exist",
			url:  "/combos/1/products",
			body: api.AddComboProductRequest{ProductId: 42},
			setupMocks: func() {
				s.productRepo.GetByIdFunc = func(ctx context.Context, id int) (*domain.Product, error) {
					return nil, domain.ErrRecordNotFound
				}
			},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "product with ID 42 does not exist",
		},
		{
			name: "should fail when the combo does not exist",
			url:  "/combos/9/products",
			body: api.AddComboProductRequest{ProductId: 1},
			setupMocks: func() {
				s.productRepo.GetByIdFunc = func(ctx context.Context, id int) (*domain.Product, error) {
					return popcorn, nil
				}
				s.comboRepo.AddProductFunc = func(ctx context.Context, comboID int, product domain.Product) (*domain.Combo, error) {
					return nil, domain.ErrRecordNotFound
				}
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "should add the product and recompute the discounted total",
			url:  "/combos/1/products",
			body: api.AddComboProductRequest{ProductId: 2},
			setupMocks: func() {
				s.productRepo.GetByIdFunc = func(ctx context.Context, id int) (*domain.Product, error) {
					s.Equal(2, id)
					return soda, nil
				}
				s.comboRepo.AddProductFunc = func(ctx context.Context, comboID int, product domain.Product) (*domain.Combo, error) {
					s.Equal(1, comboID)

					combo := &domain.Combo{ID: 1, Name: "Combo Pareja", Products: []domain.Product{*popcorn}}
					combo.AddProduct(product)

					return combo, nil
				}
			},
			wantStatus: http.StatusOK,
			wantTotal:  "148.5",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w := executeRequest(s.T(), s.app, http.MethodPost, tt.url, tt.body)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantTotal != "" {
				var resp api.ComboResponse
				s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))

				s.Len(resp.Products, 2)
				s.True(resp.TotalPrice.Equal(decimal.RequireFromString(tt.wantTotal)),
					"TotalPrice = %s, want %s", resp.TotalPrice, tt.wantTotal)
			}

			checkErrorResponse(s.T(), w, tt.wantStatus, tt.wantErrMessage)
		})
	}
}

func (s *CombosTestSuite) TestGetCombo() {
	s.Run("should return an empty combo priced at zero", func() {
		s.SetupTest()

		s.comboRepo.GetByIdFunc = func(ctx context.Context, id int) (*domain.Combo, error) {
			return &domain.Combo{ID: 1, Name: "Combo Amix"}, nil
		}

		w := executeRequest(s.T(), s.app, http.MethodGet, "/combos/1", nil)

		s.Equal(http.StatusOK, w.Code)

		var resp api.ComboResponse
		s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))

		s.Empty(resp.Products)
		s.True(resp.TotalPrice.IsZero())
	})

	s.Run("should fail when the combo does not exist", func() {
		s.SetupTest()

		s.comboRepo.GetByIdFunc = func(ctx context.Context, id int) (*domain.Combo, error) {
			return nil, domain.ErrRecordNotFound
		}

		w := executeRequest(s.T(), s.app, http.MethodGet, "/combos/9", nil)

		s.Equal(http.StatusNotFound, w.Code)
	})
}
