package app

import (
	"fmt"
	"net/http"

	"github.com/cinebyt/cinema-ticketing/api"
	"github.com/cinebyt/cinema-ticketing/internal/domain"
)

func (app *application) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var input api.CreateProductRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	product := &domain.Product{
		Name:  input.Name,
		Price: input.Price,
	}

	err = app.productRepo.Create(r.Context(), product)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/products/%d", product.ID))

	err = app.writeJSON(w, http.StatusCreated, toProductResponse(*product), headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := app.productRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ProductListResponse{
		Products: make([]api.ProductResponse, len(products)),
	}
	for i, product := range products {
		resp.Products[i] = toProductResponse(*product)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toProductResponse(product domain.Product) api.ProductResponse {
	return api.ProductResponse{
		Id:    product.ID,
		Name:  product.Name,
		Price: product.Price,
	}
}
