package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/cinebyt/cinema-ticketing/api"
	"github.com/cinebyt/cinema-ticketing/internal/domain"
)

func (app *application) CreateCombo(w http.ResponseWriter, r *http.Request) {
	var input api.CreateComboRequest

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

	combo := &domain.Combo{Name: input.Name}

	err = app.comboRepo.Create(r.Context(), combo)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/combos/%d", combo.ID))

	err = app.writeJSON(w, http.StatusCreated, toComboResponse(combo), headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetCombo(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIntParam(r, "comboID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	combo, err := app.comboRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toComboResponse(combo), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) AddComboProduct(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIntParam(r, "comboID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.AddComboProductRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	product, err := app.productRepo.GetById(r.Context(), input.ProductId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.badRequestResponse(w, r, fmt.Errorf("product with ID %d does not exist", input.ProductId))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	combo, err := app.comboRepo.AddProduct(r.Context(), id, *product)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toComboResponse(combo), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toComboResponse(combo *domain.Combo) api.ComboResponse {
	products := make([]api.ProductResponse, len(combo.Products))
	for i, product := range combo.Products {
		products[i] = toProductResponse(product)
	}

	return api.ComboResponse{
		Id:         combo.ID,
		Name:       combo.Name,
		Products:   products,
		TotalPrice: combo.TotalPrice(),
	}
}
