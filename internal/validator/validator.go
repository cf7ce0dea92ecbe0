package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var sortColumns = map[string]bool{
	"id":        true,
	"title":     true,
	"duration":  true,
	"-id":       true,
	"-title":    true,
	"-duration": true,
}

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("price", validatePrice)
	validator.RegisterValidation("film_sort", validateFilmSort)

	return validator
}

func validatePrice(fl validator.FieldLevel) bool {
	price, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}

	return !price.IsNegative()
}

func validateFilmSort(fl validator.FieldLevel) bool {
	return sortColumns[fl.Field().String()]
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", err.Param())
	case "price":
		return "must be a non-negative amount"
	case "film_sort":
		return "must be one of id, title or duration, optionally prefixed with - for descending order"
	default:
		return "is invalid"
	}
}
