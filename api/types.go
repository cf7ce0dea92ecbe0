// Package api defines the request and response types of the HTTP surface.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

type CreateFilmRequest struct {
	Title           string `json:"title" validate:"required,max=200"`
	Genre           string `json:"genre" validate:"required,max=100"`
	Synopsis        string `json:"synopsis" validate:"max=2000"`
	DurationMinutes int    `json:"durationMinutes" validate:"required,gt=0,lte=600"`
}

type FilmResponse struct {
	Id              int    `json:"id"`
	Title           string `json:"title"`
	Genre           string `json:"genre"`
	Synopsis        string `json:"synopsis,omitempty"`
	Duration        string `json:"duration"`
	DurationMinutes int    `json:"durationMinutes"`
}

type GetFilmsParams struct {
	Page     *int    `validate:"omitempty,gt=0"`
	PageSize *int    `validate:"omitempty,gt=0,lte=100"`
	Term     *string `validate:"omitempty,max=200"`
	Sort     *string `validate:"omitempty,film_sort"`
}

type FilmListResponse struct {
	Films    []FilmResponse `json:"films"`
	Metadata *Metadata      `json:"metadata,omitempty"`
}

type CreateShowingRequest struct {
	FilmId    int       `json:"filmId" validate:"required,gt=0"`
	RoomType  string    `json:"roomType" validate:"required,max=100"`
	StartTime time.Time `json:"startTime" validate:"required"`
}

type ShowingResponse struct {
	Id        string    `json:"id"`
	FilmId    int       `json:"filmId"`
	FilmTitle string    `json:"filmTitle"`
	RoomName  string    `json:"roomName"`
	StartTime time.Time `json:"startTime"`
	Capacity  int       `json:"capacity"`
	Warnings  []string  `json:"warnings,omitempty"`
}

type ShowingListResponse struct {
	Showings []ShowingResponse `json:"showings"`
}

type Seat struct {
	Row      string `json:"row"`
	Number   int    `json:"number"`
	Occupied bool   `json:"occupied"`
}

type SeatRow struct {
	Row   string `json:"row"`
	Seats []Seat `json:"seats"`
}

type SeatMapResponse struct {
	ShowingId string    `json:"showingId"`
	RoomName  string    `json:"roomName"`
	Capacity  int       `json:"capacity"`
	SeatRows  []SeatRow `json:"seatRows"`
}

type UpdateSeatRequest struct {
	Occupied *bool `json:"occupied" validate:"required"`
}

type CreateProductRequest struct {
	Name  string          `json:"name" validate:"required,max=100"`
	Price decimal.Decimal `json:"price" validate:"price"`
}

type ProductResponse struct {
	Id    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

type CreateComboRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type AddComboProductRequest struct {
	ProductId int `json:"productId" validate:"required,gt=0"`
}

type ComboResponse struct {
	Id         int               `json:"id"`
	Name       string            `json:"name"`
	Products   []ProductResponse `json:"products"`
	TotalPrice decimal.Decimal   `json:"totalPrice"`
}
