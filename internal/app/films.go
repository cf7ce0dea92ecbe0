package app

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/cinebyt/cinema-ticketing/api"
	"github.com/cinebyt/cinema-ticketing/internal/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	DefaultSort     = "id"
)

func (app *application) CreateFilm(w http.ResponseWriter, r *http.Request) {
	var input api.CreateFilmRequest

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

	film := &domain.Film{
		Title:    input.Title,
		Genre:    input.Genre,
		Synopsis: input.Synopsis,
		Duration: input.DurationMinutes,
	}

	err = app.filmRepo.Create(r.Context(), film)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/films/%d", film.ID))

	err = app.writeJSON(w, http.StatusCreated, toFilmResponse(film), headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetFilms(w http.ResponseWriter, r *http.Request) {
	params, err := parseGetFilmsParams(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	pagination := toPagination(params)

	films, metadata, err := app.filmRepo.GetAll(r.Context(), pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.FilmListResponse{
		Films:    toFilmResponses(films),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetFilm(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIntParam(r, "filmID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	film, err := app.filmRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toFilmResponse(film), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func parseGetFilmsParams(r *http.Request) (api.GetFilmsParams, error) {
	var params api.GetFilmsParams

	query := r.URL.Query()

	if page := query.Get("page"); page != "" {
		pageNum, err := strconv.Atoi(page)
		if err != nil {
			return params, fmt.Errorf("invalid page parameter")
		}
		params.Page = &pageNum
	}

	if pageSize := query.Get("pageSize"); pageSize != "" {
		pageSizeNum, err := strconv.Atoi(pageSize)
		if err != nil {
			return params, fmt.Errorf("invalid pageSize parameter")
		}
		params.PageSize = &pageSizeNum
	}

	if term := query.Get("term"); term != "" {
		params.Term = &term
	}

	if sort := query.Get("sort"); sort != "" {
		params.Sort = &sort
	}

	return params, nil
}

func toPagination(params api.GetFilmsParams) domain.Pagination {
	pagination := domain.Pagination{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
		Sort:     DefaultSort,
	}

	if params.Page != nil {
		pagination.Page = *params.Page
	}
	if params.PageSize != nil {
		pagination.PageSize = *params.PageSize
	}
	if params.Term != nil {
		pagination.Term = *params.Term
	}
	if params.Sort != nil {
		pagination.Sort = *params.Sort
	}

	return pagination
}

func toFilmResponses(films []*domain.Film) []api.FilmResponse {
	responses := make([]api.FilmResponse, len(films))
	for i, film := range films {
		responses[i] = toFilmResponse(film)
	}

	return responses
}

func toFilmResponse(film *domain.Film) api.FilmResponse {
	return api.FilmResponse{
		Id:              film.ID,
		Title:           film.Title,
		Genre:           film.Genre,
		Synopsis:        film.Synopsis,
		Duration:        film.DurationString(),
		DurationMinutes: film.Duration,
	}
}

func toApiMetadata(metadata *domain.Metadata) *api.Metadata {
	if metadata == nil {
		return nil
	}

	return &api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
