package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cinebyt/cinema-ticketing/api"
	"github.com/cinebyt/cinema-ticketing/internal/domain"
)

func (app *application) ScheduleShowing(w http.ResponseWriter, r *http.Request) {
	var input api.CreateShowingRequest

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

	film, err := app.filmRepo.GetById(r.Context(), input.FilmId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.badRequestResponse(w, r, fmt.Errorf("film with ID %d does not exist", input.FilmId))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	// Showings are scheduled with minute precision.
	start := input.StartTime.Truncate(time.Minute)

	var warnings []string

	showing, err := domain.NewShowing(film, input.RoomType, start)
	if err != nil {
		if !errors.Is(err, domain.ErrUnknownRoomType) {
			app.serverErrorResponse(w, r, err)
			return
		}

		// Unrecognized room types are a diagnostic, not a failure: the
		// showing is admitted with an empty seat map.
		app.logger.Warn("scheduling showing with unknown room type",
			"room_type", input.RoomType, "showing_id", showing.ID)
		warnings = append(warnings, fmt.Sprintf("room type %q is not recognized: the showing has no seats", input.RoomType))
	}

	err = app.showingRepo.Create(r.Context(), showing)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrScheduleConflict), errors.Is(err, domain.ErrShowingExists):
			app.editConflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := toShowingResponse(showing)
	resp.Warnings = warnings

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/showings/%s", showing.ID))

	err = app.writeJSON(w, http.StatusCreated, resp, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetShowings(w http.ResponseWriter, r *http.Request) {
	showings, err := app.showingRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ShowingListResponse{
		Showings: make([]api.ShowingResponse, len(showings)),
	}
	for i, showing := range showings {
		resp.Showings[i] = toShowingResponse(showing)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetShowing(w http.ResponseWriter, r *http.Request) {
	showing, ok := app.findShowing(w, r)
	if !ok {
		return
	}

	err := app.writeJSON(w, http.StatusOK, toShowingResponse(showing), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// findShowing resolves the {showingID} URL parameter against the catalogue,
// writing the error response itself when the showing cannot be served.
func (app *application) findShowing(w http.ResponseWriter, r *http.Request) (*domain.Showing, bool) {
	id := chi.URLParam(r, "showingID")

	showing, err := app.showingRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return nil, false
	}

	return showing, true
}

func toShowingResponse(showing *domain.Showing) api.ShowingResponse {
	return api.ShowingResponse{
		Id:        showing.ID,
		FilmId:    showing.Film.ID,
		FilmTitle: showing.Film.Title,
		RoomName:  showing.Room.Name(),
		StartTime: showing.StartTime,
		Capacity:  showing.Room.Capacity(),
	}
}
