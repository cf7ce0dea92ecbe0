package app

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cinebyt/cinema-ticketing/api"
	"github.com/cinebyt/cinema-ticketing/internal/domain"
)

func (app *application) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	showing, ok := app.findShowing(w, r)
	if !ok {
		return
	}

	resp := toSeatMapResponse(showing)

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetSeat(w http.ResponseWriter, r *http.Request) {
	showing, ok := app.findShowing(w, r)
	if !ok {
		return
	}

	row, number, err := parseSeatRef(chi.URLParam(r, "seat"))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	seat, err := showing.Room.Seat(row, number)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSeatNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiSeat(seat), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) UpdateSeatOccupancy(w http.ResponseWriter, r *http.Request) {
	showing, ok := app.findShowing(w, r)
	if !ok {
		return
	}

	row, number, err := parseSeatRef(chi.URLParam(r, "seat"))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.UpdateSeatRequest

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

	err = showing.Room.SetOccupied(row, number, *input.Occupied)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSeatNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrSeatAlreadyOccupied):
			app.editConflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	seat, err := showing.Room.Seat(row, number)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiSeat(seat), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// parseSeatRef splits a seat reference like "A12" into its row letter and
// seat number.
func parseSeatRef(ref string) (byte, int, error) {
	malformed := fmt.Errorf("seat reference must be an uppercase row letter followed by a seat number, e.g. A12")

	if len(ref) < 2 || ref[0] < 'A' || ref[0] > 'Z' {
		return 0, 0, malformed
	}

	// Digits only after the row letter; Atoi alone would let a sign through.
	for i := 1; i < len(ref); i++ {
		if ref[i] < '0' || ref[i] > '9' {
			return 0, 0, malformed
		}
	}

	number, err := strconv.Atoi(ref[1:])
	if err != nil || number < 1 {
		return 0, 0, malformed
	}

	return ref[0], number, nil
}

func toSeatMapResponse(showing *domain.Showing) api.SeatMapResponse {
	return api.SeatMapResponse{
		ShowingId: showing.ID,
		RoomName:  showing.Room.Name(),
		Capacity:  showing.Room.Capacity(),
		SeatRows:  toSeatRows(showing.Room.Seats()),
	}
}

func toSeatRows(seats []domain.Seat) []api.SeatRow {
	// Seats come pre-sorted by row and number, so rows can be grouped in a
	// single pass.
	var seatRows []api.SeatRow

	for _, seat := range seats {
		row := string(seat.Row)

		if len(seatRows) == 0 || seatRows[len(seatRows)-1].Row != row {
			seatRows = append(seatRows, api.SeatRow{Row: row})
		}

		last := &seatRows[len(seatRows)-1]
		last.Seats = append(last.Seats, toApiSeat(seat))
	}

	return seatRows
}

func toApiSeat(seat domain.Seat) api.Seat {
	return api.Seat{
		Row:      string(seat.Row),
		Number:   seat.Number,
		Occupied: seat.Occupied,
	}
}
