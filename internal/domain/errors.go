package domain

import "errors"

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrUnknownRoomType     = errors.New("unknown room type")
	ErrScheduleConflict    = errors.New("showing overlaps an existing showing in the same room")
	ErrShowingExists       = errors.New("a showing with the same identifier already exists")
	ErrSeatNotFound        = errors.New("seat not found")
	ErrSeatAlreadyOccupied = errors.New("seat is already occupied")
	ErrStaffExists         = errors.New("staff member already exists with that nickname")
)
