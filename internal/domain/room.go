package domain

import "sync"

// LayoutSegment describes a contiguous block of rows that share the same
// number of seats per row. A room layout is an ordered list of segments.
type LayoutSegment struct {
	FromRow     byte
	ToRow       byte
	SeatsPerRow int
}

// roomLayouts maps a recognized room type to its seating topology. Sala B is
// split in two segments: a narrow front section and a full-width rear one.
var roomLayouts = map[string][]LayoutSegment{
	"Sala A":   {{FromRow: 'A', ToRow: 'J', SeatsPerRow: 15}},
	"Sala B":   {{FromRow: 'A', ToRow: 'D', SeatsPerRow: 7}, {FromRow: 'E', ToRow: 'J', SeatsPerRow: 15}},
	"Sala VIP": {{FromRow: 'A', ToRow: 'H', SeatsPerRow: 6}},
}

type seatKey struct {
	row    byte
	number int
}

// Room owns the seat grid for a single Showing. Rooms are never shared
// between Showings, so occupancy in one Showing can never leak into another.
type Room struct {
	name string

	mu    sync.Mutex
	seats []*Seat
	index map[seatKey]*Seat
}

// NewRoom builds a Room with the full seat grid for the given room type.
// An unrecognized name yields a usable Room with zero seats together with
// ErrUnknownRoomType; callers should treat that error as a diagnostic, not
// a failure. The seat set is built from scratch on every call, so two Rooms
// of the same type always carry distinct Seat instances.
func NewRoom(name string) (*Room, error) {
	room := &Room{
		name:  name,
		index: make(map[seatKey]*Seat),
	}

	segments, ok := roomLayouts[name]
	if !ok {
		return room, ErrUnknownRoomType
	}

	for _, segment := range segments {
		for row := segment.FromRow; row <= segment.ToRow; row++ {
			for number := 1; number <= segment.SeatsPerRow; number++ {
				seat := &Seat{Row: row, Number: number}

				room.seats = append(room.seats, seat)
				room.index[seatKey{row, number}] = seat
			}
		}
	}

	return room, nil
}

func (r *Room) Name() string {
	return r.name
}

// Capacity returns the total number of seats in the room.
func (r *Room) Capacity() int {
	return len(r.seats)
}

// Seats returns a snapshot of all seats in generation order: rows in
// strictly increasing character order, seat numbers 1..N within a row.
func (r *Room) Seats() []Seat {
	r.mu.Lock()
	defer r.mu.Unlock()

	seats := make([]Seat, len(r.seats))
	for i, seat := range r.seats {
		seats[i] = *seat
	}

	return seats
}

// Seat returns a snapshot of the seat at (row, number), or ErrSeatNotFound
// when the coordinate does not exist in this room's layout.
func (r *Room) Seat(row byte, number int) (Seat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seat, ok := r.index[seatKey{row, number}]
	if !ok {
		return Seat{}, ErrSeatNotFound
	}

	return *seat, nil
}

// SetOccupied transitions the occupancy flag of the seat at (row, number).
// Occupying a seat succeeds only if the seat is currently free; a second
// concurrent occupy attempt on the same seat fails with
// ErrSeatAlreadyOccupied instead of silently overwriting. Releasing an
// existing seat always succeeds.
func (r *Room) SetOccupied(row byte, number int, occupied bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seat, ok := r.index[seatKey{row, number}]
	if !ok {
		return ErrSeatNotFound
	}

	if occupied && seat.Occupied {
		return ErrSeatAlreadyOccupied
	}

	seat.Occupied = occupied

	return nil
}
