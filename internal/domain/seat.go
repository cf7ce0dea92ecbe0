package domain

import "fmt"

// Seat is a single addressable position in a Room. Instances returned by
// Room methods are copies; occupancy changes only through Room.SetOccupied,
// which serializes them against concurrent callers.
type Seat struct {
	Row      byte
	Number   int
	Occupied bool
}

// Label returns the display form of the seat coordinate, e.g. "A12".
func (s Seat) Label() string {
	return fmt.Sprintf("%c%d", s.Row, s.Number)
}
