package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Showing is a scheduled projection of a Film in a Room at a start time.
//
// The ID is derived once at construction and is never recomputed, even if
// StartTime is edited afterwards. Callers that need the ID to stay
// consistent with the schedule must replace the Showing instead of mutating
// its StartTime.
type Showing struct {
	ID        string
	Film      *Film
	Room      *Room
	StartTime time.Time
}

// NewShowing binds a film to a freshly built Room of the given type and
// derives the showing identifier. When the room type is unrecognized the
// returned Showing is still usable (its Room has zero seats) and the error
// is ErrUnknownRoomType, passed through from NewRoom as a diagnostic.
func NewShowing(film *Film, roomType string, start time.Time) (*Showing, error) {
	room, err := NewRoom(roomType)

	showing := &Showing{
		ID:        showingID(film.Title, start, room.Name()),
		Film:      film,
		Room:      room,
		StartTime: start,
	}

	return showing, err
}

// showingID derives the showing identifier in the form
// INITIALS:YYYYMMDD:HHmm:ROOMNAME, e.g. "SW:20231025:1830:SalaA".
// INITIALS is the uppercased first character of every space-separated token
// of the film title; the room name loses all its spaces.
func showingID(title string, start time.Time, roomName string) string {
	var initials strings.Builder

	for _, token := range strings.Split(title, " ") {
		if token == "" {
			continue
		}

		first, _ := utf8.DecodeRuneInString(token)
		initials.WriteRune(first)
	}

	return fmt.Sprintf("%s:%s:%s:%s",
		strings.ToUpper(initials.String()),
		start.Format("20060102"),
		start.Format("1504"),
		strings.ReplaceAll(roomName, " ", ""),
	)
}

// End returns the exclusive end of the showing interval, start plus the
// film's running time.
func (s *Showing) End() time.Time {
	return s.StartTime.Add(time.Duration(s.Film.Duration) * time.Minute)
}

// Overlaps reports whether two showings conflict: same room name and
// intersecting [start, end) intervals. Back-to-back showings, where one
// ends exactly when the other starts, do not overlap.
func (s *Showing) Overlaps(other *Showing) bool {
	if s.Room.Name() != other.Room.Name() {
		return false
	}

	return s.StartTime.Before(other.End()) && other.StartTime.Before(s.End())
}

// FindConflict returns the first existing showing that the candidate
// overlaps with, or nil when the candidate fits the schedule. It is a pure
// function over the supplied catalogue; callers are responsible for
// evaluating it atomically with the admission of the candidate.
func FindConflict(existing []*Showing, candidate *Showing) *Showing {
	for _, showing := range existing {
		if showing.Overlaps(candidate) {
			return showing
		}
	}

	return nil
}

type ShowingRepository interface {
	Create(ctx context.Context, showing *Showing) error
	GetById(ctx context.Context, id string) (*Showing, error)
	GetAll(ctx context.Context) ([]*Showing, error)
}
