package domain

import (
	"context"
	"fmt"
)

type Film struct {
	ID       int
	Title    string
	Genre    string
	Synopsis string
	Duration int // minutes
}

// DurationString returns the running time in "hh:mm" form for display.
func (f *Film) DurationString() string {
	return fmt.Sprintf("%02d:%02d", f.Duration/60, f.Duration%60)
}

type FilmRepository interface {
	Create(ctx context.Context, film *Film) error
	GetById(ctx context.Context, id int) (*Film, error)
	GetAll(ctx context.Context, pagination Pagination) ([]*Film, *Metadata, error)
}
