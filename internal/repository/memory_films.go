package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/cinebyt/cinema-ticketing/internal/domain"
)

// MemoryFilmRepository keeps the film catalogue in memory, keyed by an
// auto-incremented integer ID.
type MemoryFilmRepository struct {
	mu     sync.RWMutex
	films  map[int]*domain.Film
	nextID int
}

func NewMemoryFilmRepository() *MemoryFilmRepository {
	return &MemoryFilmRepository{
		films:  make(map[int]*domain.Film),
		nextID: 1,
	}
}

func (r *MemoryFilmRepository) Create(ctx context.Context, film *domain.Film) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	film.ID = r.nextID
	r.nextID++
	r.films[film.ID] = film

	return nil
}

func (r *MemoryFilmRepository) GetById(ctx context.Context, id int) (*domain.Film, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	film, ok := r.films[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return film, nil
}

// GetAll returns one page of the catalogue, filtered by a case-insensitive
// title term and ordered per the pagination's sort column.
func (r *MemoryFilmRepository) GetAll(
	ctx context.Context,
	pagination domain.Pagination,
) ([]*domain.Film, *domain.Metadata, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	term := strings.ToLower(pagination.Term)

	var matched []*domain.Film
	for _, film := range r.films {
		if term == "" || strings.Contains(strings.ToLower(film.Title), term) {
			matched = append(matched, film)
		}
	}

	sortFilms(matched, pagination)

	metadata := domain.NewMetadata(len(matched), pagination.Page, pagination.PageSize)

	start := pagination.Offset()
	if start >= len(matched) {
		return []*domain.Film{}, metadata, nil
	}

	end := start + pagination.Limit()
	if end > len(matched) {
		end = len(matched)
	}

	return matched[start:end], metadata, nil
}

func sortFilms(films []*domain.Film, pagination domain.Pagination) {
	less := func(a, b *domain.Film) bool { return a.ID < b.ID }

	switch pagination.SortColumn() {
	case "title":
		less = func(a, b *domain.Film) bool { return a.Title < b.Title }
	case "duration":
		less = func(a, b *domain.Film) bool { return a.Duration < b.Duration }
	}

	sort.Slice(films, func(i, j int) bool {
		if pagination.SortDescending() {
			return less(films[j], films[i])
		}

		return less(films[i], films[j])
	})
}
