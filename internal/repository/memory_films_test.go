package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinebyt/cinema-ticketing/internal/domain"
)

func seedFilms(t *testing.T, repo *MemoryFilmRepository) {
	t.Helper()

	films := []*domain.Film{
		{Title: "Star Wars", Genre: "Sci-Fi", Duration: 121},
		{Title: "Coco", Genre: "Animation", Duration: 105},
		{Title: "Dune Part Two", Genre: "Sci-Fi", Duration: 166},
		{Title: "El Laberinto del Fauno", Genre: "Fantasy", Duration: 118},
	}

	for _, film := range films {
		require.NoError(t, repo.Create(context.Background(), film))
	}
}

func TestMemoryFilmRepository_CreateAssignsSequentialIds(t *testing.T) {
	repo := NewMemoryFilmRepository()
	seedFilms(t, repo)

	film, err := repo.GetById(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Coco", film.Title)

	_, err = repo.GetById(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestMemoryFilmRepository_GetAll(t *testing.T) {
	repo := NewMemoryFilmRepository()
	seedFilms(t, repo)

	tests := []struct {
		name       string
		pagination domain.Pagination
		wantTitles []string
		wantTotal  int
	}{
		{
			name:       "default order is by id",
			pagination: domain.Pagination{Page: 1, PageSize: 10, Sort: "id"},
			wantTitles: []string{"Star Wars", "Coco", "Dune Part Two", "El Laberinto del Fauno"},
			wantTotal:  4,
		},
		{
			name:       "sorted by title descending",
			pagination: domain.Pagination{Page: 1, PageSize: 10, Sort: "-title"},
			wantTitles: []string{"Star Wars", "El Laberinto del Fauno", "Dune Part Two", "Coco"},
			wantTotal:  4,
		},
		{
			name:       "sorted by duration",
			pagination: domain.Pagination{Page: 1, PageSize: 2, Sort: "duration"},
			wantTitles: []string{"Coco", "El Laberinto del Fauno"},
			wantTotal:  4,
		},
		{
			name:       "term filter is case-insensitive",
			pagination: domain.Pagination{Page: 1, PageSize: 10, Sort: "id", Term: "dune"},
			wantTitles: []string{"Dune Part Two"},
			wantTotal:  1,
		},
		{
			name:       "second page",
			pagination: domain.Pagination{Page: 2, PageSize: 3, Sort: "id"},
			wantTitles: []string{"El Laberinto del Fauno"},
			wantTotal:  4,
		},
		{
			name:       "page beyond the catalogue is empty",
			pagination: domain.Pagination{Page: 5, PageSize: 10, Sort: "id"},
			wantTitles: []string{},
			wantTotal:  4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			films, metadata, err := repo.GetAll(context.Background(), tt.pagination)
			require.NoError(t, err)

			titles := make([]string, len(films))
			for i, film := range films {
				titles[i] = film.Title
			}

			assert.Equal(t, tt.wantTitles, titles)
			require.NotNil(t, metadata)
			assert.Equal(t, tt.wantTotal, metadata.TotalRecords)
			assert.Equal(t, tt.pagination.Page, metadata.CurrentPage)
		})
	}
}

func TestMemoryFilmRepository_GetAllWithoutMatchesOmitsMetadata(t *testing.T) {
	repo := NewMemoryFilmRepository()
	seedFilms(t, repo)

	pagination := domain.Pagination{Page: 1, PageSize: 10, Sort: "id", Term: "no such film"}

	films, metadata, err := repo.GetAll(context.Background(), pagination)
	require.NoError(t, err)

	assert.Empty(t, films)
	assert.Nil(t, metadata)
}
