package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetadata(t *testing.T) {
	tests := []struct {
		name         string
		totalRecords int
		page         int
		pageSize     int
		wantLastPage int
	}{
		{
			name:         "exact multiple of the page size",
			totalRecords: 20,
			page:         1,
			pageSize:     10,
			wantLastPage: 2,
		},
		{
			name:         "partial last page rounds up",
			totalRecords: 21,
			page:         3,
			pageSize:     10,
			wantLastPage: 3,
		},
		{
			name:         "single record",
			totalRecords: 1,
			page:         1,
			pageSize:     10,
			wantLastPage: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metadata := NewMetadata(tt.totalRecords, tt.page, tt.pageSize)
			require.NotNil(t, metadata)

			assert.Equal(t, tt.page, metadata.CurrentPage)
			assert.Equal(t, 1, metadata.FirstPage)
			assert.Equal(t, tt.wantLastPage, metadata.LastPage)
			assert.Equal(t, tt.totalRecords, metadata.TotalRecords)
		})
	}
}

func TestNewMetadata_NoRecords(t *testing.T) {
	assert.Nil(t, NewMetadata(0, 1, 10))
}
