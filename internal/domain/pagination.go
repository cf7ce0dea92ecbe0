package domain

import "strings"

type Pagination struct {
	Page     int
	PageSize int
	Term     string
	Sort     string
}

func (p Pagination) SortColumn() string {
	return strings.TrimPrefix(p.Sort, "-")
}

func (p Pagination) SortDescending() bool {
	return strings.HasPrefix(p.Sort, "-")
}

func (p Pagination) Limit() int {
	return p.PageSize
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

type Metadata struct {
	CurrentPage  int
	FirstPage    int
	LastPage     int
	PageSize     int
	TotalRecords int
}

// NewMetadata returns nil when there are no records at all, so an empty
// listing carries no pagination envelope.
func NewMetadata(totalRecords, page, pageSize int) *Metadata {
	if totalRecords == 0 {
		return nil
	}

	return &Metadata{
		CurrentPage:  page,
		FirstPage:    1,
		LastPage:     (totalRecords + pageSize - 1) / pageSize,
		PageSize:     pageSize,
		TotalRecords: totalRecords,
	}
}
