// Package paginate wraps result lists with page/perPage/total metadata.
package paginate

import (
	"github.com/SiddheshKanawade/news-hub-backend/model"
)

// Paginate wraps any entity list returned across the API boundary.
type Paginate[T any] struct {
	Page    int `json:"page"`
	PerPage int `json:"perPage"`
	Total   int `json:"total"`
	Pages   int `json:"pages"`
	Results []T `json:"results"`
}

// New builds a Paginate over results. Total is always the length of the
// list handed in, independent of any upstream-reported total. perPage must
// be positive; zero would make the page count undefined.
func New[T any](results []T, page, perPage int) (*Paginate[T], error) {
	if perPage <= 0 {
		return nil, model.BadRequest("perPage must be a positive integer, got %d", perPage)
	}
	if page < 1 {
		page = 1
	}
	total := len(results)
	return &Paginate[T]{
		Page:    page,
		PerPage: perPage,
		Total:   total,
		Pages:   (total + perPage - 1) / perPage,
		Results: results,
	}, nil
}
