package response

import "user-management/pkg/utils"

// PaginationMeta mirrors the pagination block of the public contract
type PaginationMeta struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	PageSize    int   `json:"pageSize"`
}

type PaginatedResponse[T any] struct {
	Data       []T
	Pagination PaginationMeta
}

func NewPaginatedResponse[T any](data []T, page, pageSize int, total int64) *PaginatedResponse[T] {
	return &PaginatedResponse[T]{
		Data: data,
		Pagination: PaginationMeta{
			CurrentPage: page,
			TotalPages:  utils.CalculateTotalPages(total, pageSize),
			TotalItems:  total,
			PageSize:    pageSize,
		},
	}
}
