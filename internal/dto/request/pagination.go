package request

import "user-management/pkg/utils"

type PaginatedRequest struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// Normalize coerces out-of-range values to the documented defaults
func (p *PaginatedRequest) Normalize() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 10
	}
}

func (p PaginatedRequest) Offset() int {
	return utils.CalculateOffset(p.Page, p.PageSize)
}
