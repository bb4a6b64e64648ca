package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ikedoebber/organizer-api/internal/constants"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page  int
	Limit int
}

// PaginationResponse represents the pagination metadata in API responses
type PaginationResponse struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// GetPaginationParams extracts the page number from the request. The
// page size is fixed; a missing or malformed page falls back to 1.
func GetPaginationParams(c *gin.Context) PaginationParams {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.MinPage)))
	if err != nil || page < constants.MinPage {
		page = constants.MinPage
	}

	return PaginationParams{
		Page:  page,
		Limit: constants.DefaultPageSize,
	}
}

func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Clamp pins the page to the last available page, so requesting past
// the end returns the final page instead of an empty result.
func (p PaginationParams) Clamp(total int64) PaginationParams {
	last := TotalPages(total, p.Limit)
	if p.Page > last {
		p.Page = last
	}
	if p.Page < constants.MinPage {
		p.Page = constants.MinPage
	}
	return p
}

// TotalPages returns the number of pages needed for total records,
// never less than 1.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 1
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	if pages < 1 {
		pages = 1
	}
	return pages
}
