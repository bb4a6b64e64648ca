package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 3, TotalPages(25, 10))
}

func TestClampPinsToLastPage(t *testing.T) {
	params := PaginationParams{Page: 99, Limit: 10}

	clamped := params.Clamp(25)
	assert.Equal(t, 3, clamped.Page)
	assert.Equal(t, 20, clamped.Offset())

	clamped = params.Clamp(0)
	assert.Equal(t, 1, clamped.Page)

	params = PaginationParams{Page: 2, Limit: 10}
	clamped = params.Clamp(25)
	assert.Equal(t, 2, clamped.Page)
}
