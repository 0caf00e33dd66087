package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPaginationParams(t *testing.T) {
	p := GetPaginationParams(0, -1)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.Limit)

	p = GetPaginationParams(2, 20)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 20, p.Limit)
}

func TestCalculateOffset(t *testing.T) {
	p := PaginationParams{Page: 1, Limit: 20}
	assert.Equal(t, 0, p.CalculateOffset())

	p = PaginationParams{Page: 3, Limit: 20}
	assert.Equal(t, 40, p.CalculateOffset())
}

func TestCalculateMeta(t *testing.T) {
	meta := CalculateMeta(100, 2, 20)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 20, meta.Limit)
	assert.Equal(t, int64(100), meta.TotalCount)
	assert.Equal(t, 5, meta.TotalPages)

	noLimit := CalculateMeta(15, 1, 0)
	assert.Equal(t, 1, noLimit.Page)
	assert.Equal(t, 15, noLimit.Limit)
	assert.Equal(t, 1, noLimit.TotalPages)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, meta := Paginate(items, GetPaginationParams(2, 2))
	assert.Equal(t, []int{3, 4}, page)
	assert.Equal(t, 3, meta.TotalPages)

	page, _ = Paginate(items, GetPaginationParams(3, 2))
	assert.Equal(t, []int{5}, page)

	page, _ = Paginate(items, GetPaginationParams(9, 2))
	assert.Empty(t, page)

	page, meta = Paginate(items, GetPaginationParams(1, 0))
	assert.Equal(t, items, page)
	assert.Equal(t, 1, meta.TotalPages)

	page, _ = Paginate([]int{}, GetPaginationParams(1, 10))
	assert.Empty(t, page)
}

func TestPaginate_HugeValues(t *testing.T) {
	items := []int{1, 2, 3}

	assert.NotPanics(t, func() {
		page, _ := Paginate(items, GetPaginationParams(1<<32, 1<<32))
		assert.Empty(t, page)
	})

	page, _ := Paginate(items, GetPaginationParams(1, math.MaxInt))
	assert.Equal(t, items, page)

	page, _ = Paginate(items, GetPaginationParams(math.MaxInt, 2))
	assert.Empty(t, page)
}
