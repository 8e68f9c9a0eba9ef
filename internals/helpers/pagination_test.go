package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPagination(t *testing.T) {
	p := Paging{Page: 2, PerPage: 10, Offset: 10, Limit: 10}

	out := BuildPagination(p, 25, 10)
	assert.Equal(t, 2, out.Page)
	assert.Equal(t, 3, out.TotalPages)
	assert.True(t, out.HasNext)
	assert.True(t, out.HasPrev)
	assert.Equal(t, int64(25), out.Total)

	out = BuildPagination(Paging{Page: 1, PerPage: 10}, 5, 5)
	assert.Equal(t, 1, out.TotalPages)
	assert.False(t, out.HasNext)
	assert.False(t, out.HasPrev)

	out = BuildPagination(Paging{Page: 1, PerPage: 10}, 0, 0)
	assert.Equal(t, 0, out.TotalPages)
	assert.False(t, out.HasNext)
}
