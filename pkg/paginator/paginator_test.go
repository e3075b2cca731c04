package paginator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i + 1
	}
	return s
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		perPage int64
		want    int
	}{
		{"empty", 0, 10, 0},
		{"exact", 20, 10, 2},
		{"partial", 25, 10, 3},
		{"single", 1, 10, 1},
		{"zero per page", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.perPage))
		})
	}
}

func TestPaginateSlice(t *testing.T) {
	items := seq(25)

	for page := 1; page <= 3; page++ {
		got, pag := PaginateSlice(items, PaginateQuery{Page: page, Limit: 10})
		start := (page - 1) * 10
		end := min(page*10, len(items))
		assert.Equal(t, items[start:end], got)
		assert.Equal(t, int64(len(got)), pag.Count)
		assert.Equal(t, 3, pag.TotalPages())
	}

	got, pag := PaginateSlice(items, PaginateQuery{Page: 4, Limit: 10})
	assert.Empty(t, got)
	assert.Equal(t, int64(25), pag.Total)
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 3))
	assert.Equal(t, 3, ClampPage(5, 3))
	assert.Equal(t, 2, ClampPage(2, 3))
	assert.Equal(t, 1, ClampPage(4, 0))
}

func TestControls(t *testing.T) {
	pag := Paginator{Total: 25, PerPage: 10, CurrentPage: 3}
	controls := pag.Controls()
	require.Len(t, controls, 7)

	labels := make([]string, len(controls))
	for i, c := range controls {
		labels[i] = c.Label
	}
	assert.Equal(t, []string{"First", "Previous", "1", "2", "3", "Next", "Last"}, labels)

	prev, next, last := controls[1], controls[5], controls[6]
	assert.Equal(t, 2, prev.Target)
	assert.True(t, prev.Enabled)
	assert.Equal(t, 4, next.Target)
	assert.False(t, next.Enabled)
	assert.Equal(t, 3, last.Target)
	assert.True(t, last.Active)
	assert.True(t, controls[4].Active)
	assert.False(t, controls[0].Active)
}

func TestControlsEmpty(t *testing.T) {
	pag := Paginator{Total: 0, PerPage: 10, CurrentPage: 1}
	controls := pag.Controls()
	require.Len(t, controls, 4)
	for _, c := range controls {
		assert.False(t, c.Enabled, c.Label)
	}
	assert.True(t, controls[0].Active)
}
