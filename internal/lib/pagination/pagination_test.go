package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	assert.Equal(t, Params{Page: 1, Limit: 5}, New(0, 0, 1, 5))
	assert.Equal(t, Params{Page: 1, Limit: 5}, New(-2, -1, 1, 5))
	assert.Equal(t, Params{Page: 3, Limit: 2}, New(3, 2, 1, 5))
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name   string
		params Params
		want   []int
	}{
		{name: "first page", params: Params{Page: 1, Limit: 3}, want: []int{1, 2, 3}},
		{name: "partial last page", params: Params{Page: 3, Limit: 3}, want: []int{7}},
		{name: "past the end", params: Params{Page: 4, Limit: 3}, want: []int{}},
		{name: "limit larger than items", params: Params{Page: 1, Limit: 100}, want: items},
		{name: "zero limit", params: Params{Page: 1, Limit: 0}, want: []int{}},
		{name: "zero page", params: Params{Page: 0, Limit: 3}, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slice(items, tt.params)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlice_Nil(t *testing.T) {
	got := Slice[int](nil, Params{Page: 1, Limit: 5})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 5))
	assert.Equal(t, 1, TotalPages(5, 5))
	assert.Equal(t, 2, TotalPages(6, 5))
	assert.Equal(t, 2, TotalPages(10, 5))
	assert.Equal(t, 0, TotalPages(10, 0))
}
