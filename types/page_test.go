package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
		want        PageParams
	}{
		{"defaults kick in", 0, 0, PageParams{Page: 1, Limit: 10}},
		{"negative values", -3, -1, PageParams{Page: 1, Limit: 10}},
		{"passes through sane values", 4, 25, PageParams{Page: 4, Limit: 25}},
		{"limit capped at 100", 1, 500, PageParams{Page: 1, Limit: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePage(tt.page, tt.limit, 10))
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, PageParams{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 40, PageParams{Page: 5, Limit: 10}.Offset())
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name  string
		page  PageParams
		total int64
		pages int
	}{
		{"exact division", PageParams{Page: 1, Limit: 10}, 30, 3},
		{"partial last page rounds up", PageParams{Page: 2, Limit: 10}, 31, 4},
		{"empty result", PageParams{Page: 1, Limit: 10}, 0, 0},
		{"single item", PageParams{Page: 1, Limit: 10}, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.page.Paginate(tt.total)
			assert.Equal(t, tt.page.Page, got.Current)
			assert.Equal(t, tt.pages, got.Pages)
			assert.Equal(t, tt.total, got.Total)
		})
	}
}
