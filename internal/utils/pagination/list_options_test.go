package pagination_test

import (
	"testing"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
	"github.com/SscSPs/biz_records_app/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		limit   string
		offset  string
		sort    string
		want    domain.ListOptions
		wantErr bool
	}{
		{name: "defaults", want: domain.ListOptions{}},
		{name: "ascending", sort: "ASC", want: domain.ListOptions{Ascending: true}},
		{name: "page", limit: "10", offset: "20", sort: "desc", want: domain.ListOptions{Limit: 10, Offset: 20}},
		{name: "limit capped", limit: "100000", want: domain.ListOptions{Limit: pagination.MaxLimit}},
		{name: "negative limit", limit: "-1", wantErr: true},
		{name: "text offset", offset: "ten", wantErr: true},
		{name: "unknown sort", sort: "sideways", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pagination.Parse(tt.limit, tt.offset, tt.sort)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name       string
		n          int
		opts       domain.ListOptions
		start, end int
	}{
		{"all", 5, domain.ListOptions{}, 0, 5},
		{"first page", 5, domain.ListOptions{Limit: 2}, 0, 2},
		{"last partial page", 5, domain.ListOptions{Limit: 2, Offset: 4}, 4, 5},
		{"offset past end", 5, domain.ListOptions{Offset: 9}, 5, 5},
		{"empty", 0, domain.ListOptions{Limit: 3}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := pagination.Window(tt.n, tt.opts)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}
