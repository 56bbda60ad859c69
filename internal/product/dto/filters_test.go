package dto

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProductFilters_Defaults(t *testing.T) {
	f := ParseProductFilters(url.Values{})

	assert.Empty(t, f.SearchQuery)
	assert.Nil(t, f.PriceMin)
	assert.Nil(t, f.PriceMax)
	assert.Nil(t, f.StockMin)
	assert.Nil(t, f.StockMax)
	assert.Nil(t, f.DateFrom)
	assert.Nil(t, f.DateTo)
	assert.Equal(t, "id", f.SortBy)
	assert.Equal(t, "DESC", f.SortOrder)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 5, f.Limit)
}

func TestParseProductFilters_Bounds(t *testing.T) {
	q := url.Values{}
	q.Set("q", "  widget  ")
	q.Set("priceMin", "10.50")
	q.Set("priceMax", "20")
	q.Set("stockMin", "3")
	q.Set("stockMax", "100")
	q.Set("dateFrom", "2024-01-01")
	q.Set("dateTo", "2024-12-31T23:59:59Z")

	f := ParseProductFilters(q)

	assert.Equal(t, "widget", f.SearchQuery)
	require.NotNil(t, f.PriceMin)
	assert.Equal(t, 10.50, *f.PriceMin)
	require.NotNil(t, f.PriceMax)
	assert.Equal(t, 20.0, *f.PriceMax)
	require.NotNil(t, f.StockMin)
	assert.Equal(t, int64(3), *f.StockMin)
	require.NotNil(t, f.StockMax)
	assert.Equal(t, int64(100), *f.StockMax)
	require.NotNil(t, f.DateFrom)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *f.DateFrom)
	require.NotNil(t, f.DateTo)
	assert.Equal(t, time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC), *f.DateTo)
}

// Lenient coercion: malformed bounds are dropped, never surfaced as errors.
func TestParseProductFilters_LenientCoercion(t *testing.T) {
	q := url.Values{}
	q.Set("priceMin", "cheap")
	q.Set("priceMax", "NaN")
	q.Set("stockMin", "12.5")
	q.Set("stockMax", "many")
	q.Set("dateFrom", "yesterday")
	q.Set("dateTo", "31/12/2024")
	q.Set("page", "two")
	q.Set("limit", "")

	f := ParseProductFilters(q)

	assert.Nil(t, f.PriceMin)
	assert.Nil(t, f.PriceMax)
	assert.Nil(t, f.StockMin)
	assert.Nil(t, f.StockMax)
	assert.Nil(t, f.DateFrom)
	assert.Nil(t, f.DateTo)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 5, f.Limit)
}

func TestParseProductFilters_SortWhitelist(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		sortOrder string
		wantBy    string
		wantOrder string
	}{
		{"defaults", "", "", "id", "DESC"},
		{"known column", "price", "asc", "price", "ASC"},
		{"case insensitive", "NAME", "DeSc", "name", "DESC"},
		{"legacy id alias", "PRODUCTID", "ASC", "id", "ASC"},
		{"legacy name alias", "productname", "desc", "name", "DESC"},
		{"created_at", "created_at", "asc", "created_at", "ASC"},
		{"unknown column", "unknownColumn", "asc", "id", "ASC"},
		{"unknown order", "stock", "sideways", "stock", "DESC"},
		{"injection attempt", "id; DROP TABLE products--", "asc", "id", "ASC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := url.Values{}
			q.Set("sortBy", tt.sortBy)
			q.Set("sortOrder", tt.sortOrder)

			f := ParseProductFilters(q)
			assert.Equal(t, tt.wantBy, f.SortBy)
			assert.Equal(t, tt.wantOrder, f.SortOrder)
		})
	}
}

func TestParseProductFilters_PageAndLimit(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
	}{
		{"explicit", "3", "20", 3, 20},
		{"missing", "", "", 1, 5},
		{"garbage", "abc", "xyz", 1, 5},
		{"zero page clamped", "0", "5", 1, 5},
		{"negative page clamped", "-2", "5", 1, 5},
		{"zero limit", "1", "0", 1, 5},
		{"limit capped", "1", "5000", 1, MaxLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := url.Values{}
			q.Set("page", tt.page)
			q.Set("limit", tt.limit)

			f := ParseProductFilters(q)
			assert.Equal(t, tt.wantPage, f.Page)
			assert.Equal(t, tt.wantLimit, f.Limit)
		})
	}
}

func TestProductFilters_Offset(t *testing.T) {
	f := &ProductFilters{Page: 3, Limit: 5}
	assert.Equal(t, 10, f.Offset())

	f = &ProductFilters{Page: 1, Limit: 50}
	assert.Equal(t, 0, f.Offset())
}
