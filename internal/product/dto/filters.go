package dto

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultPage  = 1
	DefaultLimit = 5
	MaxLimit     = 200

	SortAsc  = "ASC"
	SortDesc = "DESC"

	DefaultSortBy    = "id"
	DefaultSortOrder = SortDesc
)

// sortColumns is the closed set of ORDER BY targets. Sort tokens cannot be
// bound as statement parameters, so anything outside this map never reaches
// the query text. Legacy aliases from the old column naming are accepted.
var sortColumns = map[string]string{
	"id":          "id",
	"productid":   "id",
	"name":        "name",
	"productname": "name",
	"price":       "price",
	"stock":       "stock",
	"created_at":  "created_at",
	"createdat":   "created_at",
}

// ProductFilters is the canonical filter set for one list request. It is
// built once by ParseProductFilters and not mutated afterwards; a nil bound
// means no predicate for that field. SortBy and SortOrder are guaranteed to
// hold whitelisted values.
type ProductFilters struct {
	SearchQuery string
	PriceMin    *float64
	PriceMax    *float64
	StockMin    *int64
	StockMax    *int64
	DateFrom    *time.Time
	DateTo      *time.Time
	SortBy      string
	SortOrder   string
	Page        int
	Limit       int
}

// ParseProductFilters normalizes raw query parameters into a ProductFilters.
// Coercion is deliberately lenient: a bound that fails to parse is dropped
// and out-of-whitelist sort tokens are replaced with defaults, never reported
// as an error.
func ParseProductFilters(q url.Values) *ProductFilters {
	f := &ProductFilters{
		SearchQuery: strings.TrimSpace(q.Get("q")),
		PriceMin:    parseDecimal(q.Get("priceMin")),
		PriceMax:    parseDecimal(q.Get("priceMax")),
		StockMin:    parseInteger(q.Get("stockMin")),
		StockMax:    parseInteger(q.Get("stockMax")),
		DateFrom:    parseDate(q.Get("dateFrom")),
		DateTo:      parseDate(q.Get("dateTo")),
		SortBy:      normalizeSortBy(q.Get("sortBy")),
		SortOrder:   normalizeSortOrder(q.Get("sortOrder")),
		Page:        parsePage(q.Get("page")),
		Limit:       parseLimit(q.Get("limit")),
	}
	return f
}

// Offset is the row offset of the requested window. Page is clamped to >= 1
// during parsing, so the result is never negative.
func (f *ProductFilters) Offset() int {
	return (f.Page - 1) * f.Limit
}

func normalizeSortBy(raw string) string {
	if col, ok := sortColumns[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return col
	}
	return DefaultSortBy
}

func normalizeSortOrder(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case SortAsc:
		return SortAsc
	case SortDesc:
		return SortDesc
	}
	return DefaultSortOrder
}

func parsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return DefaultPage
	}
	return page
}

func parseLimit(raw string) int {
	limit, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || limit < 1 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

func parseDecimal(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func parseInteger(raw string) *int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

var dateLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

func parseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
