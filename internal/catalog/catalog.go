// Package catalog holds the product list view logic: search, ordering, paging, stock badges.
package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/sales-console/internal/models"
)

type SortBy string

const (
	SortName  SortBy = "name"
	SortPrice SortBy = "price"
	SortStock SortBy = "stock"
)

// ParseSort maps a query value to a sort order; unknown values sort by name.
func ParseSort(s string) SortBy {
	switch SortBy(strings.ToLower(strings.TrimSpace(s))) {
	case SortPrice:
		return SortPrice
	case SortStock:
		return SortStock
	}
	return SortName
}

type Query struct {
	Term   string
	Sort   SortBy
	Offset *int
	Limit  *int
}

func matches(p models.Product, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), term) || strings.Contains(strconv.Itoa(p.ID), term)
}

// Filter returns the page of products matching q and the total number of matches. The
// input slice is not modified.
func Filter(products []models.Product, q Query) ([]models.Product, int) {
	term := strings.ToLower(strings.TrimSpace(q.Term))
	filtered := []models.Product{}
	for _, p := range products {
		if matches(p, term) {
			filtered = append(filtered, p)
		}
	}

	switch q.Sort {
	case SortPrice:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price.LessThan(filtered[j].Price) })
	case SortStock:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Stock > filtered[j].Stock })
	default:
		sort.SliceStable(filtered, func(i, j int) bool {
			return strings.ToLower(filtered[i].Name) < strings.ToLower(filtered[j].Name)
		})
	}

	total := len(filtered)
	if q.Offset != nil && *q.Offset > total {
		return []models.Product{}, total
	}

	start := 0
	if q.Offset != nil {
		start = clamp(*q.Offset, 0, total)
	}
	end := total
	if q.Limit != nil && *q.Limit > 0 {
		end = clamp(start+*q.Limit, start, total)
	}
	return filtered[start:end], total
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

type Level string

const (
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
	LevelLow    Level = "low"
	LevelOut    Level = "out"
)

// StockLevel classifies a stock quantity for the product list badge.
func StockLevel(stock int) Level {
	switch {
	case stock > 100:
		return LevelHigh
	case stock > 50:
		return LevelMedium
	case stock > 0:
		return LevelLow
	}
	return LevelOut
}

// Orderable reports whether a product can be picked in the order form.
func Orderable(p models.Product) bool {
	return p.Stock > 0
}

// Item is a product list row with its badge.
type Item struct {
	models.Product
	Level     Level `json:"level"`
	Orderable bool  `json:"orderable"`
}

func Items(products []models.Product) []Item {
	out := make([]Item, 0, len(products))
	for _, p := range products {
		out = append(out, Item{Product: p, Level: StockLevel(p.Stock), Orderable: Orderable(p)})
	}
	return out
}
