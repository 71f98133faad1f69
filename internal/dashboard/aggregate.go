// Package dashboard derives the dashboard KPIs and the monthly order series from the three
// normalized collections. Nothing here does I/O.
package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/sales-console/internal/models"
	"github.com/rogerio-castellano/sales-console/internal/normalize"
)

// Months is the length of the chart window.
const Months = 6

type Month struct {
	Key   string    `json:"key"`
	Label string    `json:"label"`
	Start time.Time `json:"-"`
}

// Window returns n consecutive months ending at the month containing now, oldest first.
func Window(now time.Time, n int) []Month {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	out := make([]Month, 0, n)
	for i := n - 1; i >= 0; i-- {
		m := first.AddDate(0, -i, 0)
		out = append(out, Month{Key: monthKey(m), Label: m.Format("Jan"), Start: m})
	}
	return out
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

// PriceIndex maps product id to unit price. Unknown ids read as zero from the map.
func PriceIndex(products []models.Product) map[int]decimal.Decimal {
	idx := make(map[int]decimal.Decimal, len(products))
	for _, p := range products {
		idx[p.ID] = p.Price
	}
	return idx
}

func StockTotal(stock []models.StockRecord) int {
	total := 0
	for _, s := range stock {
		if s.Quantity > 0 {
			total += s.Quantity
		}
	}
	return total
}

type Bucket struct {
	Month   string          `json:"month"`
	Key     string          `json:"key"`
	Orders  int             `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

// Summary is everything the dashboard view renders.
type Summary struct {
	TotalProducts    int             `json:"total_products"`
	TotalStock       int             `json:"total_stock"`
	OrdersThisMonth  int             `json:"orders_this_month"`
	RevenueThisMonth decimal.Decimal `json:"revenue_this_month"`
	Series           []Bucket        `json:"series"`
	GeneratedAt      time.Time       `json:"generated_at"`
}

// Compute aggregates one snapshot of the three collections. It is a pure function of its
// arguments. Orders whose date does not parse or falls outside the window count nowhere.
// The current-month figures are the last bucket of the series.
func Compute(products []models.Product, stock []models.StockRecord, orders []models.Order, now time.Time) Summary {
	series := EmptySeries(now)
	pos := make(map[string]int, len(series))
	for i, b := range series {
		pos[b.Key] = i
	}

	prices := PriceIndex(products)
	for _, o := range orders {
		t, ok := normalize.ParseDate(o.Date, now.Location())
		if !ok {
			continue
		}
		i, ok := pos[monthKey(t.In(now.Location()))]
		if !ok {
			continue
		}
		series[i].Orders++
		series[i].Revenue = series[i].Revenue.Add(prices[o.ProductID].Mul(decimal.NewFromInt(int64(o.Quantity))))
	}

	current := series[len(series)-1]
	return Summary{
		TotalProducts:    len(products),
		TotalStock:       StockTotal(stock),
		OrdersThisMonth:  current.Orders,
		RevenueThisMonth: current.Revenue,
		Series:           series,
		GeneratedAt:      now,
	}
}

// EmptySeries is the zero chart shown when a fetch fails.
func EmptySeries(now time.Time) []Bucket {
	window := Window(now, Months)
	series := make([]Bucket, len(window))
	for i, m := range window {
		series[i] = Bucket{Month: m.Label, Key: m.Key, Revenue: decimal.Zero}
	}
	return series
}
