package dashboard

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

type KPI struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// KPIs returns the four dashboard cards in display order.
func (s Summary) KPIs() []KPI {
	return []KPI{
		{Title: "Total Products", Value: humanize.Comma(int64(s.TotalProducts))},
		{Title: "Total Stock Quantity", Value: humanize.Comma(int64(s.TotalStock))},
		{Title: "Number of Commands (This Month)", Value: humanize.Comma(int64(s.OrdersThisMonth))},
		{Title: "Revenue (This Month)", Value: Currency(s.RevenueThisMonth)},
	}
}

// Currency renders whole dollars with thousands separators: $1,235.
func Currency(d decimal.Decimal) string {
	return "$" + humanize.Comma(d.Round(0).IntPart())
}
