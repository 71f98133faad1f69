package normalize

import (
	"strings"
	"time"

	"github.com/rogerio-castellano/sales-console/internal/models"
	"github.com/shopspring/decimal"
)

// Field precedence per entity. The first key present in a record wins; the French names
// are what the collaborator services emit, the English ones are accepted for older payloads.
var (
	ProductIDKeys          = []string{"codepdt", "id", "productId", "code"}
	ProductNameKeys        = []string{"nompdt", "name"}
	ProductDescriptionKeys = []string{"descpdt", "description"}
	ProductPriceKeys       = []string{"prixpdt", "price"}
	ProductStockKeys       = []string{"qteStock", "qtepdt", "stock", "quantity"}

	StockProductKeys  = []string{"codepdt", "productId", "product", "id"}
	StockQuantityKeys = []string{"qteStock", "qtepdt", "quantity"}

	OrderIDKeys       = []string{"codecmd", "id", "orderId"}
	OrderClientKeys   = []string{"client", "clientName"}
	OrderProductKeys  = []string{"codepdt", "productId", "product"}
	OrderQuantityKeys = []string{"qtecmd", "quantity"}
	OrderDateKeys     = []string{"datecmd", "date"}

	InvoiceTotalKeys = []string{"total"}
)

func pick(r Record, keys []string) any {
	v, _ := r.First(keys...)
	return v
}

func Product(r Record) models.Product {
	return models.Product{
		ID:          NonNegativeInt(pick(r, ProductIDKeys)),
		Name:        String(pick(r, ProductNameKeys)),
		Description: String(pick(r, ProductDescriptionKeys)),
		Price:       Decimal(pick(r, ProductPriceKeys)),
		Stock:       NonNegativeInt(pick(r, ProductStockKeys)),
	}
}

func Products(rs []Record) []models.Product {
	out := make([]models.Product, 0, len(rs))
	for _, r := range rs {
		out = append(out, Product(r))
	}
	return out
}

func Stock(r Record) models.StockRecord {
	return models.StockRecord{
		ProductID: NonNegativeInt(pick(r, StockProductKeys)),
		Quantity:  NonNegativeInt(pick(r, StockQuantityKeys)),
	}
}

func StockRecords(rs []Record) []models.StockRecord {
	out := make([]models.StockRecord, 0, len(rs))
	for _, r := range rs {
		out = append(out, Stock(r))
	}
	return out
}

func Order(r Record) models.Order {
	return models.Order{
		ID:        String(pick(r, OrderIDKeys)),
		Client:    String(pick(r, OrderClientKeys)),
		ProductID: NonNegativeInt(pick(r, OrderProductKeys)),
		Quantity:  NonNegativeInt(pick(r, OrderQuantityKeys)),
		Date:      String(pick(r, OrderDateKeys)),
	}
}

func Orders(rs []Record) []models.Order {
	out := make([]models.Order, 0, len(rs))
	for _, r := range rs {
		out = append(out, Order(r))
	}
	return out
}

// Invoice normalizes the line returned by order creation. A missing total is derived
// from unit price and quantity.
func Invoice(r Record) models.Invoice {
	inv := models.Invoice{
		Order:       Order(r),
		ProductName: String(pick(r, ProductNameKeys)),
		UnitPrice:   Decimal(pick(r, ProductPriceKeys)),
	}
	if v, ok := r.First(InvoiceTotalKeys...); ok {
		inv.Total = Decimal(v)
	} else {
		inv.Total = inv.UnitPrice.Mul(decimal.NewFromInt(int64(inv.Quantity)))
	}
	return inv
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses an order date. Values without a zone are read in loc.
func ParseDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
