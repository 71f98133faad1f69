package sales

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/sales-console/internal/models"
)

const rule = "----------------------------------------"

// InvoiceFilename is the download name of an invoice.
func InvoiceFilename(id string) string {
	if id == "" {
		id = "draft"
	}
	return "invoice-" + id + ".txt"
}

// RenderInvoice formats inv as a plain-text document.
func RenderInvoice(inv models.Invoice) string {
	product := inv.ProductName
	if product == "" {
		product = fmt.Sprintf("Product #%d", inv.ProductID)
	}
	total := inv.Total
	if total.IsZero() && !inv.UnitPrice.IsZero() {
		total = inv.UnitPrice.Mul(decimal.NewFromInt(int64(inv.Quantity)))
	}

	var b strings.Builder
	b.WriteString("INVOICE\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Order:      #%s\n", inv.ID)
	fmt.Fprintf(&b, "Date:       %s\n", inv.Date)
	fmt.Fprintf(&b, "Client:     %s\n", inv.Client)
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Product:    %s (#%d)\n", product, inv.ProductID)
	fmt.Fprintf(&b, "Quantity:   %d\n", inv.Quantity)
	fmt.Fprintf(&b, "Unit price: %s\n", money(inv.UnitPrice))
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "TOTAL:      %s\n", money(total))
	return b.String()
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
