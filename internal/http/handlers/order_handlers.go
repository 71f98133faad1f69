package handlers

import (
	"fmt"
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/rogerio-castellano/sales-console/internal/apierr"
	"github.com/rogerio-castellano/sales-console/internal/client"
	"github.com/rogerio-castellano/sales-console/internal/dashboard"
	"github.com/rogerio-castellano/sales-console/internal/models"
	"github.com/rogerio-castellano/sales-console/internal/sales"
	"github.com/rogerio-castellano/sales-console/internal/session"
)

// CreateOrderHandler godoc
// @Summary Place an order
// @Description The form is checked locally, then against the stock the sale service reports,
// @Description before the order is sent.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body sales.OrderForm true "Order to place"
// @Success 201 {object} OrderResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /orders [post]
func CreateOrderHandler(w http.ResponseWriter, r *http.Request) {
	var form sales.OrderForm
	if err := readJSON(w, r, &form); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if err := form.Validate(math.MaxInt); err != nil {
		writeError(w, err, "")
		return
	}

	ctx := r.Context()
	sess := session.FromContext(ctx)

	products, err := services.ListSaleProducts(ctx, sess)
	if err != nil {
		writeError(w, err, client.SaleService)
		return
	}
	product, ok := findProduct(products, form.ProductID)
	if !ok {
		writeError(w, apierr.Validation(apierr.FieldError{Field: "product_id", Description: "Selected product is not available"}), "")
		return
	}
	if err := form.Validate(product.Stock); err != nil {
		writeError(w, err, "")
		return
	}

	inv, err := services.CreateOrder(ctx, sess, form.Client, form.ProductID, form.Quantity)
	if err != nil {
		writeError(w, err, client.SaleService)
		return
	}
	inv = priceInvoice(inv, product)

	respond(w, http.StatusCreated, OrderResult{
		Invoice:  inv,
		Filename: sales.InvoiceFilename(inv.ID),
		Text:     sales.RenderInvoice(inv),
	})
}

// GetOrdersHandler godoc
// @Summary Orders with product names and totals
// @Description Orders from the sale service priced against the commercial catalog.
// @Tags orders
// @Produce json
// @Success 200 {array} models.Invoice
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /orders [get]
func GetOrdersHandler(w http.ResponseWriter, r *http.Request) {
	invoices, err := pricedOrders(r)
	if err != nil {
		writeError(w, err, "")
		return
	}
	respond(w, http.StatusOK, invoices)
}

// GetInvoiceHandler godoc
// @Summary Download the text invoice of an order
// @Tags orders
// @Produce plain
// @Param id path string true "Order ID"
// @Success 200 {string} string "Invoice"
// @Failure 404 {string} string "Not found"
// @Failure 502 {object} ErrorResponse
// @Router /orders/{id}/invoice [get]
func GetInvoiceHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	invoices, err := pricedOrders(r)
	if err != nil {
		writeError(w, err, "")
		return
	}
	for _, inv := range invoices {
		if inv.ID != id {
			continue
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", sales.InvoiceFilename(inv.ID)))
		w.Write([]byte(sales.RenderInvoice(inv)))
		return
	}
	http.Error(w, "order not found", http.StatusNotFound)
}

// pricedOrders fetches orders and the commercial catalog concurrently and joins them.
func pricedOrders(r *http.Request) ([]models.Invoice, error) {
	sess := session.FromContext(r.Context())

	var (
		orders   []models.Order
		products []models.Product
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		orders, err = services.ListOrders(ctx, sess)
		return fromService(client.SaleService, err)
	})
	g.Go(func() (err error) {
		products, err = services.ListProducts(ctx, sess)
		return fromService(client.CommercialService, err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[int]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	prices := dashboard.PriceIndex(products)

	out := make([]models.Invoice, 0, len(orders))
	for _, o := range orders {
		unit := prices[o.ProductID]
		out = append(out, models.Invoice{
			Order:       o,
			ProductName: byID[o.ProductID].Name,
			UnitPrice:   unit,
			Total:       unit.Mul(decimal.NewFromInt(int64(o.Quantity))),
		})
	}
	return out, nil
}

func findProduct(products []models.Product, id int) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// priceInvoice fills what the sale service left out of the invoice line from the product.
func priceInvoice(inv models.Invoice, p models.Product) models.Invoice {
	if inv.ProductID == 0 {
		inv.ProductID = p.ID
	}
	if inv.ProductName == "" {
		inv.ProductName = p.Name
	}
	if inv.UnitPrice.IsZero() {
		inv.UnitPrice = p.Price
	}
	if inv.Total.IsZero() {
		inv.Total = inv.UnitPrice.Mul(decimal.NewFromInt(int64(inv.Quantity)))
	}
	return inv
}
