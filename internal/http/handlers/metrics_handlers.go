package handlers

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/rogerio-castellano/sales-console/internal/client"
	"github.com/rogerio-castellano/sales-console/internal/dashboard"
	"github.com/rogerio-castellano/sales-console/internal/models"
	"github.com/rogerio-castellano/sales-console/internal/session"
)

// GetDashboardHandler godoc
// @Summary Dashboard KPIs and the six-month order series
// @Description Fetches products, stock and orders concurrently. If any fetch fails the view
// @Description gets an error with an all-zero series.
// @Tags dashboard
// @Produce json
// @Success 200 {object} DashboardResult
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /dashboard [get]
func GetDashboardHandler(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	at := now()

	var (
		products []models.Product
		stock    []models.StockRecord
		orders   []models.Order
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		products, err = services.ListProducts(ctx, sess)
		return fromService(client.CommercialService, err)
	})
	g.Go(func() (err error) {
		stock, err = services.ListStock(ctx, sess)
		return fromService(client.StockService, err)
	})
	g.Go(func() (err error) {
		orders, err = services.ListOrders(ctx, sess)
		return fromService(client.SaleService, err)
	})
	if err := g.Wait(); err != nil {
		writeError(w, err, "", func(b *ErrorResponse) { b.Series = dashboard.EmptySeries(at) })
		return
	}

	summary := dashboard.Compute(products, stock, orders, at)
	respond(w, http.StatusOK, DashboardResult{Summary: summary, KPIs: summary.KPIs()})
}
