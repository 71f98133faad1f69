package handlers

import (
	"net/http"
	"strconv"

	"github.com/rogerio-castellano/sales-console/internal/catalog"
	"github.com/rogerio-castellano/sales-console/internal/client"
	"github.com/rogerio-castellano/sales-console/internal/sales"
	"github.com/rogerio-castellano/sales-console/internal/session"
)

// GetProductsHandler godoc
// @Summary Product list with stock levels
// @Description Products as the sale service reports them, searched by name or id and sorted.
// @Tags products
// @Produce json
// @Param q query string false "Search by name or id"
// @Param sort query string false "name, price or stock" Enums(name, price, stock)
// @Param offset query int false "Offset"
// @Param limit query int false "Limit"
// @Success 200 {object} ProductsSearchResult
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := catalog.Query{
		Term: q.Get("q"),
		Sort: catalog.ParseSort(q.Get("sort")),
	}
	if v, err := strconv.Atoi(q.Get("offset")); err == nil {
		query.Offset = &v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil {
		query.Limit = &v
	}

	products, err := services.ListSaleProducts(r.Context(), session.FromContext(r.Context()))
	if err != nil {
		writeError(w, err, client.SaleService)
		return
	}

	page, total := catalog.Filter(products, query)
	respond(w, http.StatusOK, ProductsSearchResult{Data: catalog.Items(page), Meta: Meta{TotalCount: total}})
}

// GetCatalogHandler godoc
// @Summary Commercial catalog, without stock levels
// @Tags admin
// @Produce json
// @Success 200 {array} models.Product
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /admin/products [get]
func GetCatalogHandler(w http.ResponseWriter, r *http.Request) {
	products, err := services.ListProducts(r.Context(), session.FromContext(r.Context()))
	if err != nil {
		writeError(w, err, client.CommercialService)
		return
	}
	respond(w, http.StatusOK, products)
}

// CreateProductHandler godoc
// @Summary Create a product in the commercial catalog
// @Tags admin
// @Accept json
// @Produce json
// @Param product body sales.ProductForm true "Product to add"
// @Success 201 {object} models.Product
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /admin/products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var form sales.ProductForm
	if err := readJSON(w, r, &form); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	product, err := form.Validate()
	if err != nil {
		writeError(w, err, "")
		return
	}

	created, err := services.CreateProduct(r.Context(), session.FromContext(r.Context()), product)
	if err != nil {
		writeError(w, err, client.CommercialService)
		return
	}
	respond(w, http.StatusCreated, created)
}

// AddStockHandler godoc
// @Summary Add stock for a product
// @Tags admin
// @Accept json
// @Produce json
// @Param stock body sales.StockForm true "Stock to add"
// @Success 201 {object} models.StockRecord
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /admin/stock [post]
func AddStockHandler(w http.ResponseWriter, r *http.Request) {
	var form sales.StockForm
	if err := readJSON(w, r, &form); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	rec, err := form.Validate()
	if err != nil {
		writeError(w, err, "")
		return
	}

	added, err := services.AddStock(r.Context(), session.FromContext(r.Context()), rec)
	if err != nil {
		writeError(w, err, client.StockService)
		return
	}
	respond(w, http.StatusCreated, added)
}
