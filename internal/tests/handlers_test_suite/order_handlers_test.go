package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	handler "github.com/rogerio-castellano/sales-console/internal/http/handlers"
	"github.com/rogerio-castellano/sales-console/internal/models"
)

func TestCreateOrderHandler(t *testing.T) {
	var sent map[string]any
	c := setup(t, newBackend(t, map[string]http.HandlerFunc{
		"GET /api/ventes/produits": jsonReply(200, saleProducts),
		"POST /api/ventes/commande": func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&sent)
			jsonReply(200, `{"codecmd":77,"client":"Ana","codepdt":1,"qtecmd":3,"datecmd":"2026-10-19"}`)(w, r)
		},
	}))

	w := c.do(http.MethodPost, "/orders", c.login(t, "tok"), map[string]any{"client": "Ana", "product_id": 1, "quantity": 3})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.OrderResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Invoice.ID != "77" || resp.Invoice.ProductName != "Widget" {
		t.Errorf("unexpected invoice %+v", resp.Invoice)
	}
	if !resp.Invoice.Total.Equal(decimal.NewFromInt(30)) {
		t.Errorf("expected total 30, got %s", resp.Invoice.Total)
	}
	if resp.Filename != "invoice-77.txt" || !strings.Contains(resp.Text, "TOTAL:      $30.00") {
		t.Errorf("unexpected invoice document %q / %q", resp.Filename, resp.Text)
	}
	if sent["client"] != "Ana" || sent["codePdt"] != 1.0 || sent["qteCmd"] != 3.0 {
		t.Errorf("unexpected payload %v", sent)
	}
}

func TestCreateOrderHandler_StockChecks(t *testing.T) {
	tests := []struct {
		name        string
		payload     map[string]any
		wantMessage string
	}{
		{"more than available", map[string]any{"client": "Ana", "product_id": 11, "quantity": 61}, "Quantity exceeds available stock (60 available)"},
		{"out of stock", map[string]any{"client": "Ana", "product_id": 2, "quantity": 1}, "Quantity exceeds available stock (0 available)"},
		{"unknown product", map[string]any{"client": "Ana", "product_id": 404, "quantity": 1}, "Selected product is not available"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := setup(t, newBackend(t, map[string]http.HandlerFunc{
				"GET /api/ventes/produits":  jsonReply(200, saleProducts),
				"POST /api/ventes/commande": jsonReply(200, `{}`),
			}))

			w := c.do(http.MethodPost, "/orders", c.login(t, "tok"), tt.payload)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			if resp := decodeError(t, w); resp.Error.Message != tt.wantMessage {
				t.Errorf("expected %q, got %q", tt.wantMessage, resp.Error.Message)
			}
			for _, call := range c.backend.Calls() {
				if strings.HasPrefix(call, http.MethodPost) {
					t.Errorf("order must not be sent, saw %s", call)
				}
			}
		})
	}
}

const orders = `[
	{"codecmd":1,"client":"Ana","codepdt":1,"qtecmd":2,"datecmd":"2026-10-02"},
	{"codecmd":2,"client":"Bo","codepdt":9,"qtecmd":1,"datecmd":""}
]`

func ordersBackend(t *testing.T) *backend {
	return newBackend(t, map[string]http.HandlerFunc{
		"GET /api/ventes/commandes":    jsonReply(200, orders),
		"GET /api/commercial/produits": jsonReply(200, `[{"codepdt":1,"nompdt":"Widget","prixpdt":"10,00"}]`),
	})
}

func TestGetOrdersHandler(t *testing.T) {
	c := setup(t, ordersBackend(t))

	w := c.do(http.MethodGet, "/orders", c.login(t, "tok"), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var invoices []models.Invoice
	if err := json.NewDecoder(w.Body).Decode(&invoices); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(invoices) != 2 {
		t.Fatalf("expected both orders, got %d", len(invoices))
	}
	if invoices[0].ProductName != "Widget" || !invoices[0].Total.Equal(decimal.NewFromInt(20)) {
		t.Errorf("unexpected first invoice %+v", invoices[0])
	}
	if invoices[1].ProductName != "" || !invoices[1].Total.IsZero() {
		t.Errorf("unknown product should price at zero, got %+v", invoices[1])
	}
}

func TestGetInvoiceHandler(t *testing.T) {
	c := setup(t, ordersBackend(t))
	sid := c.login(t, "tok")

	w := c.do(http.MethodGet, "/orders/1/invoice", sid, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="invoice-1.txt"` {
		t.Errorf("unexpected Content-Disposition %q", got)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Widget") || !strings.Contains(body, "$20.00") {
		t.Errorf("unexpected invoice:\n%s", body)
	}

	w = c.do(http.MethodGet, "/orders/999/invoice", sid, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for an unknown order, got %d", w.Code)
	}
}
