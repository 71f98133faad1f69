package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/rogerio-castellano/sales-console/internal/apierr"
	"github.com/rogerio-castellano/sales-console/internal/models"
	"github.com/rogerio-castellano/sales-console/internal/normalize"
	"github.com/rogerio-castellano/sales-console/internal/session"
)

// Display names used in user-facing connectivity messages.
const (
	CommercialService = "Commercial Service"
	StockService      = "Stock Service"
	SaleService       = "Sale Service"
)

const (
	loginPath          = "/auth/login"
	commercialProducts = "/api/commercial/produits"
	stockProducts      = "/api/stock/produits"
	saleProducts       = "/api/ventes/produits"
	saleOrders         = "/api/ventes/commandes"
	saleOrder          = "/api/ventes/commande"
)

// Endpoints holds the base address of each collaborator service.
type Endpoints struct {
	Commercial string
	Stock      string
	Sale       string
}

// Services exposes the collaborator contracts the console relies on.
type Services struct {
	client *Client
	base   Endpoints
}

func NewServices(c *Client, e Endpoints) *Services {
	return &Services{client: c, base: e}
}

func join(base, path string) string {
	return strings.TrimRight(base, "/") + path
}

func (s *Services) CommercialURL(path string) string { return join(s.base.Commercial, path) }
func (s *Services) StockURL(path string) string      { return join(s.base.Stock, path) }
func (s *Services) SaleURL(path string) string       { return join(s.base.Sale, path) }

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges credentials for a bearer token at the commercial service.
func (s *Services) Login(ctx context.Context, username, password string) (string, error) {
	url := s.CommercialURL(loginPath)
	res, err := s.client.Do(ctx, session.Anonymous, Request{
		Method: http.MethodPost,
		URL:    url,
		Body:   loginRequest{Username: username, Password: password},
	})
	if err != nil {
		if apierr.StatusOf(err) != 0 {
			e := apierr.Authentication("Invalid credentials")
			e.StatusCode = apierr.StatusOf(err)
			e.URL = url
			e.Err = err
			return "", e
		}
		return "", err
	}

	var body loginResponse
	if err := res.Decode(&body); err != nil || body.AccessToken == "" {
		e := apierr.Authentication("No token received")
		e.URL = url
		return "", e
	}
	return body.AccessToken, nil
}

func (s *Services) list(ctx context.Context, sess session.Session, url string) ([]normalize.Record, error) {
	res, err := s.client.Do(ctx, sess, Request{URL: url})
	if err != nil {
		return nil, err
	}
	var rs []normalize.Record
	if err := res.Decode(&rs); err != nil {
		return nil, &apierr.Error{
			Kind:       apierr.KindConnectivity,
			StatusCode: res.StatusCode,
			URL:        url,
			Message:    "unexpected response from service",
			Err:        err,
		}
	}
	return rs, nil
}

func (s *Services) create(ctx context.Context, sess session.Session, url string, payload any) (normalize.Record, error) {
	res, err := s.client.Do(ctx, sess, Request{Method: http.MethodPost, URL: url, Body: payload})
	if err != nil {
		return nil, err
	}
	if !res.IsJSON() {
		return nil, nil
	}
	v, err := res.Value()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", url, err)
	}
	// Anything but an object (null, a bare id) still means the creation succeeded.
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, nil
	}
	return normalize.Record(obj), nil
}

// ListProducts returns the commercial catalog (no stock levels).
func (s *Services) ListProducts(ctx context.Context, sess session.Session) ([]models.Product, error) {
	rs, err := s.list(ctx, sess, s.CommercialURL(commercialProducts))
	if err != nil {
		return nil, err
	}
	return normalize.Products(rs), nil
}

type productPayload struct {
	Name        string  `json:"nompdt"`
	Description string  `json:"descpdt"`
	Price       float64 `json:"prixpdt"`
}

// CreateProduct adds p to the commercial catalog and returns the stored product. When the
// service answers without a body, p is echoed back.
func (s *Services) CreateProduct(ctx context.Context, sess session.Session, p models.Product) (models.Product, error) {
	price, _ := p.Price.Float64()
	r, err := s.create(ctx, sess, s.CommercialURL(commercialProducts), productPayload{
		Name:        p.Name,
		Description: p.Description,
		Price:       price,
	})
	if err != nil {
		return models.Product{}, err
	}
	if r == nil {
		return p, nil
	}
	return normalize.Product(r), nil
}

func (s *Services) ListStock(ctx context.Context, sess session.Session) ([]models.StockRecord, error) {
	rs, err := s.list(ctx, sess, s.StockURL(stockProducts))
	if err != nil {
		return nil, err
	}
	return normalize.StockRecords(rs), nil
}

type stockPayload struct {
	ProductID int `json:"codepdt"`
	Quantity  int `json:"qtepdt"`
}

func (s *Services) AddStock(ctx context.Context, sess session.Session, rec models.StockRecord) (models.StockRecord, error) {
	r, err := s.create(ctx, sess, s.StockURL(stockProducts), stockPayload{ProductID: rec.ProductID, Quantity: rec.Quantity})
	if err != nil {
		return models.StockRecord{}, err
	}
	if r == nil {
		return rec, nil
	}
	return normalize.Stock(r), nil
}

// ListSaleProducts returns the catalog as the sale service sees it, stock levels joined in.
func (s *Services) ListSaleProducts(ctx context.Context, sess session.Session) ([]models.Product, error) {
	rs, err := s.list(ctx, sess, s.SaleURL(saleProducts))
	if err != nil {
		return nil, err
	}
	return normalize.Products(rs), nil
}

func (s *Services) ListOrders(ctx context.Context, sess session.Session) ([]models.Order, error) {
	rs, err := s.list(ctx, sess, s.SaleURL(saleOrders))
	if err != nil {
		return nil, err
	}
	return normalize.Orders(rs), nil
}

type orderPayload struct {
	Client    string `json:"client"`
	ProductID int    `json:"codePdt"`
	Quantity  int    `json:"qteCmd"`
}

// CreateOrder places an order; the sale service answers with the invoice line.
func (s *Services) CreateOrder(ctx context.Context, sess session.Session, client string, productID, quantity int) (models.Invoice, error) {
	r, err := s.create(ctx, sess, s.SaleURL(saleOrder), orderPayload{Client: client, ProductID: productID, Quantity: quantity})
	if err != nil {
		return models.Invoice{}, err
	}
	if r == nil {
		return models.Invoice{Order: models.Order{Client: client, ProductID: productID, Quantity: quantity}}, nil
	}
	return normalize.Invoice(r), nil
}
