package models

import "github.com/shopspring/decimal"

// Product is a catalog entry as the console sees it after normalization.
// Stock is only filled by the sale service listing, which joins stock levels in.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}

// StockRecord is the quantity on hand for one product.
type StockRecord struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}
