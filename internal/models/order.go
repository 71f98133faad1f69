package models

import "github.com/shopspring/decimal"

// Order is a sale order. ID is opaque: the sale service may send it as a number or a string.
// Date keeps the raw value; it may not parse.
type Order struct {
	ID        string `json:"id"`
	Client    string `json:"client"`
	ProductID int    `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Date      string `json:"date"`
}

// Invoice is the line returned when an order is placed, or an order priced against the catalog.
type Invoice struct {
	Order
	ProductName string          `json:"product_name,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}
