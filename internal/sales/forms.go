// Package sales validates the console's write forms before anything is sent to a collaborator
// service, and renders invoices.
package sales

import (
	"fmt"
	"strings"

	"github.com/rogerio-castellano/sales-console/internal/apierr"
	"github.com/rogerio-castellano/sales-console/internal/models"
	"github.com/rogerio-castellano/sales-console/internal/normalize"
)

const (
	msgRequired = "Please fill in all required fields"
	msgPrice    = "Price must be a valid number greater than 0"
	msgQuantity = "Quantity must be a positive integer"
)

// OrderForm is the create-order form.
type OrderForm struct {
	Client    string `json:"client"`
	ProductID int    `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Validate checks the form against the stock available for the chosen product.
func (f OrderForm) Validate(available int) error {
	var errs []apierr.FieldError
	if strings.TrimSpace(f.Client) == "" {
		errs = append(errs, apierr.FieldError{Field: "client", Description: msgRequired})
	}
	if f.ProductID <= 0 {
		errs = append(errs, apierr.FieldError{Field: "product_id", Description: msgRequired})
	}
	switch {
	case f.Quantity <= 0:
		errs = append(errs, apierr.FieldError{Field: "quantity", Description: msgQuantity})
	case f.ProductID > 0 && f.Quantity > available:
		errs = append(errs, apierr.FieldError{
			Field:       "quantity",
			Description: fmt.Sprintf("Quantity exceeds available stock (%d available)", available),
		})
	}
	if len(errs) > 0 {
		return apierr.Validation(errs...)
	}
	return nil
}

// ProductForm is the create-product form. Price may arrive as a number or as text with a
// comma decimal separator.
type ProductForm struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       any    `json:"price" swaggertype:"string" example:"12,50"`
}

func (f ProductForm) Validate() (models.Product, error) {
	var errs []apierr.FieldError
	name := strings.TrimSpace(f.Name)
	if name == "" {
		errs = append(errs, apierr.FieldError{Field: "name", Description: msgRequired})
	}
	price := normalize.Decimal(f.Price)
	if !price.IsPositive() {
		errs = append(errs, apierr.FieldError{Field: "price", Description: msgPrice})
	}
	if len(errs) > 0 {
		return models.Product{}, apierr.Validation(errs...)
	}
	return models.Product{Name: name, Description: strings.TrimSpace(f.Description), Price: price}, nil
}

// StockForm is the add-stock form.
type StockForm struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

func (f StockForm) Validate() (models.StockRecord, error) {
	var errs []apierr.FieldError
	if f.ProductID <= 0 {
		errs = append(errs, apierr.FieldError{Field: "product_id", Description: msgRequired})
	}
	if f.Quantity <= 0 {
		errs = append(errs, apierr.FieldError{Field: "quantity", Description: msgQuantity})
	}
	if len(errs) > 0 {
		return models.StockRecord{}, apierr.Validation(errs...)
	}
	return models.StockRecord{ProductID: f.ProductID, Quantity: f.Quantity}, nil
}
