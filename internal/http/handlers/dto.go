package handlers

import (
	"github.com/rogerio-castellano/sales-console/internal/apierr"
	"github.com/rogerio-castellano/sales-console/internal/catalog"
	"github.com/rogerio-castellano/sales-console/internal/dashboard"
	"github.com/rogerio-castellano/sales-console/internal/models"
)

type ErrorBody struct {
	Kind       apierr.Kind         `json:"kind" swaggertype:"string" example:"connectivity"`
	StatusCode int                 `json:"status_code,omitempty"`
	URL        string              `json:"url,omitempty"`
	Message    string              `json:"message"`
	Fields     []apierr.FieldError `json:"fields,omitempty"`
}

type ErrorResponse struct {
	Error  ErrorBody          `json:"error"`
	Series []dashboard.Bucket `json:"series,omitempty"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	SessionID string `json:"session_id"`
	TokenType string `json:"token_type"`
	Subject   string `json:"subject,omitempty"`
}

type SessionResult struct {
	Authenticated bool   `json:"authenticated"`
	Subject       string `json:"subject,omitempty"`
}

type DashboardResult struct {
	dashboard.Summary
	KPIs []dashboard.KPI `json:"kpis"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ProductsSearchResult struct {
	Data []catalog.Item `json:"data"`
	Meta Meta           `json:"meta"`
}

type OrderResult struct {
	Invoice  models.Invoice `json:"invoice"`
	Filename string         `json:"filename"`
	Text     string         `json:"text"`
}

type UserResponse struct {
	models.User
	Password string `json:"password"`
}
