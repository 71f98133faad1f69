package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStatus(t *testing.T) {
	e := FromStatus(http.StatusUnauthorized, "http://stock/api", "")
	assert.Equal(t, KindUnauthorized, e.Kind)
	assert.Equal(t, 401, e.StatusCode)
	assert.Equal(t, "http://stock/api", e.URL)
	assert.Equal(t, "401 Unauthorized", e.Message)

	e = FromStatus(http.StatusInternalServerError, "http://sale/api", "  Stock insuffisant \n")
	assert.Equal(t, KindConnectivity, e.Kind)
	assert.Equal(t, "Stock insuffisant", e.Message)
}

func TestUserMessage_UnauthorizedDiffersFromConnectivity(t *testing.T) {
	unauthorized := UserMessage(FromStatus(401, "u", "denied"), "Sale Service")
	connectivity := UserMessage(FromStatus(503, "u", ""), "Sale Service")

	assert.Contains(t, unauthorized, "Unauthorized (401)")
	assert.NotEqual(t, unauthorized, connectivity)
	assert.Equal(t, "503 Service Unavailable", connectivity)
}

func TestUserMessage_TransportFailure(t *testing.T) {
	err := Transport("http://localhost:8083", errors.New("dial tcp: connection refused"))
	assert.Equal(t, "Unable to connect to Sale Service. Please ensure the backend is running.",
		UserMessage(err, "Sale Service"))
	assert.Equal(t, 0, StatusOf(err))
}

func TestUserMessage_PlainError(t *testing.T) {
	assert.Contains(t, UserMessage(errors.New("boom"), ""), "the backend services")
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("loading dashboard: %w", FromStatus(401, "u", ""))
	assert.Equal(t, KindUnauthorized, KindOf(err))
	assert.Equal(t, 401, StatusOf(err))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(err))
	assert.Equal(t, KindUnknown, KindOf(errors.New("x")))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{Validation(FieldError{Field: "price", Description: "Price must be greater than zero"}), http.StatusBadRequest},
		{Authentication("no token"), http.StatusUnauthorized},
		{FromStatus(500, "u", ""), http.StatusBadGateway},
		{errors.New("x"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err), tt.err.Error())
	}
}

func TestValidationMessage(t *testing.T) {
	err := Validation(FieldError{Field: "quantity", Description: "Quantity must be a positive integer"})
	assert.Equal(t, "Quantity must be a positive integer", UserMessage(err, ""))
	assert.Equal(t, "validation: Quantity must be a positive integer", err.Error())
}

func TestKind_TextRoundTrip(t *testing.T) {
	b, err := json.Marshal(map[string]Kind{"kind": KindUnauthorized})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"unauthorized"}`, string(b))

	var got map[string]Kind
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, KindUnauthorized, got["kind"])
}
