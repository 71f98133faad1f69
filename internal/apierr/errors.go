package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies a failure the way the console reports it to the user.
type Kind int

const (
	KindUnknown Kind = iota
	KindConnectivity
	KindUnauthorized
	KindValidation
	KindAuthentication
)

func (k Kind) String() string {
	switch k {
	case KindConnectivity:
		return "connectivity"
	case KindUnauthorized:
		return "unauthorized"
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	default:
		return "unknown"
	}
}

// MarshalText lets Kind serialize as its name in JSON payloads.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	for _, c := range []Kind{KindConnectivity, KindUnauthorized, KindValidation, KindAuthentication} {
		if c.String() == string(b) {
			*k = c
			return nil
		}
	}
	*k = KindUnknown
	return nil
}

const unauthorizedMessage = "Unauthorized (401). Your token is missing/expired. Please login again."

const authenticationMessage = "Invalid credentials or backend unreachable"

// FieldError describes one failed form constraint.
type FieldError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// Error is the single error type returned by collaborator calls and form validation.
// StatusCode is 0 when no HTTP response was received.
type Error struct {
	Kind       Kind
	StatusCode int
	URL        string
	Message    string
	Fields     []FieldError
	Err        error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (%d)", e.StatusCode)
	}
	if e.URL != "" {
		b.WriteString(" ")
		b.WriteString(e.URL)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// FromStatus builds the error for a non-2xx response. body is the response text, possibly empty.
func FromStatus(status int, url, body string) *Error {
	msg := strings.TrimSpace(body)
	if msg == "" {
		msg = fmt.Sprintf("%d %s", status, http.StatusText(status))
	}
	kind := KindConnectivity
	if status == http.StatusUnauthorized {
		kind = KindUnauthorized
	}
	return &Error{Kind: kind, StatusCode: status, URL: url, Message: msg}
}

// Transport wraps a failure that happened before any response was read.
func Transport(url string, err error) *Error {
	return &Error{Kind: KindConnectivity, URL: url, Message: err.Error(), Err: err}
}

func Validation(fields ...FieldError) *Error {
	msg := "invalid input"
	if len(fields) > 0 {
		msg = fields[0].Description
	}
	return &Error{Kind: KindValidation, Message: msg, Fields: fields}
}

func Authentication(msg string) *Error {
	return &Error{Kind: KindAuthentication, Message: msg}
}

// KindOf reports the Kind of err, or KindUnknown when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// StatusOf reports the upstream status code carried by err, 0 when none.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}

// UserMessage translates err into the text shown in the view's error banner.
// service names the collaborator for the generic connectivity message.
func UserMessage(err error, service string) string {
	var e *Error
	if !errors.As(err, &e) {
		return connectivityMessage(service)
	}
	switch e.Kind {
	case KindUnauthorized:
		return unauthorizedMessage
	case KindAuthentication:
		return authenticationMessage
	case KindValidation:
		return e.Message
	case KindConnectivity:
		// Transport errors carry Go's dial text, which is not useful in a banner.
		if e.StatusCode == 0 || e.Message == "" {
			return connectivityMessage(service)
		}
		return e.Message
	}
	return connectivityMessage(service)
}

func connectivityMessage(service string) string {
	if service == "" {
		service = "the backend services"
	}
	return fmt.Sprintf("Unable to connect to %s. Please ensure the backend is running.", service)
}

// HTTPStatus picks the console's response status for err.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindUnauthorized, KindAuthentication:
		return http.StatusUnauthorized
	case KindValidation:
		return http.StatusBadRequest
	case KindConnectivity:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
