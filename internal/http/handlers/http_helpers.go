package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/sales-console/internal/apierr"
)

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

func respond(w http.ResponseWriter, status int, data any) {
	if err := writeJSON(w, status, data); err != nil {
		logger.Warn("failed to write JSON response", zap.Error(err))
	}
}

// serviceError remembers which collaborator a failure came from, for the banner text.
type serviceError struct {
	service string
	err     error
}

func (e *serviceError) Error() string { return e.service + ": " + e.err.Error() }
func (e *serviceError) Unwrap() error { return e.err }

func fromService(service string, err error) error {
	if err == nil {
		return nil
	}
	return &serviceError{service: service, err: err}
}

// writeError translates err into the console's error envelope. extra, when given, is merged
// into the body next to "error" so a view can still render its empty state.
func writeError(w http.ResponseWriter, err error, service string, extra ...func(*ErrorResponse)) {
	var se *serviceError
	if service == "" && errors.As(err, &se) {
		service = se.service
	}

	status := apierr.HTTPStatus(err)
	body := ErrorResponse{Error: ErrorBody{
		Kind:       apierr.KindOf(err),
		StatusCode: apierr.StatusOf(err),
		Message:    apierr.UserMessage(err, service),
	}}
	var e *apierr.Error
	if errors.As(err, &e) {
		body.Error.Fields = e.Fields
		body.Error.URL = e.URL
	}
	for _, f := range extra {
		f(&body)
	}

	if apierr.KindOf(err) != apierr.KindValidation {
		logger.Warn("view failed",
			zap.String("service", service),
			zap.Int("status", status),
			zap.String("url", body.Error.URL),
			zap.Error(err),
		)
	}
	respond(w, status, body)
}
