// Package client calls the collaborator services on behalf of a session.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/sales-console/internal/apierr"
	"github.com/rogerio-castellano/sales-console/internal/session"
)

const maxErrorBody = 64 << 10

// Request describes one collaborator call. Body may be nil, []byte, string, or any value
// that is encoded as JSON.
type Request struct {
	Method string
	URL    string
	Body   any
	Header http.Header
}

// Response is a successful (2xx) collaborator response with its body fully read.
type Response struct {
	StatusCode int
	Header     http.Header
	body       []byte
}

// Empty reports a 204 No Content response.
func (r *Response) Empty() bool {
	return r.StatusCode == http.StatusNoContent
}

func (r *Response) IsJSON() bool {
	return strings.Contains(r.Header.Get("Content-Type"), "application/json")
}

// Decode unmarshals a JSON body into v. Numbers are kept as json.Number so the
// normalizers see exactly what the service sent.
func (r *Response) Decode(v any) error {
	if r.Empty() || len(bytes.TrimSpace(r.body)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(r.body))
	dec.UseNumber()
	return dec.Decode(v)
}

func (r *Response) Text() string {
	return string(r.body)
}

// Value yields nil for 204, the parsed JSON value for a JSON body, the raw text otherwise.
func (r *Response) Value() (any, error) {
	if r.Empty() {
		return nil, nil
	}
	if r.IsJSON() {
		var v any
		if err := r.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
	return r.Text(), nil
}

type Client struct {
	http *http.Client
	log  *zap.Logger
}

// New wraps hc; a nil hc uses a client with no timeout of its own.
func New(hc *http.Client, log *zap.Logger) *Client {
	if hc == nil {
		hc = &http.Client{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{http: hc, log: log}
}

// Do sends req with the session's bearer token, if any. Non-2xx responses and transport
// failures come back as *apierr.Error. There is no retry.
func (c *Client) Do(ctx context.Context, sess session.Session, req Request) (*Response, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	body, err := encodeBody(req.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, body)
	if err != nil {
		return nil, apierr.Transport(req.URL, err)
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	httpReq.Header.Set("Accept", "application/json")
	if sess.Authenticated() {
		httpReq.Header.Set("Authorization", "Bearer "+sess.Token())
	}
	if body != nil && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	res, err := c.http.Do(httpReq)
	if err != nil {
		c.log.Debug("collaborator call failed", zap.String("method", method), zap.String("url", req.URL), zap.Error(err))
		return nil, apierr.Transport(req.URL, err)
	}
	defer res.Body.Close()

	c.log.Debug("collaborator call",
		zap.String("method", method),
		zap.String("url", req.URL),
		zap.Int("status", res.StatusCode),
		zap.Duration("took", time.Since(start)),
	)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		return nil, apierr.FromStatus(res.StatusCode, req.URL, string(text))
	}

	out := &Response{StatusCode: res.StatusCode, Header: res.Header}
	if res.StatusCode == http.StatusNoContent {
		return out, nil
	}
	out.body, err = io.ReadAll(res.Body)
	if err != nil {
		return nil, apierr.Transport(req.URL, err)
	}
	return out, nil
}

func encodeBody(b any) (io.Reader, error) {
	switch v := b.(type) {
	case nil:
		return nil, nil
	case []byte:
		return bytes.NewReader(v), nil
	case string:
		return strings.NewReader(v), nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return bytes.NewReader(data), nil
	}
}
