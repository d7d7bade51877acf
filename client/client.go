// Package client is a typed Go client for the invoicing API. Every call
// is fire-once: no retries, no caching, no implicit timeouts beyond the
// caller's context.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
)

// RequestError is the single error shape every failed call is normalized
// to: transport failures, structured {"error": ...} bodies and unparseable
// bodies all end up here with a human-readable message. Status is 0 when
// no response was received.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string { return e.Message }

// Client talks to the invoicing API. The cookie jar carries the session
// cookie across calls after Login.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New returns a client rooted at baseURL (e.g. "http://localhost:8080/api").
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Jar: jar},
	}, nil
}

// request performs one call. body may be nil, a pre-encoded string/[]byte,
// or any value to JSON-encode. The parsed JSON response lands in out when
// out is non-nil.
func (c *Client) request(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	case []byte:
		reader = bytes.NewReader(b)
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return &RequestError{Message: "Request failed"}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &RequestError{Message: "Request failed"}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &RequestError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFrom(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RequestError{Status: resp.StatusCode, Message: "Request failed"}
	}
	return nil
}

// errorFrom extracts a message from a non-2xx response: the body's
// "error" field when present, "HTTP <status>" when the body parses but
// carries no message, and "Request failed" when it doesn't parse at all.
func (c *Client) errorFrom(resp *http.Response) *RequestError {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return &RequestError{Status: resp.StatusCode, Message: "Request failed"}
	}
	if body.Error == "" {
		return &RequestError{Status: resp.StatusCode, Message: fmt.Sprintf("HTTP %d", resp.StatusCode)}
	}
	return &RequestError{Status: resp.StatusCode, Message: body.Error}
}

// download fetches a binary endpoint and returns the raw bytes, bypassing
// JSON handling.
func (c *Client) download(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, &RequestError{Message: "Request failed"}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &RequestError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.errorFrom(resp)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Status: resp.StatusCode, Message: "Request failed"}
	}
	return data, nil
}
