// Package transport is the thin HTTP shim between the stores and the
// mock-API partitions. It speaks JSON in and out and reports non-2xx
// responses as a typed Error; retry and backoff, if ever wanted, belong
// here and not in the callers.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var statusMessages = map[int]string{
	http.StatusBadRequest:          "Bad Request - The server could not understand the request due to invalid syntax.",
	http.StatusUnauthorized:        "Unauthorized - The client must authenticate itself to get the requested response.",
	http.StatusForbidden:           "Forbidden - The client does not have access rights to the content.",
	http.StatusNotFound:            "Not Found - The server can not find the requested resource.",
	http.StatusInternalServerError: "Internal Server Error - The server has encountered a situation it doesn't know how to handle.",
}

// Error is a non-2xx response from a partition.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("transport: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("transport: unexpected status %d", e.Status)
}

// IsNotFound reports whether err is a 404 from a partition.
func IsNotFound(err error) bool {
	var te *Error
	return errors.As(err, &te) && te.Status == http.StatusNotFound
}

// Client issues requests against a single partition base URL.
type Client struct {
	base string
	hc   *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		hc:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	url := c.base + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Status: resp.StatusCode, Message: statusMessages[resp.StatusCode]}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, url, err)
	}
	return nil
}
