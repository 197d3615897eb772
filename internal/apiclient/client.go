// Package apiclient is the thin HTTP wrapper over the remote catalog API.
// All persistence lives on the other side of it; the dashboard only ever sees
// JSON responses. The stored session token is attached as a bearer credential
// on every request, and server error payloads ({"message": ...}) are surfaced
// as typed errors.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rogerio-castellano/catalog-dashboard/internal/store"
)

const genericErrorMessage = "Une erreur est survenue"

// APIError carries the server's message for a non-2xx response, falling back
// to a generic string when the payload has none.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  store.Store
}

// New creates a client against baseURL. The token under store.AuthTokenKey is
// read on every request, so login/logout take effect immediately.
func New(baseURL string, tokens store.Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		tokens:  tokens,
	}
}

func (c *Client) get(ctx context.Context, path string, out any, fallback string) error {
	return c.do(ctx, http.MethodGet, path, nil, out, fallback)
}

func (c *Client) post(ctx context.Context, path string, body, out any, fallback string) error {
	return c.do(ctx, http.MethodPost, path, body, out, fallback)
}

func (c *Client) put(ctx context.Context, path string, body, out any, fallback string) error {
	return c.do(ctx, http.MethodPut, path, body, out, fallback)
}

func (c *Client) delete(ctx context.Context, path string, fallback string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, fallback)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, fallback string) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp, fallback)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if token := c.tokens.Get(store.AuthTokenKey); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func decodeError(resp *http.Response, fallback string) error {
	if fallback == "" {
		fallback = genericErrorMessage
	}
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: fallback}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Message != "" {
		apiErr.Message = payload.Message
	}
	return apiErr
}
