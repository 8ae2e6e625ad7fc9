// Package api is the single configured HTTP pipeline to the Joana backend:
// fixed base URL, fixed timeout, JSON by default, a bearer-token request
// interceptor and a 401 response interceptor.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joanaapp/joana-cli/internal/common"
	"github.com/joanaapp/joana-cli/internal/logging"
)

// DefaultTimeout bounds every request issued through the pipeline. There is
// no per-call timeout and no automatic retry on top of it.
const DefaultTimeout = 10 * time.Second

// TokenSource supplies the current bearer token. ok=false means the request
// goes out unauthenticated; a missing token is not an error.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// UnauthorizedHandler is notified when the server answers 401, before the
// error is returned to the caller. The session manager implements it by
// clearing the local session.
type UnauthorizedHandler interface {
	HandleUnauthorized(ctx context.Context)
}

// Requester is the operation surface domain services build on. *Client
// implements it; tests substitute fakes.
type Requester interface {
	GetJSON(ctx context.Context, path string, out any) error
	PostJSON(ctx context.Context, path string, in any, out any) error
	PutJSON(ctx context.Context, path string, in any, out any) error
	Delete(ctx context.Context, path string) error
	PostMultipart(ctx context.Context, path string, field string, fileName string, mimeType string, r io.Reader, out any) error
}

type Client struct {
	baseURL      string
	http         *http.Client
	tokens       TokenSource
	unauthorized UnauthorizedHandler
	log          logging.Logger
}

// New builds the pipeline. baseURL is the API root including the /api prefix;
// a zero timeout falls back to DefaultTimeout. unauthorized may be nil.
func New(baseURL string, timeout time.Duration, tokens TokenSource, unauthorized UnauthorizedHandler, log logging.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		http:         &http.Client{Timeout: timeout},
		tokens:       tokens,
		unauthorized: unauthorized,
		log:          log,
	}
}

func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) PostJSON(ctx context.Context, path string, in any, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, in, out)
}

func (c *Client) PutJSON(ctx context.Context, path string, in any, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, in, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, path, nil, "")
	if err != nil {
		return err
	}
	_, err = c.do(req)
	return err
}

func (c *Client) doJSON(ctx context.Context, method string, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, body, "application/json")
	if err != nil {
		return err
	}

	respBody, err := c.do(req)
	if err != nil {
		return err
	}
	return decode(respBody, out)
}

// newRequest builds the request and runs the outgoing interceptor: attach the
// bearer token when the source has one. Absence of a token never blocks the
// request; it is simply sent unauthenticated.
func (c *Client) newRequest(ctx context.Context, method string, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if token, ok := c.tokens.Token(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

// do sends the request and runs the incoming interceptor: a 401 invalidates
// the local session via the UnauthorizedHandler, any other non-2xx becomes a
// typed *HTTPError, transport failures wrap common.ErrUnavailable.
func (c *Client) do(req *http.Request) ([]byte, error) {
	ctx := req.Context()

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %s %s: %w", common.ErrUnavailable, req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", common.ErrUnavailable, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.log.Warn(ctx, "request unauthorized", "method", req.Method, "path", req.URL.Path)
		if c.unauthorized != nil {
			c.unauthorized.HandleUnauthorized(ctx)
		}
		return nil, fmt.Errorf("%w: %w", common.ErrUnauthorized,
			&HTTPError{Status: resp.StatusCode, Message: serverMessage(body), Body: body})
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{Status: resp.StatusCode, Message: serverMessage(body), Body: body}
	}

	return body, nil
}

func decode(body []byte, out any) error {
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
