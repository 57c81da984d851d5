// Package churchtools reads events, services and the filter catalog from the
// ChurchTools REST API.
package churchtools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
)

const defaultTimeout = 10 * time.Second

type Config struct {
	BaseURL string // e.g. https://example.church.tools
	Token   string // login token of the API user
	Timeout time.Duration
}

// APIError is returned for non-2xx responses.
type APIError struct {
	Path   string
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("churchtools %s: status %d: %s", e.Path, e.Status, e.Body)
}

type Client struct {
	baseURL string
	token   string
	timeout time.Duration
	http    *fasthttp.Client
}

// NewClient builds a client. hc may be nil to use a default fasthttp client.
func NewClient(cfg Config, hc *fasthttp.Client) *Client {
	if hc == nil {
		hc = &fasthttp.Client{
			Name:                "duty-stats-service",
			MaxIdleConnDuration: time.Minute,
		}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		timeout: timeout,
		http:    hc,
	}
}

type envelope[T any] struct {
	Data T `json:"data"`
}

// getData performs GET {base}/api{path} and decodes the "data" member.
func getData[T any](ctx context.Context, c *Client, path string, args *fasthttp.Args) (T, error) {
	var zero T

	if err := ctx.Err(); err != nil {
		return zero, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	uri := c.baseURL + "/api" + path
	if args != nil && args.Len() > 0 {
		uri += "?" + args.String()
	}
	req.SetRequestURI(uri)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	if c.token != "" {
		req.Header.Set(fasthttp.HeaderAuthorization, "Login "+c.token)
	}

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		return zero, fmt.Errorf("churchtools %s: %w", path, err)
	}

	status := resp.StatusCode()
	if status < 200 || status > 299 {
		body := string(resp.Body())
		if len(body) > 256 {
			body = body[:256]
		}
		return zero, &APIError{Path: path, Status: status, Body: body}
	}

	var env envelope[T]
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return zero, fmt.Errorf("churchtools %s: decode: %w", path, err)
	}
	return env.Data, nil
}
