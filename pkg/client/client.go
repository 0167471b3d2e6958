package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"

	v1 "github.com/khimalex/shoedryer/api/v1"
	serviceErrs "github.com/khimalex/shoedryer/pkg/errors"
)

const (
	apiPrefix      = "/api/v1"
	defaultTimeout = 30 * time.Second
)

// Client talks to the shoedryer control API.
type Client struct {
	api *v1.ClientWithResponses
}

type options struct {
	token      string
	httpClient *http.Client
}

type Option func(*options)

// WithToken sends token as a bearer token on every request.
func WithToken(token string) Option {
	return func(o *options) {
		o.token = token
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize client: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("failed to initialize client: invalid base url %q", baseURL)
	}

	o := options{httpClient: &http.Client{Timeout: defaultTimeout}}
	for _, opt := range opts {
		opt(&o)
	}

	api, err := v1.NewClientWithResponses(u.JoinPath(apiPrefix).String(),
		v1.WithHTTPClient(o.httpClient),
		v1.WithRequestEditorFn(func(ctx context.Context, req *http.Request) error {
			if o.token == "" {
				return nil
			}
			req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", o.token))
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize client: %w", err)
	}

	return &Client{api: api}, nil
}

// Status returns the pool status
// GET /api/v1/pool
func (c *Client) Status(ctx context.Context) (*v1.PoolStatus, error) {
	resp, err := c.api.GetPoolWithResponse(ctx)
	if err != nil {
		return nil, err
	}
	if resp.JSON200 == nil {
		return nil, responseError("status", resp.HTTPResponse, resp.Body)
	}
	return resp.JSON200, nil
}

// Start executes the Start command. A nil workers keeps the current worker count.
// POST /api/v1/pool
func (c *Client) Start(ctx context.Context, workers *int, restart bool) (*v1.PoolStatus, error) {
	params := &v1.StartPoolParams{}
	if restart {
		params.Restart = &restart
	}

	resp, err := c.api.StartPoolWithResponse(ctx, params, v1.StartPoolRequest{Workers: workers})
	if err != nil {
		return nil, err
	}
	if resp.JSON202 == nil {
		return nil, responseError("start", resp.HTTPResponse, resp.Body)
	}
	return resp.JSON202, nil
}

// Stop executes the Stop command.
// DELETE /api/v1/pool
func (c *Client) Stop(ctx context.Context) (*v1.PoolStatus, error) {
	resp, err := c.api.StopPoolWithResponse(ctx)
	if err != nil {
		return nil, err
	}
	if resp.JSON200 == nil {
		return nil, responseError("stop", resp.HTTPResponse, resp.Body)
	}
	return resp.JSON200, nil
}

// Cancel cancels the running Start command.
// POST /api/v1/pool/cancel
func (c *Client) Cancel(ctx context.Context) (*v1.PoolStatus, error) {
	resp, err := c.api.CancelPoolStartWithResponse(ctx)
	if err != nil {
		return nil, err
	}
	if resp.JSON202 == nil {
		return nil, responseError("start.cancel", resp.HTTPResponse, resp.Body)
	}
	return resp.JSON202, nil
}

// SetWorkers sets the worker count of the next cohort.
// PUT /api/v1/pool/workers
func (c *Client) SetWorkers(ctx context.Context, workers int) (*v1.PoolStatus, error) {
	resp, err := c.api.SetPoolWorkersWithResponse(ctx, v1.SetWorkersRequest{Workers: workers})
	if err != nil {
		return nil, err
	}
	if resp.JSON200 == nil {
		return nil, responseError("workers", resp.HTTPResponse, resp.Body)
	}
	return resp.JSON200, nil
}

// Runs lists journaled runs. Zero limit uses the server default.
// GET /api/v1/runs
func (c *Client) Runs(ctx context.Context, limit, offset int, outcomes ...string) (*v1.RunListResponse, error) {
	params := &v1.ListRunsParams{}
	if limit > 0 {
		params.Limit = &limit
	}
	if offset > 0 {
		params.Offset = &offset
	}
	if len(outcomes) > 0 {
		filter := make([]v1.RunOutcome, 0, len(outcomes))
		for _, o := range outcomes {
			filter = append(filter, v1.RunOutcome(o))
		}
		params.Outcome = &filter
	}

	resp, err := c.api.ListRunsWithResponse(ctx, params)
	if err != nil {
		return nil, err
	}
	if resp.JSON200 == nil {
		return nil, responseError("runs", resp.HTTPResponse, resp.Body)
	}
	return resp.JSON200, nil
}

// Run returns a run with its worker outcomes.
// GET /api/v1/runs/{id}
func (c *Client) Run(ctx context.Context, id string) (*v1.Run, error) {
	resp, err := c.api.GetRunWithResponse(ctx, id)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		if resp.JSON200 == nil {
			return nil, fmt.Errorf("failed to decode run %s: unexpected content type %q", id, resp.HTTPResponse.Header.Get("Content-Type"))
		}
		return resp.JSON200, nil
	case http.StatusNotFound:
		return nil, serviceErrs.NewRunNotFoundError(id)
	default:
		return nil, responseError("run", resp.HTTPResponse, resp.Body)
	}
}

// WaitForState polls the pool status until it reaches state or maxWait elapses.
// Authorization failures stop the polling immediately.
func (c *Client) WaitForState(ctx context.Context, state v1.PoolStatusState, maxWait time.Duration) (*v1.PoolStatus, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 50 * time.Millisecond
	b.MaxInterval = time.Second

	operation := func() (*v1.PoolStatus, error) {
		st, err := c.Status(ctx)
		if err != nil {
			if serviceErrs.IsUnauthorizedError(err) {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}
		if st.State != state {
			return nil, fmt.Errorf("pool is %s, waiting for %s", st.State, state)
		}
		return st, nil
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(b),
		backoff.WithMaxElapsedTime(maxWait),
		backoff.WithNotify(func(err error, next time.Duration) {
			zap.S().Named("client").Debugw("waiting for pool", "reason", err, "next", next)
		}),
	)
}

// APIError is returned for unexpected responses.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Message)
}

// IsAPIError reports whether err is an APIError with the given status code.
func IsAPIError(err error, statusCode int) bool {
	var e *APIError
	return errors.As(err, &e) && e.StatusCode == statusCode
}

// responseError maps a response the operation did not expect to a typed error.
func responseError(operation string, resp *http.Response, body []byte) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return serviceErrs.NewUnauthorizedError()
	case http.StatusNotFound:
		return serviceErrs.NewResourceNotFoundError("route", resp.Request.URL.Path)
	case http.StatusConflict:
		return serviceErrs.NewGateViolationError(operation)
	default:
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(body)}
	}
}

func errorMessage(body []byte) string {
	var e v1.Error
	if err := json.Unmarshal(body, &e); err != nil || e.Error == "" {
		return strings.TrimSpace(string(body))
	}
	return e.Error
}
