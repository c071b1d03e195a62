package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/wb-go/wbf/logger"

	"github.com/unifyevents/cartgate/internal/config"
	"github.com/unifyevents/cartgate/internal/domain"
)

// Client talks to the remote booking API on behalf of the caller's cookie
// session. Mutations are never retried automatically; idempotent GETs retry
// on transport errors and 5xx. A single 401 triggers one token refresh and
// one replay of the original request.
type Client struct {
	api  *resty.Client
	auth *resty.Client
	log  logger.Logger
}

func NewClient(cfg config.UpstreamConfig, log logger.Logger) *Client {
	api := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(cfg.RetryAttempts).
		SetRetryWaitTime(cfg.RetryDelay).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if r == nil || r.Request == nil || r.Request.Method != http.MethodGet {
				return false
			}
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})

	auth := resty.New().
		SetBaseURL(cfg.AuthBaseURL).
		SetTimeout(cfg.Timeout)

	return &Client{api: api, auth: auth, log: log}
}

type call struct {
	op       string
	method   string
	url      string
	body     any
	result   any
	notFound error
}

func (c *Client) do(ctx context.Context, creds *domain.Credentials, cl call) error {
	resp, err := c.send(ctx, creds, cl)
	if err != nil {
		return &domain.UpstreamError{Op: cl.op, Err: err}
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		if rerr := c.refresh(ctx, creds); rerr != nil {
			return &domain.UpstreamError{Op: cl.op, Status: http.StatusUnauthorized, Err: rerr}
		}
		resp, err = c.send(ctx, creds, cl)
		if err != nil {
			return &domain.UpstreamError{Op: cl.op, Err: err}
		}
	}

	switch {
	case resp.IsSuccess():
		return nil
	case resp.StatusCode() == http.StatusNotFound && cl.notFound != nil:
		return cl.notFound
	default:
		return &domain.UpstreamError{Op: cl.op, Status: resp.StatusCode()}
	}
}

func (c *Client) send(ctx context.Context, creds *domain.Credentials, cl call) (*resty.Response, error) {
	req := c.api.R().
		SetContext(ctx).
		SetCookies(creds.Cookies)

	if cl.body != nil {
		req.SetBody(cl.body)
	}
	if cl.result != nil {
		req.SetResult(cl.result)
	}

	return req.Execute(cl.method, cl.url)
}

func (c *Client) refresh(ctx context.Context, creds *domain.Credentials) error {
	resp, err := c.auth.R().
		SetContext(ctx).
		SetCookies(creds.Cookies).
		Post("/token/refresh/")
	if err != nil {
		return fmt.Errorf("token refresh: %w", err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("token refresh: status %d", resp.StatusCode())
	}

	creds.Merge(resp.Cookies())
	c.log.Debug("upstream session refreshed")

	return nil
}
