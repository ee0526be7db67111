// pkg/api/client/client.go
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

var DefaultTimeout = 30 * time.Second
var DefaultConcurrencyLimit = 5

// Client wraps http.Client with retries and concurrency control
type Client struct {
	client     *http.Client
	semChan    chan struct{}
	maxRetries int
	retryDelay time.Duration
}

// Option настраивает Client.
type Option func(*Client)

// WithTimeout задает таймаут одного запроса.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.client.Timeout = d }
}

// WithRetries задает число повторов и базовую задержку между ними.
func WithRetries(n int, delay time.Duration) Option {
	return func(c *Client) {
		c.maxRetries = n
		c.retryDelay = delay
	}
}

// WithHTTPClient подменяет транспорт (тесты, прокси).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// New creates a new API client with the given concurrency limit
func New(maxConcurrent int, opts ...Option) *Client {
	c := &Client{
		client: &http.Client{
			Timeout: DefaultTimeout,
		},
		semChan:    make(chan struct{}, maxConcurrent),
		maxRetries: 3,
		retryDelay: 1 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do executes request with retries and concurrency control.
// Ответы 5xx и сетевые ошибки повторяются, 429 ждет Retry-After.
func (c *Client) Do(req *http.Request) (*http.Response, []byte, error) {
	ctx := req.Context()
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			if err := sleep(ctx, c.retryDelay*time.Duration(attempt)); err != nil {
				return nil, nil, err
			}
			// Создаем новый request для каждой попытки
			newReq := req.Clone(ctx)
			if req.GetBody != nil {
				body, err := req.GetBody()
				if err != nil {
					return nil, nil, err
				}
				newReq.Body = body
			}
			req = newReq
		}

		c.semChan <- struct{}{}
		resp, body, err := c.doRequest(req)
		<-c.semChan

		if err != nil {
			if ctx.Err() != nil {
				return nil, nil, ctx.Err()
			}
			lastErr = err
			continue
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
				if delay, err := time.ParseDuration(retryAfter + "s"); err == nil {
					if err := sleep(ctx, delay); err != nil {
						return nil, nil, err
					}
					lastErr = fmt.Errorf("rate limited: %d", resp.StatusCode)
					continue
				}
			}
		}
		if resp.StatusCode < 500 {
			return resp, body, nil
		}
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
	}
	return nil, nil, fmt.Errorf("all retries failed: %w", lastErr)
}

func (c *Client) doRequest(req *http.Request) (*http.Response, []byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, err
	}

	return resp, body, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
