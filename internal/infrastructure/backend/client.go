// Package backend is the typed client for the Lexi REST API. Session
// credentials live in an httpOnly cookie held by the client's jar; no token
// ever enters application state. Every call is single-attempt: failures are
// surfaced once to the caller, never retried.
package backend

import (
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/lexidocs/lexi-cli/internal/core/ports"
)

var (
	_ ports.AuthAPI     = (*Client)(nil)
	_ ports.DocumentAPI = (*Client)(nil)
	_ ports.AnalysisAPI = (*Client)(nil)
)

// CallObserver receives one observation per gateway call.
type CallObserver interface {
	ObserveGatewayCall(operation string, err error, elapsed time.Duration)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
	observer   CallObserver
}

type Option func(*Client)

func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

func WithObserver(obs CallObserver) Option {
	return func(c *Client) { c.observer = obs }
}

func New(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) finish(operation string, start time.Time, err error) {
	elapsed := time.Since(start)
	if c.observer != nil {
		c.observer.ObserveGatewayCall(operation, err, elapsed)
	}
	if err != nil {
		c.log.Warn("backend_call",
			"operation", operation,
			"duration_ms", float64(elapsed.Microseconds())/1000.0,
			"error", err,
		)
		return
	}
	c.log.Debug("backend_call",
		"operation", operation,
		"duration_ms", float64(elapsed.Microseconds())/1000.0,
	)
}
