package http_client

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// ClientInput defines the arguments for creating an HTTP client.
type ClientInput struct {
	Timeout             string `arg:"timeout,optional"`
	MaxIdleConns        int    `arg:"max_idle_conns,optional"`
	MaxIdleConnsPerHost int    `arg:"max_idle_conns_per_host,optional"`
	IdleConnTimeout     string `arg:"idle_conn_timeout,optional"`
}

func newClientInput() any {
	return &ClientInput{
		Timeout:             "30s",
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     "90s",
	}
}

// NewHTTPClient builds a live *http.Client. No connection is opened until the
// client is used.
func NewHTTPClient(ctx context.Context, input *ClientInput) (*http.Client, error) {
	timeout, err := time.ParseDuration(input.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid timeout: %w", err)
	}
	idleTimeout, err := time.ParseDuration(input.IdleConnTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid idle_conn_timeout: %w", err)
	}

	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        input.MaxIdleConns,
			MaxIdleConnsPerHost: input.MaxIdleConnsPerHost,
			IdleConnTimeout:     idleTimeout,
		},
	}, nil
}
