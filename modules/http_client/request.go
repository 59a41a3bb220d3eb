package http_client

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/vk/componentgo/internal/ctxlog"
)

// RequestInput defines the arguments of the net.Request function.
type RequestInput struct {
	URL     string `arg:"url"`
	Method  string `arg:"method,optional"`
	Timeout string `arg:"timeout,optional"`
}

// Request performs a single HTTP request with a short-lived client and returns
// the status code and body.
func Request(ctx context.Context, input *RequestInput) (map[string]any, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Info("Making HTTP request", "method", input.Method, "url", input.URL)

	client, err := NewHTTPClient(ctx, &ClientInput{
		Timeout:             input.Timeout,
		MaxIdleConnsPerHost: 1,
		IdleConnTimeout:     input.Timeout,
	})
	if err != nil {
		return nil, err
	}
	defer client.CloseIdleConnections()

	req, err := http.NewRequestWithContext(ctx, input.Method, input.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	logger.Info("Received HTTP response", "status", resp.Status)

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return map[string]any{
		"status_code": resp.StatusCode,
		"body":        string(bodyBytes),
	}, nil
}
