// Package socketio_client provides a socket.io client component. The client
// is built offline and only dials when asked to.
package socketio_client

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"time"

	"github.com/vk/componentgo/internal/ctxlog"
	"github.com/vk/componentgo/internal/registry"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// ClientInput defines the arguments for creating a socket.io client.
type ClientInput struct {
	URL                string `arg:"url"`
	Namespace          string `arg:"namespace,optional"`
	InsecureSkipVerify bool   `arg:"insecure_skip_verify,optional"`
	Connect            bool   `arg:"connect,optional"`
	Timeout            string `arg:"timeout,optional"`
}

func newClientInput() any {
	return &ClientInput{Namespace: "/", Timeout: "15s"}
}

// NewSocketIOClient builds a websocket-only socket.io client for the given
// URL and namespace. Unless connect is set, no connection is attempted until
// the caller connects the returned socket.
func NewSocketIOClient(ctx context.Context, input *ClientInput) (*socket.Socket, error) {
	logger := ctxlog.FromContext(ctx).With("url", input.URL, "namespace", input.Namespace)

	parsedURL, err := url.Parse(input.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("url %q must include a scheme and a host", input.URL)
	}
	timeout, err := time.ParseDuration(input.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid timeout: %w", err)
	}

	opts := socket.DefaultOptions()
	if parsedURL.Path != "" {
		opts.SetPath(parsedURL.Path)
	}
	opts.SetAutoConnect(false)
	if input.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification.")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	client := socket.NewManager(baseURL, opts).Socket(input.Namespace, opts)

	if !input.Connect {
		logger.Debug("Created socket.io client, connection deferred.")
		return client, nil
	}
	if err := connect(ctx, client, timeout); err != nil {
		return nil, err
	}
	return client, nil
}

// connect dials and blocks until the namespace is joined, the attempt fails,
// ctx ends or timeout passes. The socket is disconnected on every failure.
func connect(ctx context.Context, client *socket.Socket, timeout time.Duration) error {
	logger := ctxlog.FromContext(ctx)
	connectChan := make(chan error, 1)

	client.Once(types.EventName("connect"), func(...any) {
		logger.Info("Connected to socket.io server.", "sid", client.Id())
		select {
		case connectChan <- nil:
		default:
		}
	})
	client.Once(types.EventName("connect_error"), func(errs ...any) {
		err := fmt.Errorf("connect_error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		select {
		case connectChan <- err:
		default:
		}
	})

	logger.Debug("Initiating socket.io connection.", "timeout", timeout.String())
	client.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			client.Disconnect()
			return fmt.Errorf("socket.io connection failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		client.Disconnect()
		return fmt.Errorf("context cancelled while waiting for socket.io connection: %w", ctx.Err())
	case <-time.After(timeout):
		client.Disconnect()
		return fmt.Errorf("timed out after %s waiting for socket.io connection", timeout)
	}
}

// Register registers the client class.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterClass("net.SocketIOClient", &registry.Factory{
		NewInput: newClientInput,
		Fn:       NewSocketIOClient,
	})
}
