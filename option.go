package gcheckout

import (
	"net/http"
	"time"

	"github.com/merchantkit/gcheckout/logger"
	"github.com/merchantkit/gcheckout/metrics"
	"github.com/merchantkit/gcheckout/types"
)

type Option func(*Gateway)

// WithEnvironment selects sandbox or production endpoints for every
// command and button URL this gateway produces.
func WithEnvironment(env types.Environment) Option {
	return func(g *Gateway) {
		g.env = env
	}
}

func WithLogger(l logger.Logger) Option {
	return func(g *Gateway) {
		g.logger = l
	}
}

func WithMetrics(r metrics.Recorder) Option {
	return func(g *Gateway) {
		g.metrics = r
	}
}

func WithTimeout(t time.Duration) Option {
	return func(g *Gateway) {
		g.timeout = t
	}
}

// WithHTTPClient replaces the built-in client entirely; the caller then
// owns timeouts and TLS configuration.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) {
		g.httpClient = c
	}
}

// WithCACertsPEM pins the server certificate validation to the CA
// certificates in the given PEM bundle instead of the system store.
func WithCACertsPEM(pem []byte) Option {
	return func(g *Gateway) {
		g.caPEM = pem
	}
}
