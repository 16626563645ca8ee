// Package transport posts command XML to the gateway over
// authenticated HTTPS and classifies the raw HTTP response.
package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/merchantkit/gcheckout/commands"
	"github.com/merchantkit/gcheckout/logger"
	"github.com/merchantkit/gcheckout/metrics"
	"github.com/merchantkit/gcheckout/notifications"
	"github.com/merchantkit/gcheckout/types"
)

const contentType = "application/xml; charset=UTF-8"

// Config assembles a Client. Zero values get sensible defaults; a nil
// RootCAs falls back to the system trust store.
type Config struct {
	HTTPClient *http.Client
	Timeout    time.Duration
	RootCAs    *x509.CertPool
	Logger     logger.Logger
	Metrics    metrics.Recorder
}

// Client issues one HTTPS request per Post call. It never retries; the
// caller owns retry policy.
type Client struct {
	httpClient *http.Client
	logger     logger.Logger
	metrics    metrics.Recorder
}

func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				TLSClientConfig:     &tls.Config{RootCAs: cfg.RootCAs},
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	log := cfg.Logger
	if log == nil {
		log = logger.NoopLogger{}
	}
	recorder := cfg.Metrics
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &Client{httpClient: httpClient, logger: log, metrics: recorder}
}

// Post validates and serializes the command, sends it to the endpoint
// selected by the command's captured environment, and classifies the
// response. Validation failures and network errors are returned as Go
// errors; gateway and protocol-classification failures come back as
// Error/APIError notification values.
func (c *Client) Post(ctx context.Context, cmd commands.Command) (notifications.Notification, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	body, err := cmd.XML()
	if err != nil {
		return nil, fmt.Errorf("serialize command: %w", err)
	}

	merchant := cmd.Merchant()
	endpoint := cmd.Environment().RequestURL(merchant.ID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(merchant.ID, merchant.Key)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/xml")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("post command", map[string]any{"endpoint": endpoint, "error": err.Error()})
		return nil, &types.GatewayError{Code: types.ErrTransport, Message: "post command", Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("close response body", map[string]any{"error": err.Error()})
		}
	}()
	c.metrics.ObserveLatency("post", time.Since(start), map[string]string{"status": strconv.Itoa(resp.StatusCode)})

	return c.classify(resp)
}

func (c *Client) classify(resp *http.Response) (notifications.Notification, error) {
	code := resp.StatusCode
	switch {
	case code >= 200 && code < 300:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, &types.GatewayError{Code: types.ErrTransport, Message: "read response body", Err: err}
		}
		n, err := notifications.Parse(body)
		if err != nil {
			return nil, err
		}
		c.metrics.IncCounter("response", map[string]string{"kind": string(n.Kind())})
		return n, nil
	case code >= 300 && code < 400:
		c.metrics.IncCounter("response", map[string]string{"kind": string(notifications.KindAPIError)})
		return notifications.NewAPIError(fmt.Sprintf("Unexpected response code (Redirection): %d - %s", code, reasonPhrase(resp))), nil
	default:
		c.metrics.IncCounter("response", map[string]string{"kind": string(notifications.KindAPIError)})
		return notifications.NewAPIError(fmt.Sprintf("Unknown response code: %d - %s", code, reasonPhrase(resp))), nil
	}
}

// reasonPhrase recovers the status line's reason text, falling back to
// the standard text for the code.
func reasonPhrase(resp *http.Response) string {
	if s := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))); s != "" {
		return s
	}
	if s := http.StatusText(resp.StatusCode); s != "" {
		return s
	}
	return "Unknown Response"
}
