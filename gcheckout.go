// Package gcheckout implements the Google Checkout merchant protocol:
// signed command XML construction, authenticated HTTPS submission, and
// classification of the gateway's XML notifications into typed values.
//
//	gw, err := gcheckout.New("my_id", "my_key", gcheckout.WithEnvironment(types.Sandbox))
//	if err != nil { ... }
//	charge := gw.NewChargeOrder("841171949013218", types.MoneyFromFloat(123.45, "USD"))
//	result, err := gw.Post(ctx, charge)
//	if err != nil { ... }           // validation or network failure
//	if result.IsError() { ... }     // gateway-reported failure
package gcheckout

import (
	"context"
	"crypto/x509"
	"net/http"
	"time"

	"github.com/merchantkit/gcheckout/commands"
	"github.com/merchantkit/gcheckout/logger"
	"github.com/merchantkit/gcheckout/metrics"
	"github.com/merchantkit/gcheckout/notifications"
	"github.com/merchantkit/gcheckout/transport"
	"github.com/merchantkit/gcheckout/types"
)

// Gateway holds the merchant credential and the environment captured at
// construction time. Every command it creates carries both, so an
// in-flight request can never observe an environment switch.
type Gateway struct {
	merchant   types.Merchant
	env        types.Environment
	logger     logger.Logger
	metrics    metrics.Recorder
	timeout    time.Duration
	httpClient *http.Client
	caPEM      []byte
	client     *transport.Client
}

// New builds a Gateway for the given credential. The default
// environment is production; pass WithEnvironment(types.Sandbox) to
// target the test servers.
func New(merchantID, merchantKey string, opts ...Option) (*Gateway, error) {
	g := &Gateway{
		merchant: types.Merchant{ID: merchantID, Key: merchantKey},
		env:      types.Production,
		logger:   logger.NoopLogger{},
		metrics:  metrics.NoopRecorder{},
		timeout:  30 * time.Second,
	}
	for _, opt := range opts {
		opt(g)
	}

	if err := g.merchant.Validate(); err != nil {
		return nil, err
	}

	var rootCAs *x509.CertPool
	if len(g.caPEM) > 0 {
		rootCAs = x509.NewCertPool()
		if !rootCAs.AppendCertsFromPEM(g.caPEM) {
			return nil, &types.GatewayError{Code: types.ErrInvalidCredential, Message: "no certificates found in CA PEM"}
		}
	}

	g.client = transport.NewClient(transport.Config{
		HTTPClient: g.httpClient,
		Timeout:    g.timeout,
		RootCAs:    rootCAs,
		Logger:     g.logger,
		Metrics:    g.metrics,
	})
	return g, nil
}

// Environment returns the environment this gateway was built for.
func (g *Gateway) Environment() types.Environment {
	return g.env
}

func (g *Gateway) NewChargeOrder(orderNumber string, amount types.Money) *commands.ChargeOrder {
	return commands.NewChargeOrder(g.merchant, g.env, orderNumber, amount)
}

func (g *Gateway) NewRefundOrder(orderNumber string, amount types.Money, reason, comment string) *commands.RefundOrder {
	return commands.NewRefundOrder(g.merchant, g.env, orderNumber, amount, reason, comment)
}

func (g *Gateway) NewCancelOrder(orderNumber string) *commands.CancelOrder {
	return commands.NewCancelOrder(g.merchant, g.env, orderNumber)
}

func (g *Gateway) NewAddTrackingData(orderNumber, carrier, trackingNumber string) *commands.AddTrackingData {
	return commands.NewAddTrackingData(g.merchant, g.env, orderNumber, carrier, trackingNumber)
}

func (g *Gateway) NewSendBuyerMessage(orderNumber, message string) *commands.SendBuyerMessage {
	return commands.NewSendBuyerMessage(g.merchant, g.env, orderNumber, message)
}

func (g *Gateway) NewCart(items ...types.CartItem) (*commands.Cart, error) {
	return commands.NewCart(g.merchant, g.env, items...)
}

// Post submits one command and returns exactly one notification, which
// may be an Error or APIError value. Network failures return a Go
// error instead; no response exists to wrap.
func (g *Gateway) Post(ctx context.Context, cmd commands.Command) (notifications.Notification, error) {
	return g.client.Post(ctx, cmd)
}
