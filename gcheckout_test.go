package gcheckout_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merchantkit/gcheckout"
	"github.com/merchantkit/gcheckout/commands"
	"github.com/merchantkit/gcheckout/notifications"
	"github.com/merchantkit/gcheckout/types"
)

type cannedTransport struct {
	requests []*http.Request
	status   int
	body     []byte
}

func (c *cannedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	c.requests = append(c.requests, req)
	return &http.Response{
		StatusCode: c.status,
		Status:     http.StatusText(c.status),
		Body:       io.NopCloser(bytes.NewReader(c.body)),
		Header:     http.Header{},
	}, nil
}

func fixture(t *testing.T, name string) []byte {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("notifications", "testdata", name))
	require.NoError(t, err)
	return raw
}

func TestNewRequiresCredential(t *testing.T) {
	_, err := gcheckout.New("", "my_key")
	require.Error(t, err)

	_, err = gcheckout.New("my_id", "")
	require.Error(t, err)
}

func TestNewDefaultsToProduction(t *testing.T) {
	gw, err := gcheckout.New("my_id", "my_key")
	require.NoError(t, err)
	assert.Equal(t, types.Production, gw.Environment())
}

func TestWithEnvironment(t *testing.T) {
	gw, err := gcheckout.New("my_id", "my_key", gcheckout.WithEnvironment(types.Sandbox))
	require.NoError(t, err)
	assert.Equal(t, types.Sandbox, gw.Environment())
}

func TestNewRejectsGarbageCAPEM(t *testing.T) {
	_, err := gcheckout.New("my_id", "my_key", gcheckout.WithCACertsPEM([]byte("not a pem bundle")))
	require.Error(t, err)
}

func TestGatewayStampsCommands(t *testing.T) {
	gw, err := gcheckout.New("my_id", "my_key", gcheckout.WithEnvironment(types.Sandbox))
	require.NoError(t, err)

	charge := gw.NewChargeOrder("841171949013218", types.MoneyFromFloat(10, "USD"))
	assert.Equal(t, types.Sandbox, charge.Environment())
	assert.Equal(t, "my_id", charge.Merchant().ID)
}

func TestPostEndToEnd(t *testing.T) {
	ct := &cannedTransport{status: http.StatusOK, body: fixture(t, "request-received.xml")}
	gw, err := gcheckout.New("my_id", "my_key",
		gcheckout.WithEnvironment(types.Sandbox),
		gcheckout.WithHTTPClient(&http.Client{Transport: ct}))
	require.NoError(t, err)

	n, err := gw.Post(context.Background(), gw.NewCancelOrder("841171949013218"))
	require.NoError(t, err)

	assert.Equal(t, notifications.KindRequestReceived, n.Kind())
	require.Len(t, ct.requests, 1)
	assert.Equal(t, "sandbox.google.com", ct.requests[0].URL.Host)
}

func TestCartButtonEndToEnd(t *testing.T) {
	gw, err := gcheckout.New("my_id", "my_key", gcheckout.WithEnvironment(types.Sandbox))
	require.NoError(t, err)

	cart, err := gw.NewCart(types.CartItem{
		Name:     "Widget",
		Price:    types.MoneyFromFloat(5.00, "USD"),
		Quantity: 1,
	})
	require.NoError(t, err)

	u, err := cart.ButtonURL(commands.ButtonOptions{Workflow: commands.Buy, HTTPS: true})
	require.NoError(t, err)
	assert.Contains(t, u, "https://sandbox.google.com/checkout/buttons/buy.gif?")
	assert.Contains(t, u, "merchant_id=my_id")
}
