package webhook_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merchantkit/gcheckout/notifications"
	"github.com/merchantkit/gcheckout/types"
	"github.com/merchantkit/gcheckout/webhook"
)

var testMerchant = types.Merchant{ID: "my_id", Key: "my_key"}

func fixture(t *testing.T, name string) []byte {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("..", "notifications", "testdata", name))
	require.NoError(t, err)
	return raw
}

func newTestServer(t *testing.T, onNotification func(notifications.Notification)) *webhook.Server {
	t.Helper()
	s, err := webhook.NewServer(webhook.Config{
		Merchant:       testMerchant,
		OnNotification: onNotification,
	})
	require.NoError(t, err)
	return s
}

func post(s *webhook.Server, path string, body []byte, user, pass string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	if user != "" {
		req.SetBasicAuth(user, pass)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServerRequiresMerchant(t *testing.T) {
	_, err := webhook.NewServer(webhook.Config{})
	require.Error(t, err)
}

func TestNotificationIsAcknowledged(t *testing.T) {
	var received notifications.Notification
	s := newTestServer(t, func(n notifications.Notification) { received = n })

	rec := post(s, "/checkout/notifications", fixture(t, "new-order-notification.xml"), "my_id", "my_key")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/xml; charset=UTF-8", rec.Header().Get("Content-Type"))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "<notification-acknowledgment")
	assert.Contains(t, string(body), `serial-number="bea6bc1b-e1e2-44fe-80ff-0180e33a2614"`)

	require.NotNil(t, received)
	assert.Equal(t, notifications.KindNewOrder, received.Kind())
}

func TestNotificationRejectsBadCredentials(t *testing.T) {
	s := newTestServer(t, nil)

	rec := post(s, "/checkout/notifications", fixture(t, "new-order-notification.xml"), "my_id", "wrong_key")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))

	rec = post(s, "/checkout/notifications", fixture(t, "new-order-notification.xml"), "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNotificationRejectsUnknownRoot(t *testing.T) {
	s := newTestServer(t, nil)

	rec := post(s, "/checkout/notifications", []byte(`<mystery-notification serial-number="1"/>`), "my_id", "my_key")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotificationRejectsMalformedBody(t *testing.T) {
	s := newTestServer(t, nil)

	rec := post(s, "/checkout/notifications", []byte("not xml"), "my_id", "my_key")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMerchantCalculationEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	rec := post(s, "/checkout/merchant-calculation", fixture(t, "merchant-calculation-callback.xml"), "my_id", "my_key")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMerchantCalculationRequiresAuth(t *testing.T) {
	s := newTestServer(t, nil)

	rec := post(s, "/checkout/merchant-calculation", fixture(t, "merchant-calculation-callback.xml"), "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
