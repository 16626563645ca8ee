package commands

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"net/url"
)

// Workflow selects which button the URL points at.
type Workflow string

const (
	Buy      Workflow = "buy"
	Checkout Workflow = "checkout"
)

// ButtonOptions configure a signed button URL. Workflow and scheme are
// independent and compose with the cart's environment.
type ButtonOptions struct {
	Workflow Workflow
	HTTPS    bool
}

// Signature computes the Base64 HMAC-SHA1 digest the gateway verifies
// against the encoded cart payload.
func Signature(key string, payload []byte) string {
	mac := hmac.New(sha1.New, []byte(key))
	mac.Write(payload)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// ButtonURL builds the browser-redirectable buy/checkout URL carrying
// the Base64-encoded cart XML and its signature. An empty cart still
// produces a well-formed signature over the empty-items document.
func (c *Cart) ButtonURL(opts ButtonOptions) (string, error) {
	workflow := opts.Workflow
	if workflow == "" {
		workflow = Buy
	}

	cartXML, err := c.XML()
	if err != nil {
		return "", fmt.Errorf("serialize cart: %w", err)
	}

	params := url.Values{}
	params.Set("merchant_id", c.merchant.ID)
	params.Set("cart", base64.StdEncoding.EncodeToString(cartXML))
	params.Set("signature", Signature(c.merchant.Key, cartXML))

	base := c.env.ButtonBase(opts.HTTPS)
	return fmt.Sprintf("%s/%s.gif?%s", base, workflow, params.Encode()), nil
}

// CheckoutButton renders an image tag for the signed button URL,
// suitable for embedding in a merchant page.
func (c *Cart) CheckoutButton(opts ButtonOptions) (string, error) {
	u, err := c.ButtonURL(opts)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`<img src="%s" alt="Google Checkout" />`, u), nil
}
