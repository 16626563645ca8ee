package types

import "fmt"

// SchemaNamespace is the XML namespace every Google Checkout document
// declares on its root element.
const SchemaNamespace = "http://checkout.google.com/schema/2"

// Environment selects which Google Checkout endpoints commands and
// button URLs target. It is captured when a Gateway is constructed and
// stamped into every command, so switching environments never races
// with in-flight requests.
type Environment string

const (
	Sandbox    Environment = "sandbox"
	Production Environment = "production"
)

const (
	productionHost = "checkout.google.com"
	sandboxHost    = "sandbox.google.com"
)

// IsSandbox reports whether commands go to the test servers.
func (e Environment) IsSandbox() bool {
	return e == Sandbox
}

// RequestURL returns the command submission endpoint for a merchant.
// The sandbox host carries an extra /checkout path prefix.
func (e Environment) RequestURL(merchantID string) string {
	if e.IsSandbox() {
		return fmt.Sprintf("https://%s/checkout/api/checkout/v2/request/Merchant/%s", sandboxHost, merchantID)
	}
	return fmt.Sprintf("https://%s/api/checkout/v2/request/Merchant/%s", productionHost, merchantID)
}

// ButtonBase returns the scheme://host/path prefix under which the
// buy.gif and checkout.gif button images live.
func (e Environment) ButtonBase(https bool) string {
	scheme := "http"
	if https {
		scheme = "https"
	}
	if e.IsSandbox() {
		return fmt.Sprintf("%s://%s/checkout/buttons", scheme, sandboxHost)
	}
	return fmt.Sprintf("%s://%s/buttons", scheme, productionHost)
}

// Merchant is the credential pair issued by Google Checkout. The ID is
// the basic-auth username and URL path component; the key is the
// basic-auth password and the HMAC signing key for button URLs.
type Merchant struct {
	ID  string
	Key string
}

// Validate checks that both halves of the credential are present.
func (m Merchant) Validate() error {
	if m.ID == "" {
		return &GatewayError{Code: ErrInvalidCredential, Message: "merchant id is required"}
	}
	if m.Key == "" {
		return &GatewayError{Code: ErrInvalidCredential, Message: "merchant key is required"}
	}
	return nil
}

// ErrorCode classifies gateway-layer failures.
type ErrorCode string

const (
	ErrInvalidCredential ErrorCode = "invalid_credential"
	ErrInvalidCommand    ErrorCode = "invalid_command"
	ErrTransport         ErrorCode = "transport_failure"
)

// GatewayError is returned for failures local to this library, as
// opposed to errors the gateway reports inside a notification body.
type GatewayError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
