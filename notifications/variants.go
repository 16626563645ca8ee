package notifications

import (
	"strings"

	"github.com/merchantkit/gcheckout/document"
	"github.com/merchantkit/gcheckout/types"
)

// RequestReceived acknowledges a command that carries no payload of its
// own (cancel, tracking data, buyer message).
type RequestReceived struct {
	base
}

func (RequestReceived) Kind() Kind { return KindRequestReceived }

// OrderStateChange reports a financial or fulfillment state
// transition. The new states are reachable through Field
// ("new_financial_order_state", "new_fulfillment_order_state") or the
// State shortcut.
type OrderStateChange struct {
	base
}

func (OrderStateChange) Kind() Kind { return KindOrderStateChange }

// RefundAmount reports the latest and cumulative refunded amounts.
type RefundAmount struct {
	base
}

func (RefundAmount) Kind() Kind { return KindRefundAmount }

func (n RefundAmount) LatestRefundAmount() (types.Money, error) {
	return n.doc.MoneyField("latest-refund-amount")
}

func (n RefundAmount) TotalRefundAmount() (types.Money, error) {
	return n.doc.MoneyField("total-refund-amount")
}

// AuthorizationAmount reports a reauthorization of the buyer's card.
type AuthorizationAmount struct {
	base
}

func (AuthorizationAmount) Kind() Kind { return KindAuthorizationAmount }

// RiskInformation carries the gateway's fraud screening result.
type RiskInformation struct {
	base
}

func (RiskInformation) Kind() Kind { return KindRiskInformation }

// CancelledSubscription reports a subscription order torn down by the
// buyer or by Google.
type CancelledSubscription struct {
	base
}

func (CancelledSubscription) Kind() Kind { return KindCancelledSubscription }

// ChargeAmount reports a completed charge.
type ChargeAmount struct {
	base
}

func (ChargeAmount) Kind() Kind { return KindChargeAmount }

func (n ChargeAmount) LatestChargeAmount() (types.Money, error) {
	return n.doc.MoneyField("latest-charge-amount")
}

func (n ChargeAmount) TotalChargeAmount() (types.Money, error) {
	return n.doc.MoneyField("total-charge-amount")
}

// ChargebackAmount reports a chargeback filed by the buyer.
type ChargebackAmount struct {
	base
}

func (ChargebackAmount) Kind() Kind { return KindChargebackAmount }

func (n ChargebackAmount) LatestChargebackAmount() (types.Money, error) {
	return n.doc.MoneyField("latest-chargeback-amount")
}

func (n ChargebackAmount) TotalChargebackAmount() (types.Money, error) {
	return n.doc.MoneyField("total-chargeback-amount")
}

// CheckoutRedirect is the response to posting a cart: the URL the buyer
// is sent to. The gateway double-escapes ampersands in the tag content,
// so the accessor decodes them back to literal form.
type CheckoutRedirect struct {
	base
}

func (CheckoutRedirect) Kind() Kind { return KindCheckoutRedirect }

func (n CheckoutRedirect) RedirectURL() (string, error) {
	raw, err := n.doc.Field("redirect-url")
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(raw, "&amp;", "&"), nil
}

// Error is a business-level failure the gateway reports inside a 2xx
// response body.
type Error struct {
	base
}

func (Error) Kind() Kind { return KindError }

func (Error) IsError() bool { return true }

func (n Error) Message() string {
	v, _ := n.doc.Field("error-message")
	return v
}

// APIError is synthesized by the transport layer for HTTP statuses that
// carry no parseable gateway body. It has no document and no serial
// number but satisfies the same error contract as a parsed Error.
type APIError struct {
	message string
}

func NewAPIError(message string) *APIError {
	return &APIError{message: message}
}

func (*APIError) Kind() Kind { return KindAPIError }

func (*APIError) SerialNumber() string { return "" }

func (*APIError) IsError() bool { return true }

func (a *APIError) Message() string { return a.message }

func (a *APIError) Doc() *document.Document { return nil }

func (a *APIError) AcknowledgmentXML() ([]byte, error) {
	return acknowledgmentXML("")
}
