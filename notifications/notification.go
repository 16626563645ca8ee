// Package notifications classifies Google Checkout response and
// notification XML into a closed set of typed variants.
package notifications

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/merchantkit/gcheckout/document"
	"github.com/merchantkit/gcheckout/types"
)

// Kind is the root element tag a variant is dispatched on. KindAPIError
// is synthetic: it never appears on the wire.
type Kind string

const (
	KindRequestReceived       Kind = "request-received"
	KindNewOrder              Kind = "new-order-notification"
	KindOrderStateChange      Kind = "order-state-change-notification"
	KindChargeAmount          Kind = "charge-amount-notification"
	KindChargebackAmount      Kind = "chargeback-amount-notification"
	KindRefundAmount          Kind = "refund-amount-notification"
	KindAuthorizationAmount   Kind = "authorization-amount-notification"
	KindRiskInformation       Kind = "risk-information-notification"
	KindCancelledSubscription Kind = "cancelled-subscription-notification"
	KindCheckoutRedirect      Kind = "checkout-redirect"
	KindError                 Kind = "error"
	KindAPIError              Kind = "api-error"
)

// UnknownNotificationError reports a root element that maps to no known
// variant. There is no generic fallback.
type UnknownNotificationError struct {
	Root string
}

func (e *UnknownNotificationError) Error() string {
	return fmt.Sprintf("unknown notification type: %s", e.Root)
}

// Notification is the result of posting a command or of a pushed
// gateway notification. Only the Error and APIError variants report
// IsError true.
type Notification interface {
	Kind() Kind
	SerialNumber() string
	IsError() bool

	// AcknowledgmentXML is the document a notification consumer
	// returns to the gateway to stop redelivery.
	AcknowledgmentXML() ([]byte, error)

	// Doc exposes the parsed tree for generic field access. Nil for
	// the synthetic APIError.
	Doc() *document.Document
}

// Parse classifies a raw XML body by its root element tag.
func Parse(raw []byte) (Notification, error) {
	doc, err := document.Parse(raw)
	if err != nil {
		return nil, err
	}
	b := base{doc: doc}
	switch Kind(doc.Root().Tag) {
	case KindRequestReceived:
		return RequestReceived{b}, nil
	case KindNewOrder:
		return NewOrder{b}, nil
	case KindOrderStateChange:
		return OrderStateChange{b}, nil
	case KindChargeAmount:
		return ChargeAmount{b}, nil
	case KindChargebackAmount:
		return ChargebackAmount{b}, nil
	case KindRefundAmount:
		return RefundAmount{b}, nil
	case KindAuthorizationAmount:
		return AuthorizationAmount{b}, nil
	case KindRiskInformation:
		return RiskInformation{b}, nil
	case KindCancelledSubscription:
		return CancelledSubscription{b}, nil
	case KindCheckoutRedirect:
		return CheckoutRedirect{b}, nil
	case KindError:
		return Error{b}, nil
	}
	return nil, &UnknownNotificationError{Root: doc.Root().Tag}
}

// base implements the behavior all parsed variants share.
type base struct {
	doc *document.Document
}

func (b base) Doc() *document.Document {
	return b.doc
}

// SerialNumber is the root element's serial-number attribute.
func (b base) SerialNumber() string {
	return b.doc.Root().SelectAttrValue("serial-number", "")
}

func (b base) IsError() bool {
	return false
}

// Field resolves a logical name over the whole document, first match in
// document order. Sub-keys of merchant-private-data resolve as if they
// were at the root.
func (b base) Field(name string) (string, error) {
	return b.doc.Field(name)
}

func (b base) MoneyField(name string) (types.Money, error) {
	return b.doc.MoneyField(name)
}

func (b base) BoolField(name string) (bool, error) {
	return b.doc.BoolField(name)
}

// State is the financial state shortcut: financial-order-state when
// present, else new-financial-order-state, else empty.
func (b base) State() string {
	if v, err := b.doc.Field("financial-order-state"); err == nil {
		return v
	}
	if v, err := b.doc.Field("new-financial-order-state"); err == nil {
		return v
	}
	return ""
}

func (b base) AcknowledgmentXML() ([]byte, error) {
	return acknowledgmentXML(b.SerialNumber())
}

func acknowledgmentXML(serialNumber string) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("notification-acknowledgment")
	root.CreateAttr("xmlns", types.SchemaNamespace)
	root.CreateAttr("serial-number", serialNumber)
	return doc.WriteToBytes()
}
