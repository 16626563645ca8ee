package notifications

import "github.com/merchantkit/gcheckout/types"

const (
	billingAddress  = "buyer-billing-address"
	shippingAddress = "buyer-shipping-address"
)

// NewOrder announces a freshly placed order. The address accessors are
// scoped to the billing or shipping block explicitly; the generic Field
// lookup would return whichever address element happens to come first
// in the document.
type NewOrder struct {
	base
}

func (NewOrder) Kind() Kind { return KindNewOrder }

// OrderTotal is the total price of the order.
func (n NewOrder) OrderTotal() (types.Money, error) {
	return n.doc.MoneyField("order-total")
}

// TotalTax is the tax portion of the order total.
func (n NewOrder) TotalTax() (types.Money, error) {
	return n.doc.MoneyField("total-tax")
}

// EmailAllowed reports whether the buyer opted into marketing email.
func (n NewOrder) EmailAllowed() (bool, error) {
	return n.doc.BoolField("email-allowed")
}

func (n NewOrder) BillingName() (string, error) {
	return n.doc.FieldUnder(billingAddress, "contact-name")
}

func (n NewOrder) BillingEmail() (string, error) {
	return n.doc.FieldUnder(billingAddress, "email")
}

func (n NewOrder) BillingAddress1() (string, error) {
	return n.doc.FieldUnder(billingAddress, "address1")
}

func (n NewOrder) BillingCity() (string, error) {
	return n.doc.FieldUnder(billingAddress, "city")
}

func (n NewOrder) BillingRegion() (string, error) {
	return n.doc.FieldUnder(billingAddress, "region")
}

func (n NewOrder) BillingPostalCode() (string, error) {
	return n.doc.FieldUnder(billingAddress, "postal-code")
}

func (n NewOrder) BillingCountryCode() (string, error) {
	return n.doc.FieldUnder(billingAddress, "country-code")
}

func (n NewOrder) BillingPhone() (string, error) {
	return n.doc.FieldUnder(billingAddress, "phone")
}

func (n NewOrder) BillingFirstName() (string, error) {
	return n.doc.FieldUnder(billingAddress, "structured-name", "first-name")
}

func (n NewOrder) BillingLastName() (string, error) {
	return n.doc.FieldUnder(billingAddress, "structured-name", "last-name")
}

func (n NewOrder) ShippingName() (string, error) {
	return n.doc.FieldUnder(shippingAddress, "contact-name")
}

func (n NewOrder) ShippingEmail() (string, error) {
	return n.doc.FieldUnder(shippingAddress, "email")
}

func (n NewOrder) ShippingAddress1() (string, error) {
	return n.doc.FieldUnder(shippingAddress, "address1")
}

func (n NewOrder) ShippingCity() (string, error) {
	return n.doc.FieldUnder(shippingAddress, "city")
}

func (n NewOrder) ShippingRegion() (string, error) {
	return n.doc.FieldUnder(shippingAddress, "region")
}

func (n NewOrder) ShippingPostalCode() (string, error) {
	return n.doc.FieldUnder(shippingAddress, "postal-code")
}

func (n NewOrder) ShippingCountryCode() (string, error) {
	return n.doc.FieldUnder(shippingAddress, "country-code")
}

func (n NewOrder) ShippingPhone() (string, error) {
	return n.doc.FieldUnder(shippingAddress, "phone")
}

func (n NewOrder) ShippingFirstName() (string, error) {
	return n.doc.FieldUnder(shippingAddress, "structured-name", "first-name")
}

func (n NewOrder) ShippingLastName() (string, error) {
	return n.doc.FieldUnder(shippingAddress, "structured-name", "last-name")
}
