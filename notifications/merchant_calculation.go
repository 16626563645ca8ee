package notifications

import (
	"github.com/merchantkit/gcheckout/document"
	"github.com/merchantkit/gcheckout/types"
)

// MerchantCalculation wraps a merchant-calculation-callback request:
// the gateway asks the merchant to price shipping, tax, or coupons for
// an anonymous address.
type MerchantCalculation struct {
	doc *document.Document
}

// ParseMerchantCalculation reads a callback request body.
func ParseMerchantCalculation(raw []byte) (*MerchantCalculation, error) {
	doc, err := document.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &MerchantCalculation{doc: doc}, nil
}

// AddressID is the id attribute of the anonymous-address element.
func (m *MerchantCalculation) AddressID() (string, error) {
	el := m.doc.FindElement("anonymous-address")
	if el == nil {
		return "", &document.FieldError{Name: "anonymous-address"}
	}
	return el.SelectAttrValue("id", ""), nil
}

// Field resolves a logical name over the callback document, same
// contract as notification field access.
func (m *MerchantCalculation) Field(name string) (string, error) {
	return m.doc.Field(name)
}

func (m *MerchantCalculation) MoneyField(name string) (types.Money, error) {
	return m.doc.MoneyField(name)
}

func (m *MerchantCalculation) Doc() *document.Document {
	return m.doc
}
