// Package commands builds the outbound XML documents of the Google
// Checkout Merchant API and the signed button URLs of the HTML API.
package commands

import (
	"github.com/beevik/etree"
	"github.com/go-playground/validator/v10"

	"github.com/merchantkit/gcheckout/types"
)

var validate = validator.New()

// Command is an outbound merchant action ready to be posted. Validation
// runs before serialization; a command that fails Validate never
// reaches the network.
type Command interface {
	Validate() error
	XML() ([]byte, error)
	Merchant() types.Merchant
	Environment() types.Environment
}

// command carries what every command kind shares: the owning credential,
// the environment captured at construction time, and the order number
// the command targets.
type command struct {
	merchant    types.Merchant
	env         types.Environment
	orderNumber string
}

func (c command) Merchant() types.Merchant {
	return c.merchant
}

func (c command) Environment() types.Environment {
	return c.env
}

// GoogleOrderNumber returns the order this command operates on. Empty
// for cart checkouts, which create the order.
func (c command) GoogleOrderNumber() string {
	return c.orderNumber
}

func (c command) validate() error {
	return c.merchant.Validate()
}

// newDocument starts a gateway document: XML declaration, namespaced
// root, and the google-order-number attribute when the command targets
// an existing order.
func (c command) newDocument(rootTag string) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement(rootTag)
	root.CreateAttr("xmlns", types.SchemaNamespace)
	if c.orderNumber != "" {
		root.CreateAttr("google-order-number", c.orderNumber)
	}
	return doc, root
}

func addMoney(parent *etree.Element, tag string, m types.Money) {
	el := parent.CreateElement(tag)
	el.CreateAttr("currency", m.Currency)
	el.SetText(m.String())
}
