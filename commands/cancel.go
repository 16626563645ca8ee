package commands

import "github.com/merchantkit/gcheckout/types"

// CancelOrder cancels an order that has not been charged yet.
type CancelOrder struct {
	command
}

func NewCancelOrder(merchant types.Merchant, env types.Environment, orderNumber string) *CancelOrder {
	return &CancelOrder{
		command: command{merchant: merchant, env: env, orderNumber: orderNumber},
	}
}

func (c *CancelOrder) Validate() error {
	return c.validate()
}

func (c *CancelOrder) XML() ([]byte, error) {
	doc, _ := c.newDocument("cancel-order")
	return doc.WriteToBytes()
}
