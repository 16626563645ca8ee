package commands

import "github.com/merchantkit/gcheckout/types"

// ChargeOrder charges a chargeable order for the given amount.
type ChargeOrder struct {
	command
	Amount types.Money
}

func NewChargeOrder(merchant types.Merchant, env types.Environment, orderNumber string, amount types.Money) *ChargeOrder {
	return &ChargeOrder{
		command: command{merchant: merchant, env: env, orderNumber: orderNumber},
		Amount:  amount,
	}
}

func (c *ChargeOrder) Validate() error {
	return c.validate()
}

func (c *ChargeOrder) XML() ([]byte, error) {
	doc, root := c.newDocument("charge-order")
	addMoney(root, "amount", c.Amount)
	return doc.WriteToBytes()
}
