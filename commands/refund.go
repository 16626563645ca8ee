package commands

import (
	"errors"

	"github.com/merchantkit/gcheckout/types"
)

// RefundOrder returns money for a charged order. The gateway limits
// reason and comment to 140 characters each; the reason is mandatory,
// the comment optional.
type RefundOrder struct {
	command
	Amount  types.Money
	Reason  string
	Comment string
}

func NewRefundOrder(merchant types.Merchant, env types.Environment, orderNumber string, amount types.Money, reason, comment string) *RefundOrder {
	return &RefundOrder{
		command: command{merchant: merchant, env: env, orderNumber: orderNumber},
		Amount:  amount,
		Reason:  reason,
		Comment: comment,
	}
}

func (r *RefundOrder) Validate() error {
	if err := r.validate(); err != nil {
		return err
	}
	if !r.Amount.IsPositive() {
		return errors.New("Refund amount must be greater than 0!")
	}
	if len(r.Reason) == 0 {
		return errors.New("Reason must be longer than 0 characters!")
	}
	if len(r.Reason) > 140 {
		return errors.New("Reason cannot be greater than 140 characters!")
	}
	if len(r.Comment) > 140 {
		return errors.New("Comment cannot be greater than 140 characters!")
	}
	return nil
}

func (r *RefundOrder) XML() ([]byte, error) {
	doc, root := r.newDocument("refund-order")
	addMoney(root, "amount", r.Amount)
	root.CreateElement("reason").SetText(r.Reason)
	if r.Comment != "" {
		root.CreateElement("comment").SetText(r.Comment)
	}
	return doc.WriteToBytes()
}
