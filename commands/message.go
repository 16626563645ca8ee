package commands

import (
	"github.com/merchantkit/gcheckout/types"
)

// SendBuyerMessage places a message on the buyer's order page. The
// gateway also mails it; send-email is always true here.
type SendBuyerMessage struct {
	command
	Message string
}

func NewSendBuyerMessage(merchant types.Merchant, env types.Environment, orderNumber, message string) *SendBuyerMessage {
	return &SendBuyerMessage{
		command: command{merchant: merchant, env: env, orderNumber: orderNumber},
		Message: message,
	}
}

func (s *SendBuyerMessage) Validate() error {
	if err := s.validate(); err != nil {
		return err
	}
	if s.Message == "" {
		return &types.GatewayError{Code: types.ErrInvalidCommand, Message: "message is required"}
	}
	return nil
}

func (s *SendBuyerMessage) XML() ([]byte, error) {
	doc, root := s.newDocument("send-buyer-message")
	root.CreateElement("message").SetText(s.Message)
	root.CreateElement("send-email").SetText("true")
	return doc.WriteToBytes()
}
