package commands

import (
	"github.com/merchantkit/gcheckout/types"
)

// AddTrackingData attaches a carrier tracking number to a shipped
// order.
type AddTrackingData struct {
	command
	Carrier        string
	TrackingNumber string
}

func NewAddTrackingData(merchant types.Merchant, env types.Environment, orderNumber, carrier, trackingNumber string) *AddTrackingData {
	return &AddTrackingData{
		command:        command{merchant: merchant, env: env, orderNumber: orderNumber},
		Carrier:        carrier,
		TrackingNumber: trackingNumber,
	}
}

func (a *AddTrackingData) Validate() error {
	if err := a.validate(); err != nil {
		return err
	}
	if a.Carrier == "" {
		return &types.GatewayError{Code: types.ErrInvalidCommand, Message: "carrier is required"}
	}
	if a.TrackingNumber == "" {
		return &types.GatewayError{Code: types.ErrInvalidCommand, Message: "tracking number is required"}
	}
	return nil
}

func (a *AddTrackingData) XML() ([]byte, error) {
	doc, root := a.newDocument("add-tracking-data")
	data := root.CreateElement("tracking-data")
	data.CreateElement("carrier").SetText(a.Carrier)
	data.CreateElement("tracking-number").SetText(a.TrackingNumber)
	return doc.WriteToBytes()
}
