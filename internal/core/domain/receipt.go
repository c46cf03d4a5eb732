package domain

import "github.com/shopspring/decimal"

type (
	// Receipt is the outcome of a successful checkout, handed to the
	// receipt printer port.
	Receipt struct {
		Shipment    []ShipmentItem
		TotalWeight decimal.Decimal
		Subtotal    decimal.Decimal
		ShippingFee decimal.Decimal
		Total       decimal.Decimal
	}

	ShipmentItem struct {
		Name   string
		Weight decimal.Decimal
	}
)
