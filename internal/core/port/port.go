package port

import (
	"context"

	"github.com/storefront/checkout/internal/core/domain"
)

type CheckoutProcessor interface {
	ProcessCheckout(context.Context, *domain.Customer, *domain.Cart) error
}

type ReceiptPrinter interface {
	PrintReceipt(domain.Receipt) error
}
