package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/storefront/checkout/internal/core/domain"
	"github.com/storefront/checkout/internal/core/port"
)

var _ port.CheckoutProcessor = Checkout{}

// Checkout is a stateless service holding the flat shipping fee and the
// receipt printer port.
type Checkout struct {
	shippingFee decimal.Decimal
	printer     port.ReceiptPrinter
}

func New(shippingFee decimal.Decimal, printer port.ReceiptPrinter) Checkout {
	return Checkout{shippingFee: shippingFee, printer: printer}
}

// ProcessCheckout validates the cart against the catalog and the
// customer balance, then commits: deducts the total and emits the
// receipt. Fail-fast: the first violated precondition aborts with no
// mutation and no receipt. Checks run in observable order: empty cart,
// per-item expiry then stock, aggregate balance last.
func (s Checkout) ProcessCheckout(
	ctx context.Context, customer *domain.Customer, cart *domain.Cart,
) error {
	const op = "Checkout.ProcessCheckout"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cart.IsEmpty() {
		return fmt.Errorf("%s: %w", op, domain.ErrCartEmpty)
	}

	var subtotal, totalWeight decimal.Decimal
	var shipment []domain.ShipmentItem

	for _, entry := range cart.Items() {
		p := entry.Product

		if p.IsExpired() {
			return fmt.Errorf("%s: %q: %w", op, p.Name(), domain.ErrProductExpired)
		}
		// Re-validated independently of the add-time check: the catalog
		// may have changed since the entry was added.
		if p.AvailableQuantity() < entry.Quantity {
			return fmt.Errorf("%s: %q: %w", op, p.Name(), domain.ErrOutOfStock)
		}

		qty := decimal.NewFromInt(int64(entry.Quantity))
		subtotal = subtotal.Add(p.UnitPrice().Mul(qty))

		if p.RequiresShipping() {
			totalWeight = totalWeight.Add(p.Weight().Mul(qty))
			shipment = append(shipment, domain.ShipmentItem{
				Name:   p.Name(),
				Weight: p.Weight(),
			})
		}
	}

	total := subtotal.Add(s.shippingFee)
	if customer.Balance().LessThan(total) {
		return fmt.Errorf("%s: %w", op, domain.ErrInsufficientBalance)
	}

	customer.Deduct(total)

	receipt := domain.Receipt{
		Shipment:    shipment,
		TotalWeight: totalWeight,
		Subtotal:    subtotal,
		ShippingFee: s.shippingFee,
		Total:       total,
	}
	if err := s.printer.PrintReceipt(receipt); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("checkout completed",
		"customer", customer.Name(),
		"amount", total,
		"balance", customer.Balance(),
	)
	return nil
}
