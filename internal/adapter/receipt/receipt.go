package receipt

import (
	"fmt"
	"io"
	"strings"

	"github.com/storefront/checkout/internal/core/domain"
	"github.com/storefront/checkout/internal/core/port"
)

var _ port.ReceiptPrinter = Printer{}

// Printer writes the textual receipt to an io.Writer, stdout in
// production wiring.
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) Printer {
	return Printer{w}
}

// PrintReceipt renders the shipment notice and checkout receipt. The
// "1x" prefix and the gram-valued total with a "kg" label reproduce the
// source receipt format verbatim.
func (p Printer) PrintReceipt(r domain.Receipt) error {
	const op = "Printer.PrintReceipt"

	var b strings.Builder
	if len(r.Shipment) > 0 {
		b.WriteString("** Shipment notice **\n")
		for _, item := range r.Shipment {
			fmt.Fprintf(&b, "1x %s %sg\n", item.Name, item.Weight)
		}
		fmt.Fprintf(&b, "Total package weight %skg\n", r.TotalWeight)
	}
	b.WriteString("** Checkout receipt **\n")
	fmt.Fprintf(&b, "Subtotal: %s\n", r.Subtotal)
	fmt.Fprintf(&b, "Shipping: %s\n", r.ShippingFee)
	fmt.Fprintf(&b, "Amount: %s\n", r.Total)

	if _, err := io.WriteString(p.w, b.String()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
