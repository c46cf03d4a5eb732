package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the closed set of catalog item variants. Exactly two
// implementations exist: Perishable and NonPerishable. Accessors are
// pure reads, products never change after construction.
type Product interface {
	// ID is a surrogate identity assigned at construction. Two products
	// with identical fields are distinct entities.
	ID() string
	Name() string
	UnitPrice() decimal.Decimal
	AvailableQuantity() int
	// Weight is the unit weight in grams.
	Weight() decimal.Decimal
	IsExpired() bool
	RequiresShipping() bool
}

var _ Product = Perishable{}
var _ Product = NonPerishable{}

type productBase struct {
	id        string
	name      string
	unitPrice decimal.Decimal
	available int
	weight    decimal.Decimal
}

func newProductBase(
	name string, unitPrice decimal.Decimal, available int, weight decimal.Decimal,
) productBase {
	return productBase{
		id:        uuid.NewString(),
		name:      name,
		unitPrice: unitPrice,
		available: available,
		weight:    weight,
	}
}

func (p productBase) ID() string                 { return p.id }
func (p productBase) Name() string               { return p.name }
func (p productBase) UnitPrice() decimal.Decimal { return p.unitPrice }
func (p productBase) AvailableQuantity() int     { return p.available }
func (p productBase) Weight() decimal.Decimal    { return p.weight }

// Perishable always requires shipping and may expire.
type Perishable struct {
	productBase
	expired bool
}

func NewPerishable(
	name string,
	unitPrice decimal.Decimal,
	availableQuantity int,
	weight decimal.Decimal,
	expired bool,
) Perishable {
	return Perishable{
		productBase: newProductBase(name, unitPrice, availableQuantity, weight),
		expired:     expired,
	}
}

func (p Perishable) IsExpired() bool        { return p.expired }
func (p Perishable) RequiresShipping() bool { return true }

// NonPerishable never expires and never requires shipping.
type NonPerishable struct {
	productBase
}

func NewNonPerishable(
	name string,
	unitPrice decimal.Decimal,
	availableQuantity int,
	weight decimal.Decimal,
) NonPerishable {
	return NonPerishable{
		productBase: newProductBase(name, unitPrice, availableQuantity, weight),
	}
}

func (p NonPerishable) IsExpired() bool        { return false }
func (p NonPerishable) RequiresShipping() bool { return false }
