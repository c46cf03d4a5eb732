package domain

import "github.com/shopspring/decimal"

type Customer struct {
	name    string
	balance decimal.Decimal
}

func NewCustomer(name string, balance decimal.Decimal) *Customer {
	return &Customer{name: name, balance: balance}
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Balance() decimal.Decimal {
	return c.balance
}

// Deduct subtracts amount unconditionally. Sufficiency is checked by
// the checkout service before the call.
func (c *Customer) Deduct(amount decimal.Decimal) {
	c.balance = c.balance.Sub(amount)
}
