package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"
	"github.com/storefront/checkout/config"
	"github.com/storefront/checkout/internal/adapter/receipt"
	"github.com/storefront/checkout/internal/core/domain"
	"github.com/storefront/checkout/internal/core/port"
	"github.com/storefront/checkout/internal/core/service"
)

const (
	kindPerishable    = "perishable"
	kindNonPerishable = "non_perishable"
)

type App struct {
	cfg      config.Config
	checkout port.CheckoutProcessor
}

func New(cfg config.Config) App {
	app := App{cfg: cfg}

	app.initLogger()
	app.initCheckout()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initCheckout() {
	fee := decimal.NewFromFloat(app.cfg.ShippingFee)
	printer := receipt.NewPrinter(os.Stdout)
	app.checkout = service.New(fee, printer)
}

// Run builds the catalog, customer and cart from config and processes
// a single checkout.
func (app App) Run(ctx context.Context) error {
	const op = "App.Run"
	log := slog.With("op", op)

	catalog, err := app.buildCatalog()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	cart, err := app.buildCart(catalog)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	customer := domain.NewCustomer(
		app.cfg.Customer.Name,
		decimal.NewFromFloat(app.cfg.Customer.Balance),
	)

	err = app.checkout.ProcessCheckout(ctx, customer, cart)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("checkout done",
		"customer", customer.Name(), "balance", customer.Balance(),
	)
	return nil
}

func (app App) buildCatalog() (map[string]domain.Product, error) {
	const op = "App.buildCatalog"

	catalog := make(map[string]domain.Product, len(app.cfg.Catalog))
	for _, p := range app.cfg.Catalog {
		price := decimal.NewFromFloat(p.Price)
		weight := decimal.NewFromFloat(p.Weight)

		switch p.Kind {
		case kindPerishable:
			catalog[p.Name] = domain.NewPerishable(
				p.Name, price, p.Quantity, weight, p.Expired,
			)
		case kindNonPerishable:
			catalog[p.Name] = domain.NewNonPerishable(
				p.Name, price, p.Quantity, weight,
			)
		default:
			return nil, fmt.Errorf(
				"%s: %q: unknown product kind %q", op, p.Name, p.Kind,
			)
		}
	}
	return catalog, nil
}

func (app App) buildCart(catalog map[string]domain.Product) (*domain.Cart, error) {
	const op = "App.buildCart"

	cart := domain.NewCart()
	for _, line := range app.cfg.Order {
		p, ok := catalog[line.Product]
		if !ok {
			return nil, fmt.Errorf(
				"%s: product %q is not in the catalog", op, line.Product,
			)
		}
		if err := cart.Add(p, line.Quantity); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	return cart, nil
}
