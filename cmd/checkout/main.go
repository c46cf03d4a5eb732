package main

import (
	"log/slog"
	"os"

	"github.com/storefront/checkout/config"
	"github.com/storefront/checkout/internal/app"
	"github.com/storefront/checkout/pkg/sigctx"
)

func main() {
	sigCtx, cancel := sigctx.NotifyContext()
	defer cancel()

	cfg := config.Load()
	cfg.Print()

	checkoutApp := app.New(cfg)

	if err := checkoutApp.Run(sigCtx); err != nil {
		slog.Error("checkout failed", "err", err)
		os.Exit(1)
	}
}
