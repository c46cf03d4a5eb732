package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "CHECKOUT_CONFIG_FILE"

const defaultShippingFee = 30.0

type product struct {
	Name     string  `mapstructure:"name"`
	Kind     string  `mapstructure:"kind"`
	Price    float64 `mapstructure:"price"`
	Quantity int     `mapstructure:"quantity"`
	Weight   float64 `mapstructure:"weight"`
	Expired  bool    `mapstructure:"expired"`
}

type orderLine struct {
	Product  string `mapstructure:"product"`
	Quantity int    `mapstructure:"quantity"`
}

type customer struct {
	Name    string  `mapstructure:"name"`
	Balance float64 `mapstructure:"balance"`
}

type Config struct {
	LogLevel    slog.Level  `mapstructure:"log_level"`
	ShippingFee float64     `mapstructure:"shipping_fee"`
	Customer    customer    `mapstructure:"customer"`
	Catalog     []product   `mapstructure:"catalog"`
	Order       []orderLine `mapstructure:"order"`
}

func Load() Config {
	viper.SetDefault("shipping_fee", defaultShippingFee)
	viper.SetConfigFile(getConfigFilepath())

	err := viper.ReadInConfig()
	if err != nil {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	return cfg
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	ShippingFee=%v

	Customer:
	Name=%q
	Balance=%v

	Catalog: %d products
	Order: %d lines

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.ShippingFee,
		c.Customer.Name,
		c.Customer.Balance,
		len(c.Catalog),
		len(c.Order),
	)
}
