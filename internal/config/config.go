package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/nikolayk812/pos-demo/internal/domain"
	"github.com/nikolayk812/pos-demo/internal/payment"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const EnvPrefix = "POS"

type Config struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	CurrencyCode   string          `envconfig:"CURRENCY" default:"USD"`
	TaxRateValue   decimal.Decimal `envconfig:"TAX_RATE" default:"0"`
	PaymentMethods []string        `envconfig:"PAYMENT_METHODS" default:"cash,credit,debit,check,voucher,gift_card,qr"`

	SubmitDelay   time.Duration `envconfig:"SUBMIT_DELAY" default:"1500ms"`
	SubmitTimeout time.Duration `envconfig:"SUBMIT_TIMEOUT" default:"10s"`

	Breaker BreakerConfig

	CatalogDSN  string `envconfig:"CATALOG_DSN"`
	MetricsAddr string `envconfig:"METRICS_ADDR"`

	currency currency.Unit
	methods  []domain.PaymentMethod
}

type BreakerConfig struct {
	Enabled     bool          `envconfig:"ENABLED" default:"false"`
	MaxFailures uint32        `envconfig:"MAX_FAILURES" default:"5"`
	OpenTimeout time.Duration `envconfig:"OPEN_TIMEOUT" default:"30s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	unit, err := currency.ParseISO(c.CurrencyCode)
	if err != nil {
		return fmt.Errorf("currency[%s] is not valid: %w", c.CurrencyCode, err)
	}
	c.currency = unit

	if c.TaxRateValue.IsNegative() {
		return fmt.Errorf("tax rate[%s] is negative", c.TaxRateValue)
	}

	methods, err := payment.ParseList(c.PaymentMethods)
	if err != nil {
		return fmt.Errorf("payment.ParseList: %w", err)
	}
	if len(methods) == 0 {
		return errors.New("no payment methods configured")
	}
	c.methods = methods

	if c.SubmitTimeout < 0 {
		return fmt.Errorf("submit timeout[%s] is negative", c.SubmitTimeout)
	}

	return nil
}

func (c *Config) Currency() currency.Unit {
	return c.currency
}

func (c *Config) TaxRate() decimal.Decimal {
	return c.TaxRateValue
}

// Methods returns the accepted payment methods in configured order.
func (c *Config) Methods() []domain.PaymentMethod {
	return c.methods
}
