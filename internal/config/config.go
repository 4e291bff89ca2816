package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentConfig holds the business limits and the retry policy injected into the
// validator and the payment use case.
//
// Supported env vars:
//   - PAYMENT_MIN_AMOUNT (default: 100)
//   - PAYMENT_MAX_AMOUNT (default: 1000000)
//   - PAYMENT_MAX_INSTALLMENTS (default: 12)
//   - PAYMENT_SUPPORTED_CURRENCIES (default: BRL,USD,EUR)
//   - PAYMENT_RETRY_MAX_ATTEMPTS (default: 3)
//   - PAYMENT_RETRY_BASE_DELAY (default: 1s)
//   - PAYMENT_RETRY_MULTIPLIER (default: 2)
//   - PAYMENT_GATEWAY_TIMEOUT (default: 30s)
type PaymentConfig struct {
	MinAmount           decimal.Decimal
	MaxAmount           decimal.Decimal
	MaxInstallments     int
	SupportedCurrencies []string

	Retry          RetryConfig
	GatewayTimeout time.Duration
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64
}

func DefaultPaymentConfig() PaymentConfig {
	return PaymentConfig{
		MinAmount:           decimal.NewFromInt(100),
		MaxAmount:           decimal.NewFromInt(1000000),
		MaxInstallments:     12,
		SupportedCurrencies: []string{"BRL", "USD", "EUR"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			BaseDelay:   time.Second,
			Multiplier:  2,
		},
		GatewayTimeout: 30 * time.Second,
	}
}

// LoadPaymentConfigFromEnv overlays environment values on the defaults. Invalid
// values are logged and ignored.
func LoadPaymentConfigFromEnv() PaymentConfig {
	cfg := DefaultPaymentConfig()

	if v, ok := lookupDecimal("PAYMENT_MIN_AMOUNT"); ok {
		cfg.MinAmount = v
	}
	if v, ok := lookupDecimal("PAYMENT_MAX_AMOUNT"); ok {
		cfg.MaxAmount = v
	}
	if v, ok := lookupInt("PAYMENT_MAX_INSTALLMENTS"); ok && v > 0 {
		cfg.MaxInstallments = v
	}
	if v := strings.TrimSpace(os.Getenv("PAYMENT_SUPPORTED_CURRENCIES")); v != "" {
		var currencies []string
		for _, c := range strings.Split(v, ",") {
			if c = strings.ToUpper(strings.TrimSpace(c)); c != "" {
				currencies = append(currencies, c)
			}
		}
		if len(currencies) > 0 {
			cfg.SupportedCurrencies = currencies
		}
	}
	if v, ok := lookupInt("PAYMENT_RETRY_MAX_ATTEMPTS"); ok && v > 0 {
		cfg.Retry.MaxAttempts = v
	}
	if v, ok := lookupDuration("PAYMENT_RETRY_BASE_DELAY"); ok {
		cfg.Retry.BaseDelay = v
	}
	if v := strings.TrimSpace(os.Getenv("PAYMENT_RETRY_MULTIPLIER")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 1 {
			cfg.Retry.Multiplier = f
		} else {
			log.Printf("[config] ignoring invalid PAYMENT_RETRY_MULTIPLIER=%q", v)
		}
	}
	if v, ok := lookupDuration("PAYMENT_GATEWAY_TIMEOUT"); ok && v > 0 {
		cfg.GatewayTimeout = v
	}

	return cfg
}

// IsSupportedCurrency checks the allow-list.
func (c PaymentConfig) IsSupportedCurrency(currency string) bool {
	for _, s := range c.SupportedCurrencies {
		if s == currency {
			return true
		}
	}
	return false
}

// GetenvDefault returns the env value for key or def when unset.
func GetenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func lookupDecimal(key string) (decimal.Decimal, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		log.Printf("[config] ignoring invalid %s=%q err=%v", key, v, err)
		return decimal.Decimal{}, false
	}
	return d, true
}

func lookupInt(key string) (int, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] ignoring invalid %s=%q err=%v", key, v, err)
		return 0, false
	}
	return n, true
}

func lookupDuration(key string) (time.Duration, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, false
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("[config] ignoring invalid %s=%q err=%v", key, v, err)
		return 0, false
	}
	return d, true
}
