package config

import (
	"testing"
	"time"
)

func TestLoadPaymentConfigFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{
		"PAYMENT_MIN_AMOUNT", "PAYMENT_MAX_AMOUNT", "PAYMENT_MAX_INSTALLMENTS",
		"PAYMENT_SUPPORTED_CURRENCIES", "PAYMENT_RETRY_MAX_ATTEMPTS", "PAYMENT_RETRY_BASE_DELAY",
		"PAYMENT_RETRY_MULTIPLIER", "PAYMENT_GATEWAY_TIMEOUT",
	} {
		t.Setenv(k, "")
	}

	cfg := LoadPaymentConfigFromEnv()
	if cfg.MinAmount.String() != "100" || cfg.MaxAmount.String() != "1000000" {
		t.Fatalf("unexpected amount bounds: %s %s", cfg.MinAmount, cfg.MaxAmount)
	}
	if cfg.MaxInstallments != 12 {
		t.Fatalf("expected 12 installments, got %d", cfg.MaxInstallments)
	}
	if cfg.Retry.MaxAttempts != 3 || cfg.Retry.BaseDelay != time.Second || cfg.Retry.Multiplier != 2 {
		t.Fatalf("unexpected retry config: %+v", cfg.Retry)
	}
	if !cfg.IsSupportedCurrency("BRL") || cfg.IsSupportedCurrency("GBP") {
		t.Fatalf("unexpected currency allow-list: %v", cfg.SupportedCurrencies)
	}
}

func TestLoadPaymentConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("PAYMENT_MIN_AMOUNT", "1.50")
	t.Setenv("PAYMENT_MAX_AMOUNT", "5000")
	t.Setenv("PAYMENT_MAX_INSTALLMENTS", "6")
	t.Setenv("PAYMENT_SUPPORTED_CURRENCIES", "brl, gbp ,")
	t.Setenv("PAYMENT_RETRY_MAX_ATTEMPTS", "5")
	t.Setenv("PAYMENT_RETRY_BASE_DELAY", "250ms")
	t.Setenv("PAYMENT_RETRY_MULTIPLIER", "3")
	t.Setenv("PAYMENT_GATEWAY_TIMEOUT", "10s")

	cfg := LoadPaymentConfigFromEnv()
	if cfg.MinAmount.String() != "1.5" || cfg.MaxAmount.String() != "5000" {
		t.Fatalf("unexpected amount bounds: %s %s", cfg.MinAmount, cfg.MaxAmount)
	}
	if cfg.MaxInstallments != 6 {
		t.Fatalf("expected 6 installments, got %d", cfg.MaxInstallments)
	}
	if len(cfg.SupportedCurrencies) != 2 || !cfg.IsSupportedCurrency("GBP") {
		t.Fatalf("unexpected currencies: %v", cfg.SupportedCurrencies)
	}
	if cfg.Retry.MaxAttempts != 5 || cfg.Retry.BaseDelay != 250*time.Millisecond || cfg.Retry.Multiplier != 3 {
		t.Fatalf("unexpected retry config: %+v", cfg.Retry)
	}
	if cfg.GatewayTimeout != 10*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.GatewayTimeout)
	}
}

func TestLoadPaymentConfigFromEnv_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("PAYMENT_MIN_AMOUNT", "abc")
	t.Setenv("PAYMENT_MAX_INSTALLMENTS", "x")
	t.Setenv("PAYMENT_RETRY_BASE_DELAY", "soon")
	t.Setenv("PAYMENT_RETRY_MULTIPLIER", "0.5")

	cfg := LoadPaymentConfigFromEnv()
	def := DefaultPaymentConfig()
	if !cfg.MinAmount.Equal(def.MinAmount) || cfg.MaxInstallments != def.MaxInstallments {
		t.Fatalf("invalid values should fall back to defaults: %+v", cfg)
	}
	if cfg.Retry.BaseDelay != def.Retry.BaseDelay || cfg.Retry.Multiplier != def.Retry.Multiplier {
		t.Fatalf("invalid retry values should fall back to defaults: %+v", cfg.Retry)
	}
}

func TestGetenvDefault(t *testing.T) {
	t.Setenv("SOME_KEY", "")
	if GetenvDefault("SOME_KEY", "def") != "def" {
		t.Fatalf("expected default")
	}
	t.Setenv("SOME_KEY", "v")
	if GetenvDefault("SOME_KEY", "def") != "v" {
		t.Fatalf("expected env value")
	}
}
