package interfaces

import (
	"context"

	"moturial_payments/internal/domain/entities"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/mock_payment_gateway.go -package=mock_interfaces

// ChargeRequest is what the payment use case hands to a processor. Amounts are
// in minor currency units (cents). Attempt starts at 1 and grows on retries.
type ChargeRequest struct {
	Reference   string
	AmountMinor int64
	Request     entities.PaymentRequest
	Metadata    map[string]string
	Attempt     int
}

// GatewayResult is the processor's view of a payment.
type GatewayResult struct {
	RemoteID      string
	StatusCode    string
	StatusDetail  string
	AmountMinor   int64
	Currency      string
	PaymentMethod entities.PaymentMethod
	Description   string
	PixQRCode     string
	PixCopyPaste  string
	BoletoURL     string
	BoletoBarcode string
	Metadata      map[string]string
}

// IPaymentGateway abstracts external payment processors (e.g. Mercado Pago).
//
// Failures are reported as *paymenterr.GatewayError so callers can tell
// transient failures (retryable) from permanent ones. A transient Charge
// failure may still have created the payment, so a Charge with Attempt > 1
// returns the payment already filed under Reference instead of creating another.
type IPaymentGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (GatewayResult, error)
	Retrieve(ctx context.Context, externalID string) (GatewayResult, error)
	Cancel(ctx context.Context, externalID string) (GatewayResult, error)
}
