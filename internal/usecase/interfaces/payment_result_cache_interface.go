package interfaces

import (
	"context"

	"moturial_payments/internal/domain/entities"
)

//go:generate mockgen -source=payment_result_cache_interface.go -destination=mocks/mock_payment_result_cache.go -package=mock_interfaces

// IPaymentResultCache keeps results of finalized payments so repeated status
// polls are answered without touching the ledger. Only final results may be
// stored; a miss is (zero, false, nil).
type IPaymentResultCache interface {
	Get(ctx context.Context, externalID string) (entities.PaymentResult, bool, error)
	Set(ctx context.Context, result entities.PaymentResult) error
}
