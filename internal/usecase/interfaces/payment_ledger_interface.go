package interfaces

import (
	"context"
	"errors"

	"moturial_payments/internal/domain/entities"
)

//go:generate mockgen -source=payment_ledger_interface.go -destination=mocks/mock_payment_ledger.go -package=mock_interfaces

var (
	// ErrLedgerVersionConflict is returned by Save when the stored version no
	// longer matches the one the caller read.
	ErrLedgerVersionConflict = errors.New("payment ledger version conflict")
	// ErrLedgerDuplicateExternalID is returned by Save when another record
	// already owns the external id.
	ErrLedgerDuplicateExternalID = errors.New("payment ledger duplicate external id")
)

// IPaymentLedger abstracts the durable payment ledger.
//
// Lookups return a zero Payment (empty ID) and a nil error when nothing
// matches. Save inserts when Version is 0 and otherwise performs a
// compare-and-swap on Version; the returned Payment carries the new version.
type IPaymentLedger interface {
	FindByID(ctx context.Context, id string) (entities.Payment, error)
	FindByExternalID(ctx context.Context, externalID string) (entities.Payment, error)
	FindByUserID(ctx context.Context, userID string) ([]entities.Payment, error)
	ExistsByExternalID(ctx context.Context, externalID string) (bool, error)
	Save(ctx context.Context, p entities.Payment) (entities.Payment, error)
}
