package usecase

import (
	"strings"

	"moturial_payments/internal/domain/entities"
)

// MapGatewayStatus translates a processor status code into the local state
// machine. Codes are matched case-insensitively; anything unknown is an error.
func MapGatewayStatus(code string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "approved", "succeeded":
		return entities.PaymentStatusApproved
	case "in_process", "processing", "authorized", "in_mediation":
		return entities.PaymentStatusProcessing
	case "pending", "requires_payment_method", "requires_confirmation", "requires_action":
		return entities.PaymentStatusPending
	case "cancelled", "canceled":
		return entities.PaymentStatusCancelled
	case "rejected":
		return entities.PaymentStatusRejected
	case "refunded", "charged_back":
		return entities.PaymentStatusRefunded
	case "partially_refunded":
		return entities.PaymentStatusPartiallyRefunded
	default:
		return entities.PaymentStatusError
	}
}
