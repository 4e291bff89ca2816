package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidStatusTransition = errors.New("invalid payment status transition")

// PaymentStatus represents the lifecycle of a payment.
//
// State machine:
//   - pending -> processing -> approved | rejected | error | cancelled
//   - any non-final state -> refunded | partially_refunded (reconciliation only)
//
// Final states never transition again.

type PaymentStatus string

const (
	PaymentStatusPending           PaymentStatus = "pending"
	PaymentStatusProcessing        PaymentStatus = "processing"
	PaymentStatusApproved          PaymentStatus = "approved"
	PaymentStatusRejected          PaymentStatus = "rejected"
	PaymentStatusCancelled         PaymentStatus = "cancelled"
	PaymentStatusError             PaymentStatus = "error"
	PaymentStatusRefunded          PaymentStatus = "refunded"
	PaymentStatusPartiallyRefunded PaymentStatus = "partially_refunded"
)

func (s PaymentStatus) IsFinal() bool {
	switch s {
	case PaymentStatusApproved, PaymentStatusRejected, PaymentStatusCancelled,
		PaymentStatusError, PaymentStatusRefunded, PaymentStatusPartiallyRefunded:
		return true
	}
	return false
}

func (s PaymentStatus) IsValid() bool {
	return s == PaymentStatusPending || s == PaymentStatusProcessing || s.IsFinal()
}

// CanTransitionTo reports whether moving from s to next respects the state
// machine. Staying in the same non-final state is allowed (a poll that observed
// no change); processing never goes back to pending.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	if s.IsFinal() || !next.IsValid() {
		return false
	}
	if s == PaymentStatusProcessing && next == PaymentStatusPending {
		return false
	}
	return true
}

// PaymentMethod is the payment instrument chosen by the customer.

type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodPix    PaymentMethod = "pix"
	PaymentMethodBoleto PaymentMethod = "boleto"
)

func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodCard || m == PaymentMethodPix || m == PaymentMethodBoleto
}

// ParsePaymentMethod accepts the method code in any case ("CARD", "pix"...).
func ParsePaymentMethod(v string) (PaymentMethod, bool) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(v)))
	return m, m.IsValid()
}

// Payment is the ledger entry persisted by the payment service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (external_id-index): external_id
//   - GSI2 (user_id-index): user_id, sorted by created_at
//
// Amount and Currency never change after creation. Version is the optimistic
// concurrency token: every save must present the version it read.

type Payment struct {
	ID            string            `json:"id"`
	ExternalID    string            `json:"external_id"`
	UserID        string            `json:"user_id"`
	Amount        decimal.Decimal   `json:"amount"`
	Currency      string            `json:"currency"`
	PaymentMethod PaymentMethod     `json:"payment_method"`
	Status        PaymentStatus     `json:"status"`
	Installments  int               `json:"installments"`
	Description   string            `json:"description,omitempty"`
	ErrorMessage  string            `json:"error_message,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	ProcessedAt   *time.Time        `json:"processed_at,omitempty"`
	Version       int64             `json:"version"`
}

// Transition moves the payment to next, stamping UpdatedAt. ProcessedAt is set
// once the processor has confirmed anything beyond the initial pending state.
func (p *Payment) Transition(next PaymentStatus, now time.Time) error {
	if !p.Status.CanTransitionTo(next) {
		return ErrInvalidStatusTransition
	}
	p.Status = next
	p.UpdatedAt = now
	if next != PaymentStatusPending {
		t := now
		p.ProcessedAt = &t
	}
	return nil
}

// ToResult renders the stored payment as a caller-facing result.
func (p Payment) ToResult() PaymentResult {
	return PaymentResult{
		ExternalID:    p.ExternalID,
		Status:        p.Status,
		Amount:        p.Amount,
		Currency:      p.Currency,
		PaymentMethod: p.PaymentMethod,
		Installments:  p.Installments,
		Description:   p.Description,
		Metadata:      p.Metadata,
		ErrorMessage:  p.ErrorMessage,
	}
}
