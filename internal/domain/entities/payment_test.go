package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestPaymentStatus_IsFinal(t *testing.T) {
	cases := []struct {
		status PaymentStatus
		final  bool
	}{
		{PaymentStatusPending, false},
		{PaymentStatusProcessing, false},
		{PaymentStatusApproved, true},
		{PaymentStatusRejected, true},
		{PaymentStatusCancelled, true},
		{PaymentStatusError, true},
		{PaymentStatusRefunded, true},
		{PaymentStatusPartiallyRefunded, true},
	}
	for _, tc := range cases {
		if got := tc.status.IsFinal(); got != tc.final {
			t.Fatalf("%s: expected final=%v, got %v", tc.status, tc.final, got)
		}
		if !tc.status.IsValid() {
			t.Fatalf("%s should be valid", tc.status)
		}
	}
	if PaymentStatus("unknown").IsValid() {
		t.Fatalf("unknown status should be invalid")
	}
}

func TestPaymentStatus_CanTransitionTo(t *testing.T) {
	if !PaymentStatusPending.CanTransitionTo(PaymentStatusProcessing) {
		t.Fatalf("pending -> processing must be allowed")
	}
	if !PaymentStatusPending.CanTransitionTo(PaymentStatusApproved) {
		t.Fatalf("pending -> approved must be allowed")
	}
	if !PaymentStatusProcessing.CanTransitionTo(PaymentStatusRefunded) {
		t.Fatalf("processing -> refunded must be allowed")
	}
	if PaymentStatusProcessing.CanTransitionTo(PaymentStatusPending) {
		t.Fatalf("processing -> pending must be rejected")
	}
	if PaymentStatusApproved.CanTransitionTo(PaymentStatusCancelled) {
		t.Fatalf("approved is final")
	}
	if PaymentStatusPending.CanTransitionTo(PaymentStatus("bogus")) {
		t.Fatalf("invalid target must be rejected")
	}
}

func TestPayment_Transition(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	p := Payment{Status: PaymentStatusPending}

	if err := p.Transition(PaymentStatusPending, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ProcessedAt != nil {
		t.Fatalf("pending must not set processed_at")
	}

	if err := p.Transition(PaymentStatusApproved, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ProcessedAt == nil || !p.ProcessedAt.Equal(now) || !p.UpdatedAt.Equal(now) {
		t.Fatalf("timestamps not set: %+v", p)
	}

	if err := p.Transition(PaymentStatusCancelled, now); !errors.Is(err, ErrInvalidStatusTransition) {
		t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
	}
	if p.Status != PaymentStatusApproved {
		t.Fatalf("status must not change after rejected transition")
	}
}

func TestParsePaymentMethod(t *testing.T) {
	if m, ok := ParsePaymentMethod(" CARD "); !ok || m != PaymentMethodCard {
		t.Fatalf("expected card, got %q ok=%v", m, ok)
	}
	if _, ok := ParsePaymentMethod("cash"); ok {
		t.Fatalf("cash is not supported")
	}
}

func TestPayment_ToResult(t *testing.T) {
	p := Payment{
		ExternalID:    "pi_1",
		Status:        PaymentStatusApproved,
		Amount:        decimal.RequireFromString("100.00"),
		Currency:      "BRL",
		PaymentMethod: PaymentMethodCard,
		Installments:  2,
		Description:   "rental",
		ErrorMessage:  "",
		Metadata:      map[string]string{"user_id": "u1"},
	}
	res := p.ToResult()
	if res.ExternalID != "pi_1" || res.Status != PaymentStatusApproved || res.Installments != 2 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if !res.Amount.Equal(p.Amount) || res.Currency != "BRL" || res.Metadata["user_id"] != "u1" {
		t.Fatalf("unexpected result: %+v", res)
	}
}
