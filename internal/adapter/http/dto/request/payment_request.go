package request

import (
	"strings"
	"time"

	"moturial_payments/internal/domain/entities"
	"moturial_payments/internal/domain/paymenterr"
	"moturial_payments/internal/domain/validation"

	"github.com/shopspring/decimal"
)

const dueDateLayout = "2006-01-02"

// PaymentCreateRequest is the body of POST /v1/payments/{card,pix,boleto}.
//
// payment_method may be omitted; the route decides it. amount accepts a JSON
// number or a decimal string ("150.00").
type PaymentCreateRequest struct {
	UserID        string                 `json:"user_id"`
	Amount        decimal.Decimal        `json:"amount"`
	Currency      string                 `json:"currency"`
	PaymentMethod string                 `json:"payment_method"`
	Installments  *int                   `json:"installments"`
	Description   string                 `json:"description"`
	Customer      *entities.CustomerData `json:"customer"`
	Card          *entities.CardData     `json:"card"`
	Pix           *entities.PixData      `json:"pix"`
	Boleto        *BoletoRequest         `json:"boleto"`
	Metadata      map[string]string      `json:"metadata"`
}

type BoletoRequest struct {
	DueDate      string `json:"due_date"`
	Instructions string `json:"instructions"`
	Description  string `json:"description"`
}

// ToEntity converts the body into a PaymentRequest. Field rules are left to the
// validator and values are passed through as sent; only shapes that cannot be
// represented fail here.
func (r PaymentCreateRequest) ToEntity(defaultMethod entities.PaymentMethod) (entities.PaymentRequest, error) {
	req := entities.PaymentRequest{
		UserID:        strings.TrimSpace(r.UserID),
		Amount:        r.Amount,
		Currency:      r.Currency,
		PaymentMethod: defaultMethod,
		Installments:  1,
		Description:   r.Description,
		Customer:      r.Customer,
		Card:          r.Card,
		Pix:           r.Pix,
		Metadata:      r.Metadata,
	}
	if strings.TrimSpace(r.PaymentMethod) != "" {
		m, _ := entities.ParsePaymentMethod(r.PaymentMethod)
		req.PaymentMethod = m
	}
	if r.Installments != nil {
		req.Installments = *r.Installments
	}

	if r.Boleto != nil {
		b := &entities.BoletoData{Instructions: r.Boleto.Instructions, Description: r.Boleto.Description}
		if v := strings.TrimSpace(r.Boleto.DueDate); v != "" {
			due, err := time.Parse(dueDateLayout, v)
			if err != nil {
				return entities.PaymentRequest{}, paymenterr.NewValidationError(validation.CodeInvalidDueDate, "boleto.due_date", "due_date must be formatted as YYYY-MM-DD")
			}
			b.DueDate = due
		}
		req.Boleto = b
	}
	return req, nil
}
