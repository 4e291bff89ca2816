package response

import (
	"time"

	"moturial_payments/internal/domain/entities"
)

// PaymentResultResponse is returned by process, status and cancel routes.
// Amounts are rendered with two decimal places.
type PaymentResultResponse struct {
	ExternalID    string            `json:"external_id"`
	Status        string            `json:"status"`
	Amount        string            `json:"amount"`
	Currency      string            `json:"currency"`
	PaymentMethod string            `json:"payment_method,omitempty"`
	Installments  int               `json:"installments,omitempty"`
	Description   string            `json:"description,omitempty"`
	ErrorMessage  string            `json:"error_message,omitempty"`
	PixQRCode     string            `json:"pix_qr_code,omitempty"`
	PixCopyPaste  string            `json:"pix_copy_paste,omitempty"`
	BoletoURL     string            `json:"boleto_url,omitempty"`
	BoletoBarcode string            `json:"boleto_barcode,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

func FromPaymentResult(r entities.PaymentResult) PaymentResultResponse {
	return PaymentResultResponse{
		ExternalID:    r.ExternalID,
		Status:        string(r.Status),
		Amount:        r.Amount.StringFixed(2),
		Currency:      r.Currency,
		PaymentMethod: string(r.PaymentMethod),
		Installments:  r.Installments,
		Description:   r.Description,
		ErrorMessage:  r.ErrorMessage,
		PixQRCode:     r.PixQRCode,
		PixCopyPaste:  r.PixCopyPaste,
		BoletoURL:     r.BoletoURL,
		BoletoBarcode: r.BoletoBarcode,
		Metadata:      r.Metadata,
	}
}

type PaymentResponse struct {
	ID            string            `json:"id"`
	ExternalID    string            `json:"external_id"`
	UserID        string            `json:"user_id"`
	Amount        string            `json:"amount"`
	Currency      string            `json:"currency"`
	PaymentMethod string            `json:"payment_method"`
	Status        string            `json:"status"`
	Installments  int               `json:"installments"`
	Description   string            `json:"description,omitempty"`
	ErrorMessage  string            `json:"error_message,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	ProcessedAt   *time.Time        `json:"processed_at,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		ExternalID:    p.ExternalID,
		UserID:        p.UserID,
		Amount:        p.Amount.StringFixed(2),
		Currency:      p.Currency,
		PaymentMethod: string(p.PaymentMethod),
		Status:        string(p.Status),
		Installments:  p.Installments,
		Description:   p.Description,
		ErrorMessage:  p.ErrorMessage,
		Metadata:      p.Metadata,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		ProcessedAt:   p.ProcessedAt,
	}
}

func FromPayments(list []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPayment(p))
	}
	return out
}
