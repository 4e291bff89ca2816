package entities

import "github.com/shopspring/decimal"

// PaymentResult is the outcome returned to callers. PIX and boleto display
// fields are only present while the processor exposes them.

type PaymentResult struct {
	ExternalID    string            `json:"external_id"`
	Status        PaymentStatus     `json:"status"`
	Amount        decimal.Decimal   `json:"amount"`
	Currency      string            `json:"currency"`
	PaymentMethod PaymentMethod     `json:"payment_method,omitempty"`
	Installments  int               `json:"installments,omitempty"`
	Description   string            `json:"description,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	ErrorMessage  string            `json:"error_message,omitempty"`
	PixQRCode     string            `json:"pix_qr_code,omitempty"`
	PixCopyPaste  string            `json:"pix_copy_paste,omitempty"`
	BoletoURL     string            `json:"boleto_url,omitempty"`
	BoletoBarcode string            `json:"boleto_barcode,omitempty"`
}
