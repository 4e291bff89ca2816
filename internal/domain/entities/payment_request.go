package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRequest is the validated input of the payment use case.
//
// Exactly one of Card, Pix or Boleto is expected, matching PaymentMethod.

type PaymentRequest struct {
	UserID        string            `json:"user_id"`
	Amount        decimal.Decimal   `json:"amount"`
	Currency      string            `json:"currency"`
	PaymentMethod PaymentMethod     `json:"payment_method"`
	Installments  int               `json:"installments"`
	Description   string            `json:"description,omitempty"`
	Customer      *CustomerData     `json:"customer"`
	Card          *CardData         `json:"card,omitempty"`
	Pix           *PixData          `json:"pix,omitempty"`
	Boleto        *BoletoData       `json:"boleto,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

type CustomerData struct {
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	Document string       `json:"document,omitempty"`
	Phone    string       `json:"phone,omitempty"`
	Address  *AddressData `json:"address,omitempty"`
}

type AddressData struct {
	Street       string `json:"street,omitempty"`
	Number       string `json:"number,omitempty"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	ZipCode      string `json:"zip_code,omitempty"`
	Country      string `json:"country,omitempty"`
}

// CardData carries either raw card details or an opaque token. When Token is
// set the raw fields are ignored and Brand tells the processor which network
// the token belongs to.
type CardData struct {
	Number     string `json:"number,omitempty"`
	HolderName string `json:"holder_name,omitempty"`
	ExpiryDate string `json:"expiry_date,omitempty"`
	CVV        string `json:"cvv,omitempty"`
	Token      string `json:"token,omitempty"`
	Brand      string `json:"brand,omitempty"`
}

func (c CardData) HasToken() bool { return c.Token != "" }

type PixData struct {
	PixKey     string `json:"pix_key,omitempty"`
	PixKeyType string `json:"pix_key_type,omitempty"`
}

type BoletoData struct {
	DueDate      time.Time `json:"due_date"`
	Instructions string    `json:"instructions,omitempty"`
	Description  string    `json:"description,omitempty"`
}
