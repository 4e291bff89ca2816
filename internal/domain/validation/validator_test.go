package validation

import (
	"errors"
	"strings"
	"testing"
	"time"

	"moturial_payments/internal/config"
	"moturial_payments/internal/domain/entities"
	"moturial_payments/internal/domain/paymenterr"

	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2026, time.October, 16, 10, 0, 0, 0, time.UTC)

func newTestValidator() *Validator {
	cfg := config.DefaultPaymentConfig()
	cfg.MinAmount = decimal.RequireFromString("1.00")
	return NewValidator(cfg).WithClock(func() time.Time { return fixedNow })
}

func validCardRequest() *entities.PaymentRequest {
	return &entities.PaymentRequest{
		UserID:        "user_123",
		Amount:        decimal.RequireFromString("100.00"),
		Currency:      "BRL",
		PaymentMethod: entities.PaymentMethodCard,
		Installments:  1,
		Description:   "Aluguel de moto",
		Customer: &entities.CustomerData{
			Name:     "João da Silva",
			Email:    "joao@example.com",
			Document: "111.444.777-35",
			Phone:    "+55 (11) 98765-4321",
		},
		Card: &entities.CardData{
			Number:     "4242424242424242",
			HolderName: "JOAO DA SILVA",
			ExpiryDate: "12/30",
			CVV:        "123",
		},
	}
}

func expectCode(t *testing.T, err error, code, field string) {
	t.Helper()
	var ve *paymenterr.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError %s, got %v", code, err)
	}
	if ve.Code != code {
		t.Fatalf("expected code %s, got %s (%s)", code, ve.Code, ve.Message)
	}
	if field != "" && ve.Field != field {
		t.Fatalf("expected field %s, got %s", field, ve.Field)
	}
}

func TestValidator_ValidCardRequest(t *testing.T) {
	if err := newTestValidator().Validate(validCardRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidator_NilRequest(t *testing.T) {
	expectCode(t, newTestValidator().Validate(nil), CodeInvalidRequest, "")
}

func TestValidator_RequestRules(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(r *entities.PaymentRequest)
		code   string
		field  string
	}{
		{"empty user id", func(r *entities.PaymentRequest) { r.UserID = "" }, CodeInvalidUserID, "user_id"},
		{"user id with spaces", func(r *entities.PaymentRequest) { r.UserID = "user 1" }, CodeInvalidUserID, "user_id"},
		{"user id too long", func(r *entities.PaymentRequest) { r.UserID = strings.Repeat("a", 256) }, CodeInvalidUserID, "user_id"},
		{"zero amount", func(r *entities.PaymentRequest) { r.Amount = decimal.RequireFromString("0.00") }, CodeInvalidAmount, "amount"},
		{"negative amount", func(r *entities.PaymentRequest) { r.Amount = decimal.RequireFromString("-5") }, CodeInvalidAmount, "amount"},
		{"below minimum", func(r *entities.PaymentRequest) { r.Amount = decimal.RequireFromString("0.99") }, CodeAmountBelowMinimum, "amount"},
		{"above maximum", func(r *entities.PaymentRequest) { r.Amount = decimal.RequireFromString("1000000.01") }, CodeAmountAboveMaximum, "amount"},
		{"three decimals", func(r *entities.PaymentRequest) { r.Amount = decimal.RequireFromString("10.001") }, CodeInvalidAmountScale, "amount"},
		{"empty currency", func(r *entities.PaymentRequest) { r.Currency = "" }, CodeInvalidCurrency, "currency"},
		{"lowercase currency", func(r *entities.PaymentRequest) { r.Currency = "brl" }, CodeInvalidCurrency, "currency"},
		{"unsupported currency", func(r *entities.PaymentRequest) { r.Currency = "GBP" }, CodeUnsupportedCurrency, "currency"},
		{"missing method", func(r *entities.PaymentRequest) { r.PaymentMethod = "" }, CodeInvalidPaymentMethod, "payment_method"},
		{"unknown method", func(r *entities.PaymentRequest) { r.PaymentMethod = "cash" }, CodeInvalidPaymentMethod, "payment_method"},
		{"zero installments", func(r *entities.PaymentRequest) { r.Installments = 0 }, CodeInvalidInstallments, "installments"},
		{"too many installments", func(r *entities.PaymentRequest) { r.Installments = 13 }, CodeInvalidInstallments, "installments"},
		{"long description", func(r *entities.PaymentRequest) { r.Description = strings.Repeat("d", 501) }, CodeInvalidDescription, "description"},
		{"missing customer", func(r *entities.PaymentRequest) { r.Customer = nil }, CodeInvalidCustomer, "customer"},
		{"short name", func(r *entities.PaymentRequest) { r.Customer.Name = "J" }, CodeInvalidName, "customer.name"},
		{"name with digits", func(r *entities.PaymentRequest) { r.Customer.Name = "John 2" }, CodeInvalidName, "customer.name"},
		{"missing email", func(r *entities.PaymentRequest) { r.Customer.Email = "" }, CodeInvalidEmail, "customer.email"},
		{"bad email", func(r *entities.PaymentRequest) { r.Customer.Email = "joao@" }, CodeInvalidEmail, "customer.email"},
		{"long email", func(r *entities.PaymentRequest) { r.Customer.Email = strings.Repeat("a", 250) + "@x.com" }, CodeInvalidEmail, "customer.email"},
		{"bad document format", func(r *entities.PaymentRequest) { r.Customer.Document = "1234" }, CodeInvalidDocument, "customer.document"},
		{"bad cpf checksum", func(r *entities.PaymentRequest) { r.Customer.Document = "11144477736" }, CodeInvalidCPF, "customer.document"},
		{"repeated cpf", func(r *entities.PaymentRequest) { r.Customer.Document = "111.111.111-11" }, CodeInvalidCPF, "customer.document"},
		{"short phone", func(r *entities.PaymentRequest) { r.Customer.Phone = "12345" }, CodeInvalidPhone, "customer.phone"},
		{"long phone", func(r *entities.PaymentRequest) { r.Customer.Phone = strings.Repeat("1", 21) }, CodeInvalidPhone, "customer.phone"},
		{"bad state", func(r *entities.PaymentRequest) { r.Customer.Address = &entities.AddressData{State: "sp"} }, CodeInvalidAddress, "customer.address.state"},
		{"bad zip", func(r *entities.PaymentRequest) { r.Customer.Address = &entities.AddressData{ZipCode: "123"} }, CodeInvalidAddress, "customer.address.zip_code"},
		{"long city", func(r *entities.PaymentRequest) { r.Customer.Address = &entities.AddressData{City: strings.Repeat("c", 101)} }, CodeInvalidAddress, "customer.address.city"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCardRequest()
			tc.mutate(req)
			expectCode(t, newTestValidator().Validate(req), tc.code, tc.field)
		})
	}
}

func TestValidator_RuleOrder(t *testing.T) {
	req := validCardRequest()
	req.UserID = ""
	req.Amount = decimal.Zero
	req.Card.Number = "4242424242424241"
	expectCode(t, newTestValidator().Validate(req), CodeInvalidUserID, "user_id")

	req = validCardRequest()
	req.Currency = "XXX"
	req.Installments = 99
	expectCode(t, newTestValidator().Validate(req), CodeUnsupportedCurrency, "currency")
}

func TestValidator_AmountBoundsFromConfig(t *testing.T) {
	cfg := config.DefaultPaymentConfig()
	v := NewValidator(cfg).WithClock(func() time.Time { return fixedNow })

	req := validCardRequest()
	req.Amount = decimal.RequireFromString("99.99")
	expectCode(t, v.Validate(req), CodeAmountBelowMinimum, "amount")

	req.Amount = decimal.RequireFromString("100.00")
	if err := v.Validate(req); err != nil {
		t.Fatalf("minimum amount itself must pass: %v", err)
	}

	req.Amount = decimal.RequireFromString("150.10")
	if err := v.Validate(req); err != nil {
		t.Fatalf("two decimals must pass: %v", err)
	}
}

func TestValidator_CardRules(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *entities.CardData)
		code   string
		field  string
	}{
		{"missing number", func(c *entities.CardData) { c.Number = "" }, CodeInvalidCardNumber, "card.number"},
		{"short number", func(c *entities.CardData) { c.Number = "424242424242" }, CodeInvalidCardNumber, "card.number"},
		{"letters in number", func(c *entities.CardData) { c.Number = "4242abcd42424242" }, CodeInvalidCardNumber, "card.number"},
		{"luhn failure", func(c *entities.CardData) { c.Number = "4242424242424241" }, CodeInvalidCardNumber, "card.number"},
		{"missing holder", func(c *entities.CardData) { c.HolderName = "" }, CodeInvalidName, "card.holder_name"},
		{"bad holder", func(c *entities.CardData) { c.HolderName = "J0HN" }, CodeInvalidName, "card.holder_name"},
		{"missing expiry", func(c *entities.CardData) { c.ExpiryDate = "" }, CodeInvalidExpiryDate, "card.expiry_date"},
		{"bad expiry format", func(c *entities.CardData) { c.ExpiryDate = "13/30" }, CodeInvalidExpiryDate, "card.expiry_date"},
		{"long year expiry", func(c *entities.CardData) { c.ExpiryDate = "12/2030" }, CodeInvalidExpiryDate, "card.expiry_date"},
		{"expired", func(c *entities.CardData) { c.ExpiryDate = "01/20" }, CodeCardExpired, "card.expiry_date"},
		{"expired last month", func(c *entities.CardData) { c.ExpiryDate = "09/26" }, CodeCardExpired, "card.expiry_date"},
		{"missing cvv", func(c *entities.CardData) { c.CVV = "" }, CodeInvalidCVV, "card.cvv"},
		{"long cvv", func(c *entities.CardData) { c.CVV = "12345" }, CodeInvalidCVV, "card.cvv"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCardRequest()
			tc.mutate(req.Card)
			expectCode(t, newTestValidator().Validate(req), tc.code, tc.field)
		})
	}

	t.Run("spaces in number are stripped", func(t *testing.T) {
		req := validCardRequest()
		req.Card.Number = "4242 4242 4242 4242"
		if err := newTestValidator().Validate(req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("current month is not expired", func(t *testing.T) {
		req := validCardRequest()
		req.Card.ExpiryDate = "10/26"
		if err := newTestValidator().Validate(req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing card block", func(t *testing.T) {
		req := validCardRequest()
		req.Card = nil
		expectCode(t, newTestValidator().Validate(req), CodeInvalidCard, "card")
	})
}

func TestValidator_CardToken(t *testing.T) {
	t.Run("token skips pan rules", func(t *testing.T) {
		req := validCardRequest()
		req.Card = &entities.CardData{Token: "tok_visa-123", ExpiryDate: "01/20", Number: "1"}
		if err := newTestValidator().Validate(req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("token format", func(t *testing.T) {
		req := validCardRequest()
		req.Card = &entities.CardData{Token: "tok visa"}
		expectCode(t, newTestValidator().Validate(req), CodeInvalidCardToken, "card.token")
	})

	t.Run("token too long", func(t *testing.T) {
		req := validCardRequest()
		req.Card = &entities.CardData{Token: strings.Repeat("t", 256)}
		expectCode(t, newTestValidator().Validate(req), CodeInvalidCardToken, "card.token")
	})
}

func TestValidator_PixAndBoleto(t *testing.T) {
	pixReq := func() *entities.PaymentRequest {
		r := validCardRequest()
		r.PaymentMethod = entities.PaymentMethodPix
		r.Card = nil
		return r
	}

	t.Run("pix without key data", func(t *testing.T) {
		if err := newTestValidator().Validate(pixReq()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("pix key too long", func(t *testing.T) {
		r := pixReq()
		r.Pix = &entities.PixData{PixKey: strings.Repeat("k", 101)}
		expectCode(t, newTestValidator().Validate(r), CodeInvalidPix, "pix.pix_key")
	})

	t.Run("pix carrying card data", func(t *testing.T) {
		r := pixReq()
		r.Card = &entities.CardData{Token: "tok"}
		expectCode(t, newTestValidator().Validate(r), CodeInvalidRequest, "payment_method")
	})

	boletoReq := func(due time.Time) *entities.PaymentRequest {
		r := validCardRequest()
		r.PaymentMethod = entities.PaymentMethodBoleto
		r.Card = nil
		r.Boleto = &entities.BoletoData{DueDate: due}
		return r
	}

	t.Run("boleto due tomorrow", func(t *testing.T) {
		if err := newTestValidator().Validate(boletoReq(fixedNow.AddDate(0, 0, 1))); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("boleto due today", func(t *testing.T) {
		expectCode(t, newTestValidator().Validate(boletoReq(fixedNow)), CodeInvalidDueDate, "boleto.due_date")
	})

	t.Run("boleto without due date", func(t *testing.T) {
		expectCode(t, newTestValidator().Validate(boletoReq(time.Time{})), CodeInvalidDueDate, "boleto.due_date")
	})

	t.Run("boleto block missing", func(t *testing.T) {
		r := boletoReq(fixedNow)
		r.Boleto = nil
		expectCode(t, newTestValidator().Validate(r), CodeInvalidBoleto, "boleto")
	})

	t.Run("boleto long instructions", func(t *testing.T) {
		r := boletoReq(fixedNow.AddDate(0, 0, 3))
		r.Boleto.Instructions = strings.Repeat("i", 201)
		expectCode(t, newTestValidator().Validate(r), CodeInvalidBoleto, "boleto.instructions")
	})
}
