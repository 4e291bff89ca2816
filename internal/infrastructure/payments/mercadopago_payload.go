package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"moturial_payments/internal/domain/entities"
	"moturial_payments/internal/domain/paymenterr"
	"moturial_payments/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/cardtoken"
)

const (
	mpMethodPix    = "pix"
	mpMethodBoleto = "bolbradesco"
)

var (
	ErrUnsupportedCardBrand = errors.New("unsupported card brand")
	ErrMissingCardData      = errors.New("card data is required")
)

// boletoZone is where boleto due dates are interpreted; they expire at the end
// of the due day in Brasília time.
var boletoZone = time.FixedZone("BRT", -3*60*60)

// buildPaymentPayload renders the charge as the JSON body Mercado Pago expects.
// Raw card numbers are exchanged for a card token first.
func (g *MercadoPagoGateway) buildPaymentPayload(ctx context.Context, req interfaces.ChargeRequest) ([]byte, error) {
	r := req.Request
	body := map[string]any{
		"transaction_amount": float64(req.AmountMinor) / 100,
		"installments":       1,
		"external_reference": req.Reference,
		"payer":              payerPayload(r.Customer),
	}
	if r.Description != "" {
		body["description"] = r.Description
	} else {
		body["description"] = fmt.Sprintf("Payment %s", req.Reference)
	}
	if len(req.Metadata) > 0 {
		meta := make(map[string]any, len(req.Metadata))
		for k, v := range req.Metadata {
			meta[k] = v
		}
		body["metadata"] = meta
	}

	switch r.PaymentMethod {
	case entities.PaymentMethodCard:
		if r.Card == nil {
			return nil, paymenterr.NewPermanentGatewayError("", ErrMissingCardData)
		}
		token, brand, err := g.cardToken(ctx, r)
		if err != nil {
			return nil, err
		}
		body["token"] = token
		body["payment_method_id"] = brand
		if r.Installments > 0 {
			body["installments"] = r.Installments
		}
	case entities.PaymentMethodPix:
		body["payment_method_id"] = mpMethodPix
	case entities.PaymentMethodBoleto:
		body["payment_method_id"] = mpMethodBoleto
		if r.Boleto != nil {
			due := r.Boleto.DueDate
			body["date_of_expiration"] = time.Date(due.Year(), due.Month(), due.Day(), 23, 59, 59, 0, boletoZone).Format(time.RFC3339)
			if r.Boleto.Description != "" {
				body["description"] = r.Boleto.Description
			}
		}
	default:
		return nil, paymenterr.NewPermanentGatewayError("", fmt.Errorf("unsupported payment method %q", r.PaymentMethod))
	}

	b, err := json.Marshal(body)
	if err != nil {
		return nil, paymenterr.NewPermanentGatewayError("", err)
	}
	return b, nil
}

// cardToken returns the token and Mercado Pago payment_method_id for the card.
func (g *MercadoPagoGateway) cardToken(ctx context.Context, r entities.PaymentRequest) (string, string, error) {
	card := r.Card
	if card.HasToken() {
		brand := strings.ToLower(strings.TrimSpace(card.Brand))
		if brand == "" {
			return "", "", paymenterr.NewPermanentGatewayError("", fmt.Errorf("%w: brand is required with a card token", ErrUnsupportedCardBrand))
		}
		return card.Token, brand, nil
	}

	number := onlyDigits(card.Number)
	brand := DetectCardBrand(number)
	if brand == "" {
		return "", "", paymenterr.NewPermanentGatewayError("", ErrUnsupportedCardBrand)
	}
	if g.cardTokens == nil {
		return "", "", paymenterr.NewPermanentGatewayError("", ErrMercadoPagoGatewayNotConfigured)
	}

	month, year := splitExpiry(card.ExpiryDate)
	tokenBody := map[string]any{
		"card_number":      number,
		"expiration_month": month,
		"expiration_year":  year,
		"security_code":    card.CVV,
		"cardholder": map[string]any{
			"name": card.HolderName,
		},
	}
	if r.Customer != nil && r.Customer.Document != "" {
		tokenBody["cardholder"] = map[string]any{
			"name": card.HolderName,
			"identification": map[string]any{
				"type":   "CPF",
				"number": onlyDigits(r.Customer.Document),
			},
		}
	}
	tokenReq, err := decodeCardTokenRequest(tokenBody)
	if err != nil {
		return "", "", paymenterr.NewPermanentGatewayError("", err)
	}

	resp, err := g.cardTokens.Create(ctx, tokenReq)
	if err != nil {
		log.Printf("[payment][gateway] card token creation failed brand=%s err=%v", brand, err)
		return "", "", classifyGatewayError(err)
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return "", "", paymenterr.NewPermanentGatewayError("", err)
	}
	var parsed struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil || parsed.ID == "" {
		return "", "", paymenterr.NewPermanentGatewayError("", errors.New("card token response without id"))
	}
	log.Printf("[payment][gateway] card tokenized brand=%s last4=%s", brand, lastDigits(number, 4))
	return parsed.ID, brand, nil
}

// decodeCardTokenRequest fills the SDK request from the JSON body. Expiry
// fields are sent as strings and retried as numbers when the SDK types them so.
func decodeCardTokenRequest(body map[string]any) (cardtoken.Request, error) {
	var req cardtoken.Request
	b, err := json.Marshal(body)
	if err != nil {
		return req, err
	}
	err = json.Unmarshal(b, &req)
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return req, err
	}

	for _, key := range []string{"expiration_month", "expiration_year"} {
		if v, ok := body[key].(string); ok {
			n, convErr := strconv.Atoi(v)
			if convErr != nil {
				return req, err
			}
			body[key] = n
		}
	}
	req = cardtoken.Request{}
	if b, err = json.Marshal(body); err != nil {
		return req, err
	}
	return req, json.Unmarshal(b, &req)
}

func payerPayload(c *entities.CustomerData) map[string]any {
	payer := map[string]any{}
	if c == nil {
		return payer
	}
	payer["email"] = c.Email
	first, last := splitName(c.Name)
	if first != "" {
		payer["first_name"] = first
	}
	if last != "" {
		payer["last_name"] = last
	}
	if c.Document != "" {
		payer["identification"] = map[string]any{
			"type":   "CPF",
			"number": onlyDigits(c.Document),
		}
	}
	if a := c.Address; a != nil {
		addr := map[string]any{}
		for k, v := range map[string]string{
			"zip_code":     onlyDigits(a.ZipCode),
			"street_name":  a.Street,
			"neighborhood": a.Neighborhood,
			"city":         a.City,
			"federal_unit": a.State,
		} {
			if v != "" {
				addr[k] = v
			}
		}
		if len(addr) > 0 {
			payer["address"] = addr
		}
	}
	return payer
}

// DetectCardBrand maps a PAN to Mercado Pago's payment_method_id by BIN.
// Elo and Hipercard ranges overlap Visa/Mastercard prefixes and are checked
// first. Unknown networks return "".
func DetectCardBrand(number string) string {
	number = onlyDigits(number)
	if len(number) < 6 {
		return ""
	}
	bin6 := number[:6]
	for _, p := range eloPrefixes {
		if strings.HasPrefix(number, p) {
			return "elo"
		}
	}
	if strings.HasPrefix(bin6, "606282") || strings.HasPrefix(number, "3841") {
		return "hipercard"
	}

	two := atoiPrefix(number, 2)
	four := atoiPrefix(number, 4)
	three := atoiPrefix(number, 3)
	switch {
	case number[0] == '4':
		return "visa"
	case two >= 51 && two <= 55, four >= 2221 && four <= 2720:
		return "master"
	case two == 34 || two == 37:
		return "amex"
	case two == 36 || two == 38 || (three >= 300 && three <= 305):
		return "diners"
	}
	return ""
}

var eloPrefixes = []string{
	"401178", "401179", "431274", "438935", "451416", "457393", "457631", "457632",
	"504175", "506699", "5067", "509", "627780", "636297", "636368", "650", "6516", "6550",
}

func atoiPrefix(s string, n int) int {
	if len(s) < n {
		return -1
	}
	v := 0
	for i := 0; i < n; i++ {
		v = v*10 + int(s[i]-'0')
	}
	return v
}

func splitExpiry(expiry string) (string, string) {
	parts := strings.SplitN(expiry, "/", 2)
	if len(parts) != 2 {
		return "", ""
	}
	return parts[0], "20" + parts[1]
}

func splitName(name string) (string, string) {
	fields := strings.Fields(name)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}

func onlyDigits(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

func lastDigits(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
