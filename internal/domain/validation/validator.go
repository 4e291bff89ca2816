package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"moturial_payments/internal/config"
	"moturial_payments/internal/domain/entities"
	"moturial_payments/internal/domain/paymenterr"
)

// Validation error codes.
const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeInvalidUserID        = "INVALID_USER_ID"
	CodeInvalidAmount        = "INVALID_AMOUNT"
	CodeAmountBelowMinimum   = "AMOUNT_BELOW_MINIMUM"
	CodeAmountAboveMaximum   = "AMOUNT_ABOVE_MAXIMUM"
	CodeInvalidAmountScale   = "INVALID_AMOUNT_SCALE"
	CodeInvalidCurrency      = "INVALID_CURRENCY"
	CodeUnsupportedCurrency  = "UNSUPPORTED_CURRENCY"
	CodeInvalidPaymentMethod = "INVALID_PAYMENT_METHOD"
	CodeInvalidInstallments  = "INVALID_INSTALLMENTS"
	CodeInvalidDescription   = "INVALID_DESCRIPTION"
	CodeInvalidCustomer      = "INVALID_CUSTOMER"
	CodeInvalidName          = "INVALID_NAME"
	CodeInvalidEmail         = "INVALID_EMAIL"
	CodeInvalidDocument      = "INVALID_DOCUMENT"
	CodeInvalidCPF           = "INVALID_CPF"
	CodeInvalidPhone         = "INVALID_PHONE"
	CodeInvalidAddress       = "INVALID_ADDRESS"
	CodeInvalidCard          = "INVALID_CARD"
	CodeInvalidCardNumber    = "INVALID_CARD_NUMBER"
	CodeInvalidExpiryDate    = "INVALID_EXPIRY_DATE"
	CodeCardExpired          = "CARD_EXPIRED"
	CodeInvalidCVV           = "INVALID_CVV"
	CodeInvalidCardToken     = "INVALID_CARD_TOKEN"
	CodeInvalidPix           = "INVALID_PIX"
	CodeInvalidBoleto        = "INVALID_BOLETO"
	CodeInvalidDueDate       = "INVALID_DUE_DATE"
)

const (
	maxIDLength          = 255
	maxDescriptionLength = 500
	maxEmailLength       = 255
	maxDocumentLength    = 20
	maxPhoneLength       = 20
	minNameLength        = 2
	maxNameLength        = 100
)

var (
	identifierPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	currencyPattern   = regexp.MustCompile(`^[A-Z]{3}$`)
	namePattern       = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]+$`)
	emailPattern      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	cpfPattern        = regexp.MustCompile(`^[0-9]{3}\.?[0-9]{3}\.?[0-9]{3}-?[0-9]{2}$`)
	phonePattern      = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	cardNumberPattern = regexp.MustCompile(`^[0-9]{13,19}$`)
	expiryPattern     = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2})$`)
	cvvPattern        = regexp.MustCompile(`^[0-9]{3,4}$`)
	statePattern      = regexp.MustCompile(`^[A-Z]{2}$`)
	zipCodePattern    = regexp.MustCompile(`^[0-9]{5}-?[0-9]{3}$`)
)

// Validator checks payment requests before any ledger write or network call.
// It stops at the first violated rule.
type Validator struct {
	cfg config.PaymentConfig
	now func() time.Time
}

func NewValidator(cfg config.PaymentConfig) *Validator {
	return &Validator{cfg: cfg, now: time.Now}
}

// WithClock replaces the clock used for card expiry and boleto due dates.
func (v *Validator) WithClock(now func() time.Time) *Validator {
	v.now = now
	return v
}

// Validate runs the common rules and then the block of the request's method.
func (v *Validator) Validate(req *entities.PaymentRequest) error {
	if err := v.ValidateRequest(req); err != nil {
		return err
	}

	switch req.PaymentMethod {
	case entities.PaymentMethodCard:
		if req.Pix != nil || req.Boleto != nil {
			return invalid(CodeInvalidRequest, "payment_method", "card payments must not carry pix or boleto data")
		}
		return v.ValidateCard(req.Card)
	case entities.PaymentMethodPix:
		if req.Card != nil || req.Boleto != nil {
			return invalid(CodeInvalidRequest, "payment_method", "pix payments must not carry card or boleto data")
		}
		return v.ValidatePix(req.Pix)
	case entities.PaymentMethodBoleto:
		if req.Card != nil || req.Pix != nil {
			return invalid(CodeInvalidRequest, "payment_method", "boleto payments must not carry card or pix data")
		}
		return v.ValidateBoleto(req.Boleto)
	}
	return nil
}

// ValidateRequest applies the rules shared by every payment method.
func (v *Validator) ValidateRequest(req *entities.PaymentRequest) error {
	if req == nil {
		return invalid(CodeInvalidRequest, "", "payment request is required")
	}
	if err := validateIdentifier(req.UserID, "user_id", CodeInvalidUserID); err != nil {
		return err
	}
	if err := v.validateAmount(req); err != nil {
		return err
	}
	if err := v.validateCurrency(req.Currency); err != nil {
		return err
	}
	if req.PaymentMethod == "" {
		return invalid(CodeInvalidPaymentMethod, "payment_method", "payment method is required")
	}
	if !req.PaymentMethod.IsValid() {
		return invalid(CodeInvalidPaymentMethod, "payment_method", "unsupported payment method")
	}
	if req.Installments < 1 || req.Installments > v.cfg.MaxInstallments {
		return invalid(CodeInvalidInstallments, "installments", "installments must be between 1 and "+strconv.Itoa(v.cfg.MaxInstallments))
	}
	if utf8.RuneCountInString(req.Description) > maxDescriptionLength {
		return invalid(CodeInvalidDescription, "description", "description must have at most 500 characters")
	}
	return validateCustomer(req.Customer)
}

func (v *Validator) validateAmount(req *entities.PaymentRequest) error {
	amount := req.Amount
	if amount.Sign() <= 0 {
		return invalid(CodeInvalidAmount, "amount", "amount must be greater than zero")
	}
	if amount.LessThan(v.cfg.MinAmount) {
		return invalid(CodeAmountBelowMinimum, "amount", "minimum amount is "+v.cfg.MinAmount.String())
	}
	if amount.GreaterThan(v.cfg.MaxAmount) {
		return invalid(CodeAmountAboveMaximum, "amount", "maximum amount is "+v.cfg.MaxAmount.String())
	}
	if !amount.Equal(amount.Truncate(2)) {
		return invalid(CodeInvalidAmountScale, "amount", "amount must have at most 2 decimal places")
	}
	return nil
}

func (v *Validator) validateCurrency(currency string) error {
	if currency == "" {
		return invalid(CodeInvalidCurrency, "currency", "currency is required")
	}
	if !currencyPattern.MatchString(currency) {
		return invalid(CodeInvalidCurrency, "currency", "currency must be 3 uppercase letters")
	}
	if !v.cfg.IsSupportedCurrency(currency) {
		return invalid(CodeUnsupportedCurrency, "currency", "unsupported currency: "+currency)
	}
	return nil
}

func validateCustomer(c *entities.CustomerData) error {
	if c == nil {
		return invalid(CodeInvalidCustomer, "customer", "customer data is required")
	}
	if err := validatePersonName(c.Name, "customer.name"); err != nil {
		return err
	}

	if strings.TrimSpace(c.Email) == "" {
		return invalid(CodeInvalidEmail, "customer.email", "email is required")
	}
	if len(c.Email) > maxEmailLength {
		return invalid(CodeInvalidEmail, "customer.email", "email must have at most 255 characters")
	}
	if !emailPattern.MatchString(c.Email) {
		return invalid(CodeInvalidEmail, "customer.email", "email must be valid")
	}

	if c.Document != "" {
		if len(c.Document) > maxDocumentLength {
			return invalid(CodeInvalidDocument, "customer.document", "document must have at most 20 characters")
		}
		if !cpfPattern.MatchString(c.Document) {
			return invalid(CodeInvalidDocument, "customer.document", "document must be a CPF")
		}
		if !CPFValid(onlyDigits(c.Document)) {
			return invalid(CodeInvalidCPF, "customer.document", "invalid CPF")
		}
	}

	if c.Phone != "" {
		if len(c.Phone) > maxPhoneLength {
			return invalid(CodeInvalidPhone, "customer.phone", "phone must have at most 20 characters")
		}
		if !phonePattern.MatchString(stripPhone(c.Phone)) {
			return invalid(CodeInvalidPhone, "customer.phone", "phone must be valid")
		}
	}

	if c.Address != nil {
		return validateAddress(c.Address)
	}
	return nil
}

func validateAddress(a *entities.AddressData) error {
	limits := []struct {
		field string
		value string
		max   int
	}{
		{"customer.address.street", a.Street, 200},
		{"customer.address.number", a.Number, 20},
		{"customer.address.complement", a.Complement, 100},
		{"customer.address.neighborhood", a.Neighborhood, 100},
		{"customer.address.city", a.City, 100},
		{"customer.address.country", a.Country, 100},
	}
	for _, l := range limits {
		if utf8.RuneCountInString(l.value) > l.max {
			return invalid(CodeInvalidAddress, l.field, "must have at most "+strconv.Itoa(l.max)+" characters")
		}
	}
	if a.State != "" && !statePattern.MatchString(a.State) {
		return invalid(CodeInvalidAddress, "customer.address.state", "state must have 2 uppercase letters")
	}
	if a.ZipCode != "" && !zipCodePattern.MatchString(a.ZipCode) {
		return invalid(CodeInvalidAddress, "customer.address.zip_code", "zip code must be valid")
	}
	return nil
}

// ValidateCard checks a card block. A token short-circuits the PAN, expiry and
// CVV rules.
func (v *Validator) ValidateCard(card *entities.CardData) error {
	if card == nil {
		return invalid(CodeInvalidCard, "card", "card data is required")
	}
	if card.HasToken() {
		return validateIdentifier(card.Token, "card.token", CodeInvalidCardToken)
	}

	if card.Number == "" {
		return invalid(CodeInvalidCardNumber, "card.number", "card number is required")
	}
	number := stripSpaces(card.Number)
	if !cardNumberPattern.MatchString(number) {
		return invalid(CodeInvalidCardNumber, "card.number", "card number must have between 13 and 19 digits")
	}
	if !LuhnValid(number) {
		return invalid(CodeInvalidCardNumber, "card.number", "invalid card number")
	}

	if err := validatePersonName(card.HolderName, "card.holder_name"); err != nil {
		return err
	}

	if card.ExpiryDate == "" {
		return invalid(CodeInvalidExpiryDate, "card.expiry_date", "expiry date is required")
	}
	m := expiryPattern.FindStringSubmatch(card.ExpiryDate)
	if m == nil {
		return invalid(CodeInvalidExpiryDate, "card.expiry_date", "expiry date must be MM/YY")
	}
	month, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])
	if !ExpiryNotBefore(month, year, v.now()) {
		return invalid(CodeCardExpired, "card.expiry_date", "card is expired")
	}

	if !cvvPattern.MatchString(card.CVV) {
		return invalid(CodeInvalidCVV, "card.cvv", "cvv must have 3 or 4 digits")
	}
	return nil
}

// ValidatePix checks the optional PIX key block.
func (v *Validator) ValidatePix(pix *entities.PixData) error {
	if pix == nil {
		return nil
	}
	if utf8.RuneCountInString(pix.PixKey) > 100 {
		return invalid(CodeInvalidPix, "pix.pix_key", "pix key must have at most 100 characters")
	}
	if utf8.RuneCountInString(pix.PixKeyType) > 50 {
		return invalid(CodeInvalidPix, "pix.pix_key_type", "pix key type must have at most 50 characters")
	}
	return nil
}

// ValidateBoleto requires a due date strictly after today.
func (v *Validator) ValidateBoleto(boleto *entities.BoletoData) error {
	if boleto == nil {
		return invalid(CodeInvalidBoleto, "boleto", "boleto data is required")
	}
	if boleto.DueDate.IsZero() {
		return invalid(CodeInvalidDueDate, "boleto.due_date", "due date is required")
	}
	now := v.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	due := time.Date(boleto.DueDate.Year(), boleto.DueDate.Month(), boleto.DueDate.Day(), 0, 0, 0, 0, time.UTC)
	if !due.After(today) {
		return invalid(CodeInvalidDueDate, "boleto.due_date", "due date must be in the future")
	}
	if utf8.RuneCountInString(boleto.Instructions) > 200 {
		return invalid(CodeInvalidBoleto, "boleto.instructions", "instructions must have at most 200 characters")
	}
	if utf8.RuneCountInString(boleto.Description) > 200 {
		return invalid(CodeInvalidBoleto, "boleto.description", "description must have at most 200 characters")
	}
	return nil
}

func validateIdentifier(value, field, code string) error {
	if strings.TrimSpace(value) == "" {
		return invalid(code, field, field+" is required")
	}
	if len(value) > maxIDLength {
		return invalid(code, field, field+" must have at most 255 characters")
	}
	if !identifierPattern.MatchString(value) {
		return invalid(code, field, field+" contains invalid characters")
	}
	return nil
}

func validatePersonName(name, field string) error {
	if strings.TrimSpace(name) == "" {
		return invalid(CodeInvalidName, field, "name is required")
	}
	n := utf8.RuneCountInString(name)
	if n < minNameLength || n > maxNameLength {
		return invalid(CodeInvalidName, field, "name must have between 2 and 100 characters")
	}
	if !namePattern.MatchString(name) {
		return invalid(CodeInvalidName, field, "name contains invalid characters")
	}
	return nil
}

func stripPhone(phone string) string {
	out := make([]byte, 0, len(phone))
	for i := 0; i < len(phone); i++ {
		if (phone[i] >= '0' && phone[i] <= '9') || phone[i] == '+' {
			out = append(out, phone[i])
		}
	}
	return string(out)
}

func invalid(code, field, message string) error {
	return paymenterr.NewValidationError(code, field, message)
}
