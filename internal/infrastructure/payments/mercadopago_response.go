package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net"
	"regexp"
	"strconv"
	"strings"

	"moturial_payments/internal/domain/entities"
	"moturial_payments/internal/domain/paymenterr"
	"moturial_payments/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/payment"
)

// mpPayment holds the response fields the service reads. The SDK response is
// re-read through JSON so only these wire names matter.
type mpPayment struct {
	ID                json.Number    `json:"id"`
	Status            string         `json:"status"`
	StatusDetail      string         `json:"status_detail"`
	TransactionAmount float64        `json:"transaction_amount"`
	CurrencyID        string         `json:"currency_id"`
	PaymentMethodID   string         `json:"payment_method_id"`
	PaymentTypeID     string         `json:"payment_type_id"`
	Description       string         `json:"description"`
	Metadata          map[string]any `json:"metadata"`
	TransactionDetail struct {
		ExternalResourceURL string `json:"external_resource_url"`
	} `json:"transaction_details"`
	Barcode struct {
		Content string `json:"content"`
	} `json:"barcode"`
	PointOfInteraction struct {
		TransactionData struct {
			QRCode       string `json:"qr_code"`
			QRCodeBase64 string `json:"qr_code_base64"`
			TicketURL    string `json:"ticket_url"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`
}

func resultFromResponse(resp *payment.Response) (interfaces.GatewayResult, error) {
	if resp == nil {
		return interfaces.GatewayResult{}, paymenterr.NewPermanentGatewayError("", errors.New("empty mercado pago response"))
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return interfaces.GatewayResult{}, paymenterr.NewPermanentGatewayError("", err)
	}
	return parsePaymentJSON(b)
}

func parsePaymentJSON(b []byte) (interfaces.GatewayResult, error) {
	var p mpPayment
	if err := json.Unmarshal(b, &p); err != nil {
		return interfaces.GatewayResult{}, paymenterr.NewPermanentGatewayError("", fmt.Errorf("decode mercado pago payment: %w", err))
	}

	res := interfaces.GatewayResult{
		RemoteID:      p.ID.String(),
		StatusCode:    p.Status,
		StatusDetail:  p.StatusDetail,
		AmountMinor:   int64(math.Round(p.TransactionAmount * 100)),
		Currency:      p.CurrencyID,
		PaymentMethod: paymentMethodOf(p.PaymentMethodID, p.PaymentTypeID),
		Description:   p.Description,
		PixQRCode:     p.PointOfInteraction.TransactionData.QRCodeBase64,
		PixCopyPaste:  p.PointOfInteraction.TransactionData.QRCode,
		BoletoURL:     p.TransactionDetail.ExternalResourceURL,
		BoletoBarcode: p.Barcode.Content,
	}
	if res.RemoteID == "0" {
		res.RemoteID = ""
	}
	if res.BoletoURL == "" && res.PaymentMethod == entities.PaymentMethodBoleto {
		res.BoletoURL = p.PointOfInteraction.TransactionData.TicketURL
	}
	if len(p.Metadata) > 0 {
		res.Metadata = make(map[string]string, len(p.Metadata))
		for k, v := range p.Metadata {
			res.Metadata[k] = fmt.Sprint(v)
		}
	}
	return res, nil
}

func paymentMethodOf(methodID, typeID string) entities.PaymentMethod {
	switch {
	case methodID == mpMethodPix || typeID == "bank_transfer":
		return entities.PaymentMethodPix
	case typeID == "ticket" || methodID == mpMethodBoleto:
		return entities.PaymentMethodBoleto
	case typeID == "credit_card" || typeID == "debit_card" || typeID == "prepaid_card":
		return entities.PaymentMethodCard
	}
	return ""
}

var statusPattern = regexp.MustCompile(`"status"\s*:\s*(\d{3})`)

// classifyGatewayError splits SDK failures into transient (network, timeout,
// 429, 5xx) and permanent ones. The SDK surfaces API errors as the response
// body text, so the HTTP status is read from it.
func classifyGatewayError(err error) error {
	if err == nil {
		return nil
	}
	var ge *paymenterr.GatewayError
	if errors.As(err, &ge) {
		return err
	}

	msg := strings.ToLower(err.Error())
	if m := statusPattern.FindStringSubmatch(msg); m != nil {
		code, _ := strconv.Atoi(m[1])
		switch {
		case code == 404:
			return paymenterr.NewPermanentGatewayError(paymenterr.ExternalCodeNotFound, err)
		case code == 408 || code == 429 || code >= 500:
			return paymenterr.NewTransientGatewayError(m[1], err)
		default:
			return paymenterr.NewPermanentGatewayError(m[1], err)
		}
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.As(err, &netErr) {
		return paymenterr.NewTransientGatewayError("", err)
	}
	for _, hint := range []string{"timeout", "connection refused", "connection reset", "eof", "no such host", "temporarily unavailable"} {
		if strings.Contains(msg, hint) {
			return paymenterr.NewTransientGatewayError("", err)
		}
	}
	if strings.Contains(msg, "not_found") || strings.Contains(msg, "not found") {
		return paymenterr.NewPermanentGatewayError(paymenterr.ExternalCodeNotFound, err)
	}
	return paymenterr.NewPermanentGatewayError("", err)
}
