package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"moturial_payments/internal/domain/entities"
	"moturial_payments/internal/domain/paymenterr"
	"moturial_payments/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/cardtoken"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// paymentAPI is the part of the SDK payment client the gateway calls.
type paymentAPI interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
	Search(ctx context.Context, request payment.SearchRequest) (*payment.SearchResponse, error)
	Get(ctx context.Context, id int) (*payment.Response, error)
	Cancel(ctx context.Context, id int) (*payment.Response, error)
}

type cardTokenAPI interface {
	Create(ctx context.Context, request cardtoken.Request) (*cardtoken.Response, error)
}

// MercadoPagoGateway charges cards, PIX and boleto through Mercado Pago.
//
// In mock mode (PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK) no network call is
// made: cards are approved, PIX and boleto come back pending with display data.

type MercadoPagoGateway struct {
	payments   paymentAPI
	cardTokens cardTokenAPI
	mockMode   bool
	now        func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, now: utcNow}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return newMercadoPagoGateway(payment.NewClient(cfg), cardtoken.NewClient(cfg)), nil
}

func newMercadoPagoGateway(payments paymentAPI, cardTokens cardTokenAPI) *MercadoPagoGateway {
	return &MercadoPagoGateway{payments: payments, cardTokens: cardTokens, now: utcNow}
}

func (g *MercadoPagoGateway) Charge(ctx context.Context, req interfaces.ChargeRequest) (interfaces.GatewayResult, error) {
	method := req.Request.PaymentMethod
	if g != nil && g.mockMode {
		return g.mockCharge(req), nil
	}
	if g == nil || g.payments == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.GatewayResult{}, paymenterr.NewPermanentGatewayError("", ErrMercadoPagoGatewayNotConfigured)
	}
	log.Printf("[payment][gateway] charge start reference=%s method=%s amount_minor=%d attempt=%d", req.Reference, method, req.AmountMinor, req.Attempt)

	if req.Attempt > 1 {
		existing, found, err := g.findByReference(ctx, req.Reference)
		if err != nil {
			return interfaces.GatewayResult{}, err
		}
		if found {
			log.Printf("[payment][gateway] charge already filed reference=%s remote_id=%s remote_status=%s", req.Reference, existing.RemoteID, existing.StatusCode)
			return existing, nil
		}
	}

	body, err := g.buildPaymentPayload(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] payload build failed reference=%s err=%v", req.Reference, err)
		return interfaces.GatewayResult{}, err
	}

	var mpReq payment.Request
	if err := json.Unmarshal(body, &mpReq); err != nil {
		log.Printf("[payment][gateway] payload unmarshal failed reference=%s err=%v", req.Reference, err)
		return interfaces.GatewayResult{}, paymenterr.NewPermanentGatewayError("", err)
	}

	resp, err := g.payments.Create(ctx, mpReq)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed reference=%s err=%v", req.Reference, err)
		return interfaces.GatewayResult{}, classifyGatewayError(err)
	}

	res, err := resultFromResponse(resp)
	if err != nil {
		return interfaces.GatewayResult{}, err
	}
	log.Printf("[payment][gateway] charge done reference=%s remote_id=%s remote_status=%s", req.Reference, res.RemoteID, res.StatusCode)
	return res, nil
}

// findByReference returns the newest payment filed under external_reference.
func (g *MercadoPagoGateway) findByReference(ctx context.Context, reference string) (interfaces.GatewayResult, bool, error) {
	resp, err := g.payments.Search(ctx, payment.SearchRequest{
		Limit: 10,
		Filters: map[string]string{
			"external_reference": reference,
			"sort":               "date_created",
			"criteria":           "desc",
		},
	})
	if err != nil {
		log.Printf("[payment][gateway] sdk search failed reference=%s err=%v", reference, err)
		return interfaces.GatewayResult{}, false, classifyGatewayError(err)
	}
	if resp == nil || len(resp.Results) == 0 {
		return interfaces.GatewayResult{}, false, nil
	}
	if len(resp.Results) > 1 {
		log.Printf("[payment][gateway] several payments share reference=%s count=%d", reference, len(resp.Results))
	}
	res, err := resultFromResponse(&resp.Results[0])
	if err != nil {
		return interfaces.GatewayResult{}, false, err
	}
	return res, res.RemoteID != "", nil
}

func (g *MercadoPagoGateway) Retrieve(ctx context.Context, externalID string) (interfaces.GatewayResult, error) {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock retrieve external_id=%s", externalID)
		return interfaces.GatewayResult{RemoteID: externalID, StatusCode: "approved", StatusDetail: "accredited"}, nil
	}
	if g == nil || g.payments == nil {
		return interfaces.GatewayResult{}, paymenterr.NewPermanentGatewayError("", ErrMercadoPagoGatewayNotConfigured)
	}

	id, err := remoteID(externalID)
	if err != nil {
		return interfaces.GatewayResult{}, err
	}
	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk get failed external_id=%s err=%v", externalID, err)
		return interfaces.GatewayResult{}, classifyGatewayError(err)
	}
	return resultFromResponse(resp)
}

func (g *MercadoPagoGateway) Cancel(ctx context.Context, externalID string) (interfaces.GatewayResult, error) {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock cancel external_id=%s", externalID)
		return interfaces.GatewayResult{RemoteID: externalID, StatusCode: "cancelled", StatusDetail: "by_collector"}, nil
	}
	if g == nil || g.payments == nil {
		return interfaces.GatewayResult{}, paymenterr.NewPermanentGatewayError("", ErrMercadoPagoGatewayNotConfigured)
	}

	id, err := remoteID(externalID)
	if err != nil {
		return interfaces.GatewayResult{}, err
	}
	resp, err := g.payments.Cancel(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk cancel failed external_id=%s err=%v", externalID, err)
		return interfaces.GatewayResult{}, classifyGatewayError(err)
	}
	log.Printf("[payment][gateway] cancel done external_id=%s", externalID)
	return resultFromResponse(resp)
}

func (g *MercadoPagoGateway) mockCharge(req interfaces.ChargeRequest) interfaces.GatewayResult {
	now := g.now()
	id := strconv.FormatInt(now.UnixNano(), 10)
	res := interfaces.GatewayResult{
		RemoteID:      id,
		AmountMinor:   req.AmountMinor,
		Currency:      req.Request.Currency,
		PaymentMethod: req.Request.PaymentMethod,
		Description:   req.Request.Description,
		Metadata:      req.Metadata,
	}

	switch req.Request.PaymentMethod {
	case entities.PaymentMethodPix:
		res.StatusCode = "pending"
		res.StatusDetail = "pending_waiting_transfer"
		res.PixCopyPaste = fmt.Sprintf("00020126580014br.gov.bcb.pix0136%s5204000053039865802BR", req.Reference)
		res.PixQRCode = "bW9jay1waXgtcXItY29kZQ=="
	case entities.PaymentMethodBoleto:
		res.StatusCode = "pending"
		res.StatusDetail = "pending_waiting_payment"
		res.BoletoURL = "https://www.mercadopago.com.br/payments/" + id + "/ticket"
		res.BoletoBarcode = fmt.Sprintf("23791%039d", req.AmountMinor)
	default:
		res.StatusCode = "approved"
		res.StatusDetail = "accredited"
	}
	log.Printf("[payment][gateway] mock charge reference=%s remote_id=%s remote_status=%s", req.Reference, id, res.StatusCode)
	return res
}

func remoteID(externalID string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(externalID))
	if err != nil || id <= 0 {
		return 0, paymenterr.NewPermanentGatewayError(paymenterr.ExternalCodeNotFound, fmt.Errorf("not a mercado pago payment id: %q", externalID))
	}
	return id, nil
}

func utcNow() time.Time { return time.Now().UTC() }

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
