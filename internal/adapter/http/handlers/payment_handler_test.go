package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"moturial_payments/internal/adapter/http/handlers/mocks"
	"moturial_payments/internal/domain/entities"
	"moturial_payments/internal/domain/paymenterr"
	"moturial_payments/internal/usecase"
	"moturial_payments/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newPaymentRouter(t *testing.T) (*gin.Engine, *mocks.MockIPaymentUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc)

	r := gin.New()
	g := r.Group("/v1/payments")
	g.POST("/card", h.ProcessCardPayment)
	g.POST("/pix", h.ProcessPixPayment)
	g.POST("/boleto", h.ProcessBoletoPayment)
	g.GET("/:external_id/status", h.GetPaymentStatus)
	g.POST("/:external_id/cancel", h.CancelPayment)
	g.GET("/user/:user_id", h.GetUserPayments)
	g.GET("/id/:id", h.GetPaymentByID)
	g.GET("/external/:external_id", h.GetPaymentByExternalID)
	return r, uc
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeHTTPError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, w.Body.String())
	}
	return body
}

const cardBody = `{
	"user_id": "user-1",
	"amount": 150.00,
	"currency": "BRL",
	"installments": 2,
	"customer": {"name": "Ana Souza", "email": "ana@example.com", "document": "529.982.247-25"},
	"card": {"number": "4111111111111111", "holder_name": "ANA SOUZA", "expiry_date": "12/30", "cvv": "123"}
}`

func TestPaymentHandler_Process(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newPaymentRouter(t)
		w := doRequest(r, http.MethodPost, "/v1/payments/card", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeHTTPError(t, w); body.Code != "INVALID_REQUEST" {
			t.Fatalf("unexpected code: %s", body.Code)
		}
	})

	t.Run("card success", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().ProcessCardPayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req entities.PaymentRequest) (entities.PaymentResult, error) {
				if req.PaymentMethod != entities.PaymentMethodCard || req.Installments != 2 {
					t.Fatalf("unexpected request: %+v", req)
				}
				if !req.Amount.Equal(decimal.NewFromInt(150)) {
					t.Fatalf("unexpected amount: %s", req.Amount)
				}
				return entities.PaymentResult{ExternalID: "98765", Status: entities.PaymentStatusApproved, Amount: req.Amount, Currency: "BRL", PaymentMethod: entities.PaymentMethodCard}, nil
			})

		w := doRequest(r, http.MethodPost, "/v1/payments/card", cardBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["external_id"] != "98765" || body["status"] != "approved" || body["amount"] != "150.00" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("pix route fills method", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().ProcessPixPayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req entities.PaymentRequest) (entities.PaymentResult, error) {
				if req.PaymentMethod != entities.PaymentMethodPix || req.Installments != 1 {
					t.Fatalf("unexpected request: %+v", req)
				}
				return entities.PaymentResult{ExternalID: "1", Status: entities.PaymentStatusPending, PixCopyPaste: "000201"}, nil
			})

		w := doRequest(r, http.MethodPost, "/v1/payments/pix", `{"user_id":"user-1","amount":"50.00","currency":"BRL","customer":{"name":"Ana","email":"ana@example.com"},"pix":{}}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("boleto bad due date never reaches usecase", func(t *testing.T) {
		r, _ := newPaymentRouter(t)
		w := doRequest(r, http.MethodPost, "/v1/payments/boleto", `{"user_id":"user-1","amount":"50.00","boleto":{"due_date":"tomorrow"}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeHTTPError(t, w)
		if body.Code != "INVALID_DUE_DATE" || body.Field != "boleto.due_date" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("validation error", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().ProcessCardPayment(gomock.Any(), gomock.Any()).
			Return(entities.PaymentResult{}, paymenterr.NewValidationError("CARD_EXPIRED", "card.expiry_date", "card is expired"))

		w := doRequest(r, http.MethodPost, "/v1/payments/card", cardBody)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeHTTPError(t, w)
		if body.Code != "CARD_EXPIRED" || body.Field != "card.expiry_date" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("processing error", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().ProcessCardPayment(gomock.Any(), gomock.Any()).
			Return(entities.PaymentResult{}, paymenterr.NewProcessingError(paymenterr.CodeGatewayUnavailable, "payment processing failed", errors.New("timeout")))

		w := doRequest(r, http.MethodPost, "/v1/payments/card", cardBody)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		body := decodeHTTPError(t, w)
		if body.Code != paymenterr.CodeGatewayUnavailable {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestPaymentHandler_StatusAndCancel(t *testing.T) {
	t.Run("status success", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().GetPaymentStatus(gomock.Any(), "123").
			Return(entities.PaymentResult{ExternalID: "123", Status: entities.PaymentStatusApproved, Amount: decimal.NewFromInt(10), Currency: "BRL"}, nil)

		w := doRequest(r, http.MethodGet, "/v1/payments/123/status", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("status unknown payment", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().GetPaymentStatus(gomock.Any(), "404").
			Return(entities.PaymentResult{}, paymenterr.NewValidationError(usecase.CodePaymentNotFound, "external_id", "payment not found"))

		w := doRequest(r, http.MethodGet, "/v1/payments/404/status", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("cancel finalized", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().CancelPayment(gomock.Any(), "123").
			Return(entities.PaymentResult{}, paymenterr.NewValidationError(usecase.CodePaymentFinalized, "external_id", "payment already approved"))

		w := doRequest(r, http.MethodPost, "/v1/payments/123/cancel", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeHTTPError(t, w); body.Code != usecase.CodePaymentFinalized {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("cancel success", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().CancelPayment(gomock.Any(), "123").
			Return(entities.PaymentResult{ExternalID: "123", Status: entities.PaymentStatusCancelled}, nil)

		w := doRequest(r, http.MethodPost, "/v1/payments/123/cancel", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_Reads(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	t.Run("user payments", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().GetUserPayments(gomock.Any(), "user-1").Return([]entities.Payment{
			{ID: "pay-2", UserID: "user-1", CreatedAt: now},
			{ID: "pay-1", UserID: "user-1", CreatedAt: now.Add(-time.Hour)},
		}, nil)

		w := doRequest(r, http.MethodGet, "/v1/payments/user/user-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(body) != 2 || body[0]["id"] != "pay-2" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("by id not found", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().GetPaymentByID(gomock.Any(), "missing").Return(entities.Payment{}, usecase.ErrPaymentNotFound)

		w := doRequest(r, http.MethodGet, "/v1/payments/id/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("by external id", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().GetPaymentByExternalID(gomock.Any(), "555").Return(entities.Payment{ID: "pay-1", ExternalID: "555", CreatedAt: now}, nil)

		w := doRequest(r, http.MethodGet, "/v1/payments/external/555", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapPaymentError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", paymenterr.NewValidationError("INVALID_CPF", "customer.document", "invalid CPF"), http.StatusBadRequest, "INVALID_CPF"},
		{"not found", usecase.ErrPaymentNotFound, http.StatusNotFound, usecase.CodePaymentNotFound},
		{"ledger", paymenterr.NewProcessingError(paymenterr.CodeLedgerFailure, "ledger down", errors.New("x")), http.StatusInternalServerError, paymenterr.CodeLedgerFailure},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := mapPaymentError(tc.err)
			if appErr.HTTPStatus != tc.status || appErr.Code != tc.code {
				t.Fatalf("expected %d/%s, got %d/%s", tc.status, tc.code, appErr.HTTPStatus, appErr.Code)
			}
		})
	}
}
