package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "moturial_payments/internal/adapter/http/dto/request"
	response "moturial_payments/internal/adapter/http/dto/response"
	"moturial_payments/internal/domain/entities"
	"moturial_payments/internal/domain/paymenterr"
	"moturial_payments/internal/usecase"
	"moturial_payments/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// PaymentHandler exposes the payment use case over HTTP.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// ProcessCardPayment godoc
// @Summary Process a card payment
// @Tags    payments
// @Accept  json
// @Produce json
// @Param   payment body request.PaymentCreateRequest true "Payment"
// @Success 201 {object} response.PaymentResultResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router  /payments/card [post]
func (h *PaymentHandler) ProcessCardPayment(c *gin.Context) {
	h.process(c, entities.PaymentMethodCard, h.usecase.ProcessCardPayment)
}

// ProcessPixPayment godoc
// @Summary Process a PIX payment
// @Tags    payments
// @Router  /payments/pix [post]
func (h *PaymentHandler) ProcessPixPayment(c *gin.Context) {
	h.process(c, entities.PaymentMethodPix, h.usecase.ProcessPixPayment)
}

// ProcessBoletoPayment godoc
// @Summary Issue a boleto payment
// @Tags    payments
// @Router  /payments/boleto [post]
func (h *PaymentHandler) ProcessBoletoPayment(c *gin.Context) {
	h.process(c, entities.PaymentMethodBoleto, h.usecase.ProcessBoletoPayment)
}

func (h *PaymentHandler) process(c *gin.Context, method entities.PaymentMethod, fn func(context.Context, entities.PaymentRequest) (entities.PaymentResult, error)) {
	var payload request.PaymentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload method=%s err=%v", method, err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	req, err := payload.ToEntity(method)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] process start method=%s user_id=%s", method, req.UserID)

	result, err := fn(c.Request.Context(), req)
	if err != nil {
		log.Printf("[payment][handler] process failed method=%s user_id=%s err=%v", method, req.UserID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] process success method=%s external_id=%s status=%s", method, result.ExternalID, result.Status)

	c.JSON(http.StatusCreated, response.FromPaymentResult(result))
}

// GetPaymentStatus godoc
// @Summary Reconcile and return the payment status
// @Tags    payments
// @Produce json
// @Param   external_id path string true "Processor payment id"
// @Success 200 {object} response.PaymentResultResponse
// @Router  /payments/{external_id}/status [get]
func (h *PaymentHandler) GetPaymentStatus(c *gin.Context) {
	externalID := c.Param("external_id")
	result, err := h.usecase.GetPaymentStatus(c.Request.Context(), externalID)
	if err != nil {
		log.Printf("[payment][handler] status failed external_id=%s err=%v", externalID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentResult(result))
}

// CancelPayment godoc
// @Summary Cancel a pending payment
// @Tags    payments
// @Produce json
// @Param   external_id path string true "Processor payment id"
// @Success 200 {object} response.PaymentResultResponse
// @Router  /payments/{external_id}/cancel [post]
func (h *PaymentHandler) CancelPayment(c *gin.Context) {
	externalID := c.Param("external_id")
	log.Printf("[payment][handler] cancel start external_id=%s", externalID)
	result, err := h.usecase.CancelPayment(c.Request.Context(), externalID)
	if err != nil {
		log.Printf("[payment][handler] cancel failed external_id=%s err=%v", externalID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentResult(result))
}

// GetUserPayments godoc
// @Summary List a user's payments, newest first
// @Tags    payments
// @Produce json
// @Param   user_id path string true "User id"
// @Success 200 {array} response.PaymentResponse
// @Router  /payments/user/{user_id} [get]
func (h *PaymentHandler) GetUserPayments(c *gin.Context) {
	userID := c.Param("user_id")
	items, err := h.usecase.GetUserPayments(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[payment][handler] list failed user_id=%s err=%v", userID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(items))
}

// GetPaymentByID godoc
// @Summary Get a payment by internal id
// @Tags    payments
// @Produce json
// @Param   id path string true "Payment id"
// @Success 200 {object} response.PaymentResponse
// @Failure 404 {object} pkg.HTTPError
// @Router  /payments/id/{id} [get]
func (h *PaymentHandler) GetPaymentByID(c *gin.Context) {
	p, err := h.usecase.GetPaymentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// GetPaymentByExternalID godoc
// @Summary Get a payment by processor id
// @Tags    payments
// @Produce json
// @Param   external_id path string true "Processor payment id"
// @Success 200 {object} response.PaymentResponse
// @Failure 404 {object} pkg.HTTPError
// @Router  /payments/external/{external_id} [get]
func (h *PaymentHandler) GetPaymentByExternalID(c *gin.Context) {
	p, err := h.usecase.GetPaymentByExternalID(c.Request.Context(), c.Param("external_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

func mapPaymentError(err error) *pkg.AppError {
	var ve *paymenterr.ValidationError
	var pe *paymenterr.ProcessingError
	switch {
	case errors.As(err, &ve):
		return pkg.NewDomainErrorSimple(ve.Code, ve.Message, http.StatusBadRequest).WithField(ve.Field)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple(usecase.CodePaymentNotFound, "Payment not found", http.StatusNotFound)
	case errors.As(err, &pe):
		return pkg.NewDomainError(pe.Code, pe.Message, err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
