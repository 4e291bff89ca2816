package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"moturial_payments/internal/config"
	"moturial_payments/internal/domain/entities"
	"moturial_payments/internal/domain/paymenterr"
	"moturial_payments/internal/domain/validation"
	"moturial_payments/internal/usecase/interfaces"

	"github.com/google/uuid"
)

//go:generate mockgen -source=payment_usecase.go -destination=../adapter/http/handlers/mocks/mock_payment_usecase.go -package=mocks

var (
	ErrPaymentNotFound  = errors.New("payment not found")
	errPaymentFinalized = errors.New("payment already finalized")
)

// Error codes raised by the orchestrator itself.
const (
	CodePaymentNotFound   = "PAYMENT_NOT_FOUND"
	CodePaymentFinalized  = "PAYMENT_FINALIZED"
	CodeInvalidExternalID = "INVALID_EXTERNAL_ID"
	CodeInvalidPaymentID  = "INVALID_PAYMENT_ID"

	CodeCancelNotConfirmed = "CANCEL_NOT_CONFIRMED"
)

const (
	maxLedgerAttempts     = 3
	maxErrorMessageLength = 1000
	ledgerWriteTimeout    = 10 * time.Second
)

// IPaymentUseCase is the payment orchestrator: validation, ledger bookkeeping
// and processor calls for every payment method.
//
// Process* operations return a *paymenterr.ValidationError for bad input and a
// *paymenterr.ProcessingError for gateway or ledger failures.

type IPaymentUseCase interface {
	ProcessCardPayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResult, error)
	ProcessPixPayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResult, error)
	ProcessBoletoPayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResult, error)
	GetPaymentStatus(ctx context.Context, externalID string) (entities.PaymentResult, error)
	CancelPayment(ctx context.Context, externalID string) (entities.PaymentResult, error)
	GetUserPayments(ctx context.Context, userID string) ([]entities.Payment, error)
	GetPaymentByID(ctx context.Context, id string) (entities.Payment, error)
	GetPaymentByExternalID(ctx context.Context, externalID string) (entities.Payment, error)
}

type PaymentUseCase struct {
	validator      *validation.Validator
	ledger         interfaces.IPaymentLedger
	gateway        interfaces.IPaymentGateway
	cache          interfaces.IPaymentResultCache
	retry          RetryPolicy
	gatewayTimeout time.Duration
	now            func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

// NewPaymentUseCase wires the orchestrator. cache may be nil; validator defaults
// to one built from cfg.
func NewPaymentUseCase(cfg config.PaymentConfig, validator *validation.Validator, ledger interfaces.IPaymentLedger, gateway interfaces.IPaymentGateway, cache interfaces.IPaymentResultCache) *PaymentUseCase {
	if validator == nil {
		validator = validation.NewValidator(cfg)
	}
	timeout := cfg.GatewayTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &PaymentUseCase{
		validator:      validator,
		ledger:         ledger,
		gateway:        gateway,
		cache:          cache,
		retry:          NewRetryPolicy(cfg.Retry),
		gatewayTimeout: timeout,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (u *PaymentUseCase) ProcessCardPayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResult, error) {
	return u.process(ctx, req, entities.PaymentMethodCard)
}

func (u *PaymentUseCase) ProcessPixPayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResult, error) {
	return u.process(ctx, req, entities.PaymentMethodPix)
}

func (u *PaymentUseCase) ProcessBoletoPayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResult, error) {
	return u.process(ctx, req, entities.PaymentMethodBoleto)
}

func (u *PaymentUseCase) process(ctx context.Context, req entities.PaymentRequest, method entities.PaymentMethod) (entities.PaymentResult, error) {
	log.Printf("[payment][usecase] process start method=%s user_id=%s", method, req.UserID)
	if err := u.validator.Validate(&req); err != nil {
		log.Printf("[payment][usecase] validation failed method=%s user_id=%s err=%v", method, req.UserID, err)
		return entities.PaymentResult{}, err
	}
	if req.PaymentMethod != method {
		log.Printf("[payment][usecase] payment method mismatch expected=%s got=%s", method, req.PaymentMethod)
		return entities.PaymentResult{}, paymenterr.NewValidationError(validation.CodeInvalidPaymentMethod, "payment_method", fmt.Sprintf("payment method must be %s", method))
	}
	if err := u.ensureConfigured(); err != nil {
		return entities.PaymentResult{}, err
	}

	now := u.now()
	payment := entities.Payment{
		ID:            uuid.NewString(),
		ExternalID:    uuid.NewString(),
		UserID:        req.UserID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		PaymentMethod: method,
		Status:        entities.PaymentStatusPending,
		Installments:  req.Installments,
		Description:   req.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	payment.Metadata = chargeMetadata(req, payment.ID)

	payment, err := u.ledger.Save(ctx, payment)
	if err != nil {
		log.Printf("[payment][usecase] failed recording payment user_id=%s err=%v", req.UserID, err)
		return entities.PaymentResult{}, ledgerFailure("failed to record payment", err)
	}
	log.Printf("[payment][usecase] payment recorded id=%s provisional_external_id=%s status=%s", payment.ID, payment.ExternalID, payment.Status)

	charge := interfaces.ChargeRequest{
		Reference:   payment.ID,
		AmountMinor: entities.ToMinorUnits(req.Amount),
		Request:     req,
		Metadata:    payment.Metadata,
	}
	gres, err := u.callGateway(ctx, "charge", func(ctx context.Context, attempt int) (interfaces.GatewayResult, error) {
		charge.Attempt = attempt
		return u.gateway.Charge(ctx, charge)
	})
	wctx, cancel := settleContext(ctx)
	defer cancel()
	if err != nil {
		log.Printf("[payment][usecase] charge failed id=%s err=%v", payment.ID, err)
		u.recordFailure(wctx, payment, err)
		return entities.PaymentResult{}, gatewayFailure("payment processing failed", err)
	}

	updated, err := u.applyGatewayResult(wctx, payment, gres)
	if err != nil {
		log.Printf("[payment][usecase] failed updating payment after charge id=%s remote_id=%s remote_status=%s err=%v", payment.ID, gres.RemoteID, gres.StatusCode, err)
		return entities.PaymentResult{}, ledgerFailure("failed to update payment", err)
	}
	u.cacheResult(wctx, updated)

	result := withDisplayFields(updated.ToResult(), gres)
	log.Printf("[payment][usecase] process done id=%s external_id=%s status=%s", updated.ID, updated.ExternalID, updated.Status)
	return result, nil
}

// GetPaymentStatus answers final payments from cache or ledger without calling
// the processor; anything else is re-queried and reconciled.
func (u *PaymentUseCase) GetPaymentStatus(ctx context.Context, externalID string) (entities.PaymentResult, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return entities.PaymentResult{}, paymenterr.NewValidationError(CodeInvalidExternalID, "external_id", "external id is required")
	}

	if u.cache != nil {
		res, ok, err := u.cache.Get(ctx, externalID)
		if err != nil {
			log.Printf("[payment][usecase] result cache read failed external_id=%s err=%v", externalID, err)
		} else if ok {
			log.Printf("[payment][usecase] status served from cache external_id=%s status=%s", externalID, res.Status)
			return res, nil
		}
	}
	if err := u.ensureConfigured(); err != nil {
		return entities.PaymentResult{}, err
	}

	p, err := u.ledger.FindByExternalID(ctx, externalID)
	if err != nil {
		return entities.PaymentResult{}, ledgerFailure("failed to load payment", err)
	}
	if p.ID == "" {
		log.Printf("[payment][usecase] payment unknown locally; querying gateway external_id=%s", externalID)
		return u.statusFromGateway(ctx, externalID)
	}
	if p.Status.IsFinal() {
		u.cacheResult(ctx, p)
		return p.ToResult(), nil
	}

	gres, err := u.callGateway(ctx, "retrieve", func(ctx context.Context, _ int) (interfaces.GatewayResult, error) {
		return u.gateway.Retrieve(ctx, externalID)
	})
	if err != nil {
		if paymenterr.IsGatewayNotFound(err) {
			log.Printf("[payment][usecase] gateway does not know payment yet id=%s external_id=%s", p.ID, externalID)
			return p.ToResult(), nil
		}
		return entities.PaymentResult{}, gatewayFailure("payment status lookup failed", err)
	}

	next := MapGatewayStatus(gres.StatusCode)
	if next == p.Status && (gres.RemoteID == "" || gres.RemoteID == p.ExternalID) {
		return withDisplayFields(p.ToResult(), gres), nil
	}

	wctx, cancel := settleContext(ctx)
	defer cancel()
	updated, err := u.applyGatewayResult(wctx, p, gres)
	if errors.Is(err, errPaymentFinalized) {
		u.cacheResult(wctx, updated)
		return updated.ToResult(), nil
	}
	if err != nil {
		return entities.PaymentResult{}, ledgerFailure("failed to update payment", err)
	}
	u.cacheResult(wctx, updated)
	log.Printf("[payment][usecase] status reconciled id=%s external_id=%s status=%s", updated.ID, updated.ExternalID, updated.Status)
	if updated.Status.IsFinal() {
		return updated.ToResult(), nil
	}
	return withDisplayFields(updated.ToResult(), gres), nil
}

func (u *PaymentUseCase) statusFromGateway(ctx context.Context, externalID string) (entities.PaymentResult, error) {
	gres, err := u.callGateway(ctx, "retrieve", func(ctx context.Context, _ int) (interfaces.GatewayResult, error) {
		return u.gateway.Retrieve(ctx, externalID)
	})
	if err != nil {
		if paymenterr.IsGatewayNotFound(err) {
			return entities.PaymentResult{}, paymenterr.NewValidationError(CodePaymentNotFound, "external_id", "payment not found")
		}
		return entities.PaymentResult{}, gatewayFailure("payment status lookup failed", err)
	}

	status := MapGatewayStatus(gres.StatusCode)
	res := entities.PaymentResult{
		ExternalID:    externalID,
		Status:        status,
		Amount:        entities.FromMinorUnits(gres.AmountMinor),
		Currency:      strings.ToUpper(gres.Currency),
		PaymentMethod: gres.PaymentMethod,
		Description:   gres.Description,
		Metadata:      gres.Metadata,
		PixQRCode:     gres.PixQRCode,
		PixCopyPaste:  gres.PixCopyPaste,
		BoletoURL:     gres.BoletoURL,
		BoletoBarcode: gres.BoletoBarcode,
	}
	if gres.RemoteID != "" {
		res.ExternalID = gres.RemoteID
	}
	if status == entities.PaymentStatusRejected || status == entities.PaymentStatusError {
		res.ErrorMessage = failureDetail(gres)
	}
	return res, nil
}

// CancelPayment cancels a payment that has not reached a final state.
func (u *PaymentUseCase) CancelPayment(ctx context.Context, externalID string) (entities.PaymentResult, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return entities.PaymentResult{}, paymenterr.NewValidationError(CodeInvalidExternalID, "external_id", "external id is required")
	}
	if err := u.ensureConfigured(); err != nil {
		return entities.PaymentResult{}, err
	}
	log.Printf("[payment][usecase] cancel start external_id=%s", externalID)

	p, err := u.ledger.FindByExternalID(ctx, externalID)
	if err != nil {
		return entities.PaymentResult{}, ledgerFailure("failed to load payment", err)
	}
	if p.ID == "" {
		log.Printf("[payment][usecase] cancel of unknown payment external_id=%s", externalID)
		return entities.PaymentResult{}, paymenterr.NewValidationError(CodePaymentNotFound, "external_id", "payment not found")
	}
	if p.Status.IsFinal() {
		log.Printf("[payment][usecase] cancel rejected id=%s status=%s", p.ID, p.Status)
		return entities.PaymentResult{}, finalizedError(p.Status)
	}

	gres, err := u.callGateway(ctx, "cancel", func(ctx context.Context, _ int) (interfaces.GatewayResult, error) {
		return u.gateway.Cancel(ctx, p.ExternalID)
	})
	wctx, cancel := settleContext(ctx)
	defer cancel()
	if err != nil {
		if !paymenterr.IsGatewayNotFound(err) || !neverReachedGateway(p) {
			log.Printf("[payment][usecase] gateway cancel failed id=%s err=%v", p.ID, err)
			return entities.PaymentResult{}, gatewayFailure("payment cancellation failed", err)
		}
		log.Printf("[payment][usecase] processor never saw payment; cancelling locally id=%s", p.ID)
		gres = interfaces.GatewayResult{StatusCode: "cancelled"}
	}

	updated, err := u.applyGatewayResult(wctx, p, gres)
	if errors.Is(err, errPaymentFinalized) {
		return entities.PaymentResult{}, finalizedError(updated.Status)
	}
	if err != nil {
		return entities.PaymentResult{}, ledgerFailure("failed to update payment", err)
	}
	u.cacheResult(wctx, updated)

	switch {
	case updated.Status == entities.PaymentStatusCancelled:
		log.Printf("[payment][usecase] cancel done id=%s external_id=%s", updated.ID, updated.ExternalID)
		return updated.ToResult(), nil
	case updated.Status.IsFinal():
		log.Printf("[payment][usecase] processor settled payment instead of cancelling id=%s status=%s", updated.ID, updated.Status)
		return entities.PaymentResult{}, finalizedError(updated.Status)
	default:
		log.Printf("[payment][usecase] cancel not confirmed id=%s remote_status=%s", updated.ID, gres.StatusCode)
		return entities.PaymentResult{}, paymenterr.NewProcessingError(CodeCancelNotConfirmed, fmt.Sprintf("processor reported %s after cancel", gres.StatusCode), nil)
	}
}

// GetUserPayments lists a user's payments, newest first.
func (u *PaymentUseCase) GetUserPayments(ctx context.Context, userID string) ([]entities.Payment, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, paymenterr.NewValidationError(validation.CodeInvalidUserID, "user_id", "user_id is required")
	}
	if u.ledger == nil {
		return nil, notConfigured()
	}
	items, err := u.ledger.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ledgerFailure("failed to list payments", err)
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func (u *PaymentUseCase) GetPaymentByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, paymenterr.NewValidationError(CodeInvalidPaymentID, "id", "id is required")
	}
	if u.ledger == nil {
		return entities.Payment{}, notConfigured()
	}
	p, err := u.ledger.FindByID(ctx, id)
	if err != nil {
		return entities.Payment{}, ledgerFailure("failed to load payment", err)
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) GetPaymentByExternalID(ctx context.Context, externalID string) (entities.Payment, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return entities.Payment{}, paymenterr.NewValidationError(CodeInvalidExternalID, "external_id", "external id is required")
	}
	if u.ledger == nil {
		return entities.Payment{}, notConfigured()
	}
	p, err := u.ledger.FindByExternalID(ctx, externalID)
	if err != nil {
		return entities.Payment{}, ledgerFailure("failed to load payment", err)
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

// callGateway runs one processor operation under the retry policy. Each
// attempt gets its own timeout and ignores caller cancellation so a charge is
// never abandoned halfway.
func (u *PaymentUseCase) callGateway(ctx context.Context, op string, fn func(ctx context.Context, attempt int) (interfaces.GatewayResult, error)) (interfaces.GatewayResult, error) {
	base := context.WithoutCancel(ctx)
	var res interfaces.GatewayResult
	err := u.retry.Do(op, func(attempt int) error {
		callCtx, cancel := context.WithTimeout(base, u.gatewayTimeout)
		defer cancel()
		r, err := fn(callCtx, attempt)
		if err != nil {
			return err
		}
		res = r
		return nil
	})
	return res, err
}

func (u *PaymentUseCase) applyGatewayResult(ctx context.Context, p entities.Payment, gres interfaces.GatewayResult) (entities.Payment, error) {
	return u.update(ctx, p, func(cur *entities.Payment) error {
		if cur.Status.IsFinal() {
			return errPaymentFinalized
		}
		next := MapGatewayStatus(gres.StatusCode)
		if !cur.Status.CanTransitionTo(next) {
			// processing -> pending
			next = cur.Status
		}
		if gres.RemoteID != "" {
			cur.ExternalID = gres.RemoteID
		}
		if len(gres.Metadata) > 0 {
			if cur.Metadata == nil {
				cur.Metadata = map[string]string{}
			}
			for k, v := range gres.Metadata {
				cur.Metadata[k] = v
			}
		}
		if next == entities.PaymentStatusRejected || next == entities.PaymentStatusError {
			cur.ErrorMessage = truncate(failureDetail(gres), maxErrorMessageLength)
		}
		return cur.Transition(next, u.now())
	})
}

// recordFailure moves the payment to ERROR. When that write fails the record is
// left PENDING for reconciliation.
func (u *PaymentUseCase) recordFailure(ctx context.Context, p entities.Payment, cause error) {
	_, err := u.update(ctx, p, func(cur *entities.Payment) error {
		if cur.Status.IsFinal() {
			return errPaymentFinalized
		}
		cur.ErrorMessage = truncate(cause.Error(), maxErrorMessageLength)
		return cur.Transition(entities.PaymentStatusError, u.now())
	})
	if err != nil {
		log.Printf("[payment][usecase] failed recording gateway failure id=%s status=%s err=%v", p.ID, p.Status, err)
	}
}

// update applies mutate and saves, re-reading and re-applying on version
// conflicts. On failure the last known state is returned with the error.
func (u *PaymentUseCase) update(ctx context.Context, p entities.Payment, mutate func(cur *entities.Payment) error) (entities.Payment, error) {
	current := p
	for attempt := 1; ; attempt++ {
		next := current
		next.Metadata = copyMetadata(current.Metadata)
		if err := mutate(&next); err != nil {
			return current, err
		}
		saved, err := u.ledger.Save(ctx, next)
		if err == nil {
			return saved, nil
		}
		if !errors.Is(err, interfaces.ErrLedgerVersionConflict) || attempt >= maxLedgerAttempts {
			return current, err
		}
		log.Printf("[payment][usecase] version conflict; reloading id=%s attempt=%d", current.ID, attempt)
		fresh, ferr := u.ledger.FindByID(ctx, current.ID)
		if ferr != nil {
			return current, ferr
		}
		if fresh.ID == "" {
			return current, ErrPaymentNotFound
		}
		current = fresh
	}
}

// settleContext is used for ledger writes that follow a processor call. They
// must land even when the caller has gone away.
func settleContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), ledgerWriteTimeout)
}

// neverReachedGateway reports whether p still carries the provisional uuid
// assigned before the first processor answer.
func neverReachedGateway(p entities.Payment) bool {
	if p.Status != entities.PaymentStatusPending {
		return false
	}
	_, err := uuid.Parse(p.ExternalID)
	return err == nil
}

func withDisplayFields(res entities.PaymentResult, gres interfaces.GatewayResult) entities.PaymentResult {
	res.PixQRCode = gres.PixQRCode
	res.PixCopyPaste = gres.PixCopyPaste
	res.BoletoURL = gres.BoletoURL
	res.BoletoBarcode = gres.BoletoBarcode
	return res
}

func (u *PaymentUseCase) cacheResult(ctx context.Context, p entities.Payment) {
	if u.cache == nil || !p.Status.IsFinal() {
		return
	}
	if err := u.cache.Set(ctx, p.ToResult()); err != nil {
		log.Printf("[payment][usecase] result cache write failed external_id=%s err=%v", p.ExternalID, err)
	}
}

func (u *PaymentUseCase) ensureConfigured() error {
	if u.ledger == nil || u.gateway == nil {
		log.Printf("[payment][usecase] ledger or gateway not configured")
		return notConfigured()
	}
	return nil
}

func chargeMetadata(req entities.PaymentRequest, reference string) map[string]string {
	meta := make(map[string]string, len(req.Metadata)+4)
	for k, v := range req.Metadata {
		meta[k] = v
	}
	meta["user_id"] = req.UserID
	meta["payment_method"] = string(req.PaymentMethod)
	meta["installments"] = strconv.Itoa(req.Installments)
	meta["external_reference"] = reference
	return meta
}

func copyMetadata(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func failureDetail(gres interfaces.GatewayResult) string {
	if gres.StatusDetail != "" {
		return gres.StatusDetail
	}
	return "gateway status: " + gres.StatusCode
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func finalizedError(status entities.PaymentStatus) error {
	return paymenterr.NewValidationError(CodePaymentFinalized, "status", fmt.Sprintf("payment is already %s", status))
}

func notConfigured() error {
	return paymenterr.NewProcessingError(paymenterr.CodeProcessing, "payment service not configured", nil)
}

func gatewayFailure(message string, err error) error {
	code := paymenterr.CodeGatewayFailure
	if paymenterr.IsTransient(err) {
		code = paymenterr.CodeGatewayUnavailable
	}
	return paymenterr.NewProcessingError(code, message, err)
}

func ledgerFailure(message string, err error) error {
	if errors.Is(err, interfaces.ErrLedgerVersionConflict) {
		return paymenterr.NewProcessingError(paymenterr.CodeConcurrentUpdate, message, err)
	}
	return paymenterr.NewProcessingError(paymenterr.CodeLedgerFailure, message, err)
}
