package paymenterr

import (
	"errors"
	"fmt"
)

// Default error codes.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeProcessing         = "PROCESSING_ERROR"
	CodeGatewayUnavailable = "GATEWAY_UNAVAILABLE"
	CodeGatewayFailure     = "GATEWAY_FAILURE"
	CodeLedgerFailure      = "LEDGER_FAILURE"
	CodeConcurrentUpdate   = "CONCURRENT_UPDATE"
)

// ExternalCodeNotFound marks gateway errors for payments the processor does not know.
const ExternalCodeNotFound = "not_found"

// ValidationError is a caller-input problem. It is never retried and always
// surfaces as a client fault.
type ValidationError struct {
	Code    string
	Field   string
	Message string
}

func NewValidationError(code, field, message string) *ValidationError {
	if code == "" {
		code = CodeValidation
	}
	return &ValidationError{Code: code, Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed [%s] field=%s: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed [%s]: %s", e.Code, e.Message)
}

// ProcessingError is a processor, gateway or infrastructure problem. Cause keeps
// the original error for diagnostics.
type ProcessingError struct {
	Code         string
	ExternalCode string
	Message      string
	Cause        error
}

func NewProcessingError(code, message string, cause error) *ProcessingError {
	if code == "" {
		code = CodeProcessing
	}
	pe := &ProcessingError{Code: code, Message: message, Cause: cause}
	var ge *GatewayError
	if errors.As(cause, &ge) {
		pe.ExternalCode = ge.ExternalCode
	}
	return pe
}

func (e *ProcessingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("processing failed [%s]: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("processing failed [%s]: %s", e.Code, e.Message)
}

func (e *ProcessingError) Unwrap() error { return e.Cause }

// GatewayError is returned by processor gateways. Transient failures (network,
// timeouts, 429/5xx) may be retried; permanent ones may not.
type GatewayError struct {
	Transient    bool
	ExternalCode string
	Err          error
}

func NewTransientGatewayError(externalCode string, err error) *GatewayError {
	return &GatewayError{Transient: true, ExternalCode: externalCode, Err: err}
}

func NewPermanentGatewayError(externalCode string, err error) *GatewayError {
	return &GatewayError{Transient: false, ExternalCode: externalCode, Err: err}
}

func (e *GatewayError) Error() string {
	kind := "permanent"
	if e.Transient {
		kind = "transient"
	}
	if e.ExternalCode != "" {
		return fmt.Sprintf("%s gateway error (code=%s): %v", kind, e.ExternalCode, e.Err)
	}
	return fmt.Sprintf("%s gateway error: %v", kind, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// IsTransient reports whether err carries a transient gateway failure.
func IsTransient(err error) bool {
	var ge *GatewayError
	return errors.As(err, &ge) && ge.Transient
}

// IsGatewayNotFound reports whether the processor answered that the payment does not exist.
func IsGatewayNotFound(err error) bool {
	var ge *GatewayError
	return errors.As(err, &ge) && ge.ExternalCode == ExternalCodeNotFound
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsProcessing(err error) bool {
	var pe *ProcessingError
	return errors.As(err, &pe)
}
