package pkg

import "fmt"

// AppError is an error ready to be rendered by an HTTP handler.
type AppError struct {
	Code       string
	Message    string
	Field      string
	Err        error
	HTTPStatus int
}

// HTTPError is the JSON body returned to clients. The wrapped cause is never
// exposed.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: status}
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

func (e *AppError) WithField(field string) *AppError {
	e.Field = field
	return e
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Field: e.Field}
}
