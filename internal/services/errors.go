package services

import "net/http"

// RequestError is a policy rejection carrying the HTTP status the transport
// layer should answer with. Lookups that miss return
// repositories.ErrNotFound instead.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

func Forbidden() error {
	return &RequestError{Status: http.StatusForbidden, Message: "Forbidden"}
}

func PaymentRequired() error {
	return &RequestError{Status: http.StatusPaymentRequired, Message: "payment required"}
}

func Unauthorized() error {
	return &RequestError{Status: http.StatusUnauthorized, Message: "Unauthorized"}
}
