package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNoActiveOrder   = errors.New("no active order")
	ErrNoActivePayment = errors.New("no active payment")
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// GatewayError is a refusal reported by the payment gateway: a non-200
// response or an ok=false envelope. Reason is safe to show to the user.
type GatewayError struct {
	Reason string
	Err    error
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gateway error: %s: %v", e.Reason, e.Err)
	}
	return "gateway error: " + e.Reason
}

func (e *GatewayError) Unwrap() error { return e.Err }

// TransportError is a failure to obtain a readable answer from the gateway.
type TransportError struct {
	Detail string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gateway transport error: %s: %v", e.Detail, e.Err)
	}
	return "gateway transport error: " + e.Detail
}

func (e *TransportError) Unwrap() error { return e.Err }
