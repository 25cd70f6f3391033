// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package payments

import (
	"context"
	"errors"
	"fmt"
)

var ErrNotConfigured = errors.New("payment gateway credentials not configured")

// CreateRequest describes one hosted checkout session
type CreateRequest struct {
	Amount         float64
	Currency       string
	Description    string
	ReturnURL      string
	IdempotenceKey string
	Metadata       map[string]string
}

// Payment is the gateway's view of a created payment
type Payment struct {
	ID              string
	Status          string
	ConfirmationURL string
}

// GatewayError is returned when the gateway answers with a non-2xx status.
// Body is the raw response, surfaced to the caller unchanged.
type GatewayError struct {
	StatusCode int
	Body       string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway returned %d: %s", e.StatusCode, e.Body)
}

// Provider creates checkout sessions
type Provider interface {
	Name() string
	// Configured reports whether the credentials needed to call the gateway are present
	Configured() bool
	CreatePayment(ctx context.Context, req CreateRequest) (*Payment, error)
}
