// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package payments

import (
	"context"
	"net/url"
	"sync"

	"github.com/google/uuid"
)

// Stub provider for local development:
// every payment succeeds and checkout redirects straight to the return URL.
type Stub struct {
	returnURL string

	mu       sync.Mutex
	requests []CreateRequest
}

func NewStub(returnURL string) *Stub {
	return &Stub{returnURL: returnURL}
}

func (s *Stub) Name() string { return "stub" }

func (s *Stub) Configured() bool { return true }

func (s *Stub) CreatePayment(ctx context.Context, req CreateRequest) (*Payment, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	id := uuid.NewString()
	target := req.ReturnURL
	if target == "" {
		target = s.returnURL
	}
	u, err := url.Parse(target)
	if err == nil {
		q := u.Query()
		q.Set("payment_id", id)
		u.RawQuery = q.Encode()
		target = u.String()
	}

	return &Payment{ID: id, Status: "pending", ConfirmationURL: target}, nil
}

// Requests returns every request seen so far
func (s *Stub) Requests() []CreateRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]CreateRequest, len(s.requests))
	copy(out, s.requests)
	return out
}
