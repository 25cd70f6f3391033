// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// YooKassa talks to the YooKassa v3 payments API
type YooKassa struct {
	baseURL string
	shopID  string
	secret  string
	client  *http.Client
}

func NewYooKassa(baseURL, shopID, secret string, client *http.Client) *YooKassa {
	if client == nil {
		client = http.DefaultClient
	}
	return &YooKassa{
		baseURL: strings.TrimRight(baseURL, "/"),
		shopID:  shopID,
		secret:  secret,
		client:  client,
	}
}

func (y *YooKassa) Name() string { return "yookassa" }

// Configured reports whether both credentials are present
func (y *YooKassa) Configured() bool {
	return y.shopID != "" && y.secret != ""
}

type amount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type confirmation struct {
	Type            string `json:"type"`
	ReturnURL       string `json:"return_url,omitempty"`
	ConfirmationURL string `json:"confirmation_url,omitempty"`
}

type paymentRequest struct {
	Amount       amount            `json:"amount"`
	Confirmation confirmation      `json:"confirmation"`
	Capture      bool              `json:"capture"`
	Description  string            `json:"description"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

type paymentResponse struct {
	ID           string       `json:"id"`
	Status       string       `json:"status"`
	Confirmation confirmation `json:"confirmation"`
}

// FormatAmount renders a currency value with exactly two decimals
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// CreatePayment requests a redirect checkout with immediate capture
func (y *YooKassa) CreatePayment(ctx context.Context, req CreateRequest) (*Payment, error) {
	if !y.Configured() {
		return nil, ErrNotConfigured
	}

	currency := req.Currency
	if currency == "" {
		currency = "RUB"
	}

	body, err := json.Marshal(paymentRequest{
		Amount:       amount{Value: FormatAmount(req.Amount), Currency: currency},
		Confirmation: confirmation{Type: "redirect", ReturnURL: req.ReturnURL},
		Capture:      true,
		Description:  req.Description,
		Metadata:     req.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode payment request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, y.baseURL+"/payments", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build payment request: %w", err)
	}
	httpReq.SetBasicAuth(y.shopID, y.secret)
	httpReq.Header.Set("Idempotence-Key", req.IdempotenceKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := y.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("payment gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gateway response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, &GatewayError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var pr paymentResponse
	if err := json.Unmarshal(raw, &pr); err != nil {
		return nil, fmt.Errorf("failed to decode gateway response: %w", err)
	}

	return &Payment{
		ID:              pr.ID,
		Status:          pr.Status,
		ConfirmationURL: pr.Confirmation.ConfirmationURL,
	}, nil
}
