// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package payments

import (
	"fmt"
	"net/http"
	"time"

	"github.com/danielhkuo/talent-studio/cliparse"
)

// NewProvider selects the gateway named by cfg.PaymentProvider
func NewProvider(cfg cliparse.Config) (Provider, error) {
	switch cfg.PaymentProvider {
	case "", "yookassa":
		client := &http.Client{Timeout: 30 * time.Second}
		return NewYooKassa(cfg.GatewayURL, cfg.ShopID, cfg.GatewaySecret, client), nil
	case "stub":
		return NewStub(cfg.ReturnURL), nil
	default:
		return nil, fmt.Errorf("unknown payment provider: %s", cfg.PaymentProvider)
	}
}
