// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package payments creates hosted checkout sessions with an external gateway.

# Providers

	provider, err := payments.NewProvider(cfg)

  - yookassa: YooKassa v3 API, Basic auth with shop id and secret key
  - stub: local development, every payment redirects to the return URL

# Creating a Payment

	payment, err := provider.CreatePayment(ctx, payments.CreateRequest{
		Amount:         100,
		Description:    "Entry fee",
		ReturnURL:      cfg.ReturnURL,
		IdempotenceKey: auth.GenerateIdempotenceKey(),
		Metadata:       map[string]string{"application_id": "42"},
	})

Amounts are sent with two decimals in RUB, capture is immediate and the
confirmation type is redirect. Only 200 and 201 count as success; any other
status yields a *GatewayError holding the status code and raw body.

No retries are attempted.
*/
package payments
