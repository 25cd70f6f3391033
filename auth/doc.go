// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides key generation and webhook signature utilities.

There is no user authentication in this service. The package covers the
values the handlers must generate or verify.

# Idempotency Keys

	key := auth.GenerateIdempotenceKey()

A fresh UUID per gateway call. Because it is not derived from the request,
a client that retries Payment Initiation creates a new checkout session.

# Object Keys

	key := auth.GenerateObjectKey("contests", "rules.pdf")  // contests/<uuid>.pdf

Keys keep the original extension, defaulting to "pdf".

# Webhook Signatures

When PAYMENT_WEBHOOK_SECRET is configured, the webhook requires the
X-Webhook-Signature header to carry the hex HMAC-SHA256 of the raw body:

	sig := auth.SignPayload(body, secret)
	err := auth.VerifySignature(body, r.Header.Get(auth.SignatureHeader), secret)

VerifySignature returns ErrMissingSignature or ErrInvalidSignature.
Comparison is constant time.
*/
package auth
