// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"path"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrMissingSignature = errors.New("missing webhook signature")
	ErrInvalidSignature = errors.New("invalid webhook signature")
)

// SignatureHeader carries the hex HMAC-SHA256 of the raw webhook body
const SignatureHeader = "X-Webhook-Signature"

// GenerateIdempotenceKey returns a fresh key for every gateway call.
// It is not derived from the request, so client retries are not deduplicated.
func GenerateIdempotenceKey() string {
	return uuid.NewString()
}

// GenerateObjectKey creates a collision-free storage key under folder,
// keeping the extension of fileName ("pdf" when it has none)
func GenerateObjectKey(folder, fileName string) string {
	ext := "pdf"
	if i := strings.LastIndex(fileName, "."); i >= 0 && i < len(fileName)-1 {
		ext = fileName[i+1:]
	}
	return path.Join(folder, uuid.NewString()+"."+ext)
}

// SignPayload computes the signature a trusted sender attaches to body
func SignPayload(body []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

// VerifySignature checks signature against the HMAC of body
func VerifySignature(body []byte, signature, secret string) error {
	if signature == "" {
		return ErrMissingSignature
	}
	expected := SignPayload(body, secret)
	if !hmac.Equal([]byte(strings.ToLower(signature)), []byte(expected)) {
		return ErrInvalidSignature
	}
	return nil
}
