// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Talent Studio API.

# Handler Types

Each handler is a struct implementing http.Handler that branches on method:

  - ContestHandler: contest catalog CRUD
  - SubmitHandler: application intake with work upload
  - ApplicationHandler: admin list, edit, soft delete and restore
  - PaymentHandler: pending application plus hosted checkout
  - WebhookHandler: payment reconciliation
  - ResultHandler: judged results CRUD
  - PublicHandler: consented results and gallery (GET only)
  - ReviewHandler: testimonials and moderation
  - UploadHandler: generic base64 upload

Handlers are created via constructor functions that accept *sql.DB and Config:

	contestHandler := handlers.NewContestHandler(db, cfg)

Handlers that touch object storage or the gateway also take a storage.Store
or payments.Provider. No handler calls another.

# Payment Lifecycle

	POST /payment          → application inserted as pending, checkout created
	POST /payment-webhook  → payment.succeeded marks it paid

Any other event is acknowledged with 200 and changes nothing. If the gateway
refuses the checkout, the pending row is marked failed.

# Soft Delete

With Config.SoftDelete set, DELETE /applications?id= stamps deleted_at and
?restore=true clears it. GET /applications?deleted=true lists the deleted view.

# Errors

Failures answer {"error": "..."}: 400 for validation, 404 for a missing
result, 405 for other methods, 409 for a second result on one application
and 500 with the raw error text for everything else.
*/
package handlers
