// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Talent Studio API server.

Talent Studio backs a children's contest site: contest listings, applicant
submissions with uploaded work, entry-fee payments, judged results, a public
gallery and moderated reviews.

# Starting the Server

The server reads a .env file if present, then CLI flags and environment:

	DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 3318 -d "postgres://..." --soft-delete=false

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - APPLICATIONS_SOFT_DELETE (--soft-delete): deleted_at contract (default: true)
  - AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY: object storage; uploads fail without them
  - YOOKASSA_SHOP_ID, YOOKASSA_SECRET_KEY: payment gateway; /payment fails without them
  - PAYMENT_WEBHOOK_SECRET: verify webhook signatures when set

# Architecture

One handler per endpoint, all sharing a single connection pool:

  - handlers: HTTP request handlers (contests, applications, payments, results, reviews, uploads)
  - router: Route definitions and per-endpoint CORS
  - funcevent: Adapter for running any handler as a cloud function
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - payments: Hosted checkout gateway client
  - storage: S3-compatible object storage
  - validate: Struct validation for request bodies
  - auth: Webhook signatures and random keys
  - db: Pool, schema and query helpers
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
