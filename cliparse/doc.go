// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-p             Server port (default: 3318)
	-d             Database URL (required)
	--db-max-open  Pool size (default: 10)
	--soft-delete  Applications soft-delete contract (default: true)
	--s3-endpoint  Object storage host (default: bucket.poehali.dev)
	--s3-bucket    Bucket name (default: files)
	--cdn-base     Public URL prefix for uploaded files
	--gateway-url  Payment gateway API root
	--payment-provider  yookassa (default) or stub
	--return-url   Where checkout redirects after payment

# Environment Variables

Flags fall back to environment variables:

	PORT                     → -p
	DATABASE_URL             → -d
	DB_MAX_OPEN_CONNS        → --db-max-open
	APPLICATIONS_SOFT_DELETE → --soft-delete
	S3_ENDPOINT              → --s3-endpoint
	S3_BUCKET                → --s3-bucket
	CDN_BASE_URL             → --cdn-base
	YOOKASSA_API_URL         → --gateway-url
	PAYMENT_PROVIDER         → --payment-provider
	PAYMENT_RETURN_URL       → --return-url

Secrets are read from the environment only:

	AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY
	YOOKASSA_SHOP_ID, YOOKASSA_SECRET_KEY
	PAYMENT_WEBHOOK_SECRET

Missing secrets are not a startup error. The handlers that need them answer
500 until they are configured.
*/
package cliparse
