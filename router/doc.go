// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Talent Studio API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, store, provider)

# Endpoints

Each path is served by one handler that branches on method. OPTIONS answers
the preflight with that endpoint's method list.

	GET /health

	/contests            GET, POST, PUT, DELETE
	/applications        GET, PUT, DELETE
	/results             GET, POST, PUT, DELETE
	/submit-application  POST
	/payment             POST
	/payment-webhook     POST
	/upload-file         POST
	/public-results      GET
	/gallery-works       GET
	/reviews             GET, POST, PUT, DELETE

# Endpoint Wrapping

Endpoint applies logging and CORS to a single handler. The funcevent
package uses the same wrapping when a handler is deployed on its own.
*/
package router
