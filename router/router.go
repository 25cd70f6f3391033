// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/talent-studio/cliparse"
	"github.com/danielhkuo/talent-studio/handlers"
	"github.com/danielhkuo/talent-studio/middleware"
	"github.com/danielhkuo/talent-studio/payments"
	"github.com/danielhkuo/talent-studio/storage"
)

// Endpoint wraps a handler with logging and the preflight contract for methods
func Endpoint(methods string, h http.Handler) http.HandlerFunc {
	return middleware.WithLogging(middleware.CORS(methods, "", h.ServeHTTP))
}

func NewRouter(db *sql.DB, cfg cliparse.Config, store storage.Store, provider payments.Provider) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	contestHandler := handlers.NewContestHandler(db, cfg)
	submitHandler := handlers.NewSubmitHandler(db, cfg, store)
	applicationHandler := handlers.NewApplicationHandler(db, cfg)
	paymentHandler := handlers.NewPaymentHandler(db, cfg, provider)
	webhookHandler := handlers.NewWebhookHandler(db, cfg)
	resultHandler := handlers.NewResultHandler(db, cfg)
	publicHandler := handlers.NewPublicHandler(db, cfg)
	reviewHandler := handlers.NewReviewHandler(db, cfg)
	uploadHandler := handlers.NewUploadHandler(cfg, store)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Catalog and admin management
	mux.Handle("/contests", Endpoint(handlers.ContestMethods, contestHandler))
	mux.Handle("/applications", Endpoint(handlers.ApplicationMethods, applicationHandler))
	mux.Handle("/results", Endpoint(handlers.ResultMethods, resultHandler))

	// Contestant intake and payments
	mux.Handle("/submit-application", Endpoint(handlers.SubmitMethods, submitHandler))
	mux.Handle("/payment", Endpoint(handlers.PaymentMethods, paymentHandler))
	mux.Handle("/payment-webhook", Endpoint(handlers.WebhookMethods, webhookHandler))
	mux.Handle("/upload-file", Endpoint(handlers.UploadMethods, uploadHandler))

	// Public views
	mux.Handle("/public-results", Endpoint(handlers.PublicMethods, http.HandlerFunc(publicHandler.PublicResults)))
	mux.Handle("/gallery-works", Endpoint(handlers.PublicMethods, http.HandlerFunc(publicHandler.GalleryWorks)))
	mux.Handle("/reviews", Endpoint(handlers.ReviewMethods, reviewHandler))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("talent-studio API v1"))
	})

	return mux
}
