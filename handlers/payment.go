// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	sq "github.com/Masterminds/squirrel"

	"github.com/danielhkuo/talent-studio/auth"
	"github.com/danielhkuo/talent-studio/cliparse"
	"github.com/danielhkuo/talent-studio/db"
	"github.com/danielhkuo/talent-studio/middleware"
	"github.com/danielhkuo/talent-studio/models"
	"github.com/danielhkuo/talent-studio/payments"
	"github.com/danielhkuo/talent-studio/validate"
)

// PaymentMethods is the preflight contract of /payment
const PaymentMethods = "POST, OPTIONS"

type PaymentHandler struct {
	db       *sql.DB
	cfg      cliparse.Config
	provider payments.Provider
}

func NewPaymentHandler(db *sql.DB, cfg cliparse.Config, provider payments.Provider) *PaymentHandler {
	return &PaymentHandler{db: db, cfg: cfg, provider: provider}
}

func (h *PaymentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		middleware.MethodNotAllowed(w)
		return
	}
	h.CreatePayment(w, r)
}

// CreatePayment handles POST /payment.
// A pending application is inserted first, then exactly one checkout session
// is requested. If the gateway refuses, the application is marked failed.
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePaymentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := validate.Struct(r.Context(), req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if !h.provider.Configured() {
		slog.Error("payment gateway credentials missing", "provider", h.provider.Name())
		middleware.ErrorResponse(w, http.StatusInternalServerError, payments.ErrNotConfigured.Error())
		return
	}

	app := req.ApplicationData
	q := db.Builder.Insert("applications").
		Columns("full_name", "age", "teacher", "institution", "work_title", "email",
			"contest_id", "contest_name", "work_file_url", "gallery_consent", "status").
		Values(app.FullName, app.Age, app.Teacher, app.Institution, app.WorkTitle, app.Email,
			app.ContestID, app.ContestName, app.WorkFileURL, app.GalleryConsent, models.StatusPending).
		Suffix("RETURNING id")

	var applicationID int64
	if err := db.QueryRow(r.Context(), h.db, q).Scan(&applicationID); err != nil {
		serverError(w, "failed to insert pending application", err)
		return
	}

	payment, err := h.provider.CreatePayment(r.Context(), payments.CreateRequest{
		Amount:         req.Amount,
		Description:    req.Description,
		ReturnURL:      h.cfg.ReturnURL,
		IdempotenceKey: auth.GenerateIdempotenceKey(),
		Metadata: map[string]string{
			"application_id": strconv.FormatInt(applicationID, 10),
			"contest_name":   req.ContestName,
			"email":          req.Email,
		},
	})
	if err != nil {
		h.markFailed(r.Context(), applicationID)

		var gatewayErr *payments.GatewayError
		if errors.As(err, &gatewayErr) {
			slog.Error("payment gateway rejected request",
				"application_id", applicationID,
				"status", gatewayErr.StatusCode,
			)
			middleware.ErrorResponse(w, gatewayErr.StatusCode, gatewayErr.Body)
			return
		}
		serverError(w, "failed to create payment", err)
		return
	}

	update := db.Builder.Update("applications").
		Set("payment_id", payment.ID).
		Set("payment_status", payment.Status).
		Where(sq.Eq{"id": applicationID})
	if _, err := db.Exec(r.Context(), h.db, update); err != nil {
		// The checkout exists; the webhook still reconciles by application_id
		slog.Error("failed to store payment id", "application_id", applicationID, "error", err)
	}

	slog.Info("payment created",
		"application_id", applicationID,
		"payment_id", payment.ID,
		"provider", h.provider.Name(),
	)

	middleware.JSONResponse(w, http.StatusOK, models.CreatePaymentResponse{
		PaymentID:       payment.ID,
		ConfirmationURL: payment.ConfirmationURL,
		Status:          payment.Status,
		ApplicationID:   applicationID,
	})
}

// markFailed is the compensating update for a pending row whose checkout was never created
func (h *PaymentHandler) markFailed(ctx context.Context, applicationID int64) {
	q := db.Builder.Update("applications").
		Set("status", models.StatusFailed).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": applicationID})
	if _, err := db.Exec(ctx, h.db, q); err != nil {
		slog.Error("failed to mark application failed", "application_id", applicationID, "error", err)
	}
}
