// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	sq "github.com/Masterminds/squirrel"

	"github.com/danielhkuo/talent-studio/auth"
	"github.com/danielhkuo/talent-studio/cliparse"
	"github.com/danielhkuo/talent-studio/db"
	"github.com/danielhkuo/talent-studio/middleware"
	"github.com/danielhkuo/talent-studio/models"
)

// WebhookMethods is the preflight contract of /payment-webhook
const WebhookMethods = "POST, OPTIONS"

// maxWebhookBody bounds the notification payload read for signature checks
const maxWebhookBody = 1 << 20

type WebhookHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewWebhookHandler(db *sql.DB, cfg cliparse.Config) *WebhookHandler {
	if cfg.WebhookSecret == "" {
		slog.Warn("payment webhook accepts unsigned notifications; set PAYMENT_WEBHOOK_SECRET to verify them")
	}
	return &WebhookHandler{db: db, cfg: cfg}
}

func (h *WebhookHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		middleware.MethodNotAllowed(w)
		return
	}
	h.HandleNotification(w, r)
}

// HandleNotification handles POST /payment-webhook.
// Events other than a successful payment are acknowledged with 200 and
// change nothing, so the gateway stops redelivering them.
func (h *WebhookHandler) HandleNotification(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	r.Body.Close()
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Failed to read body")
		return
	}

	if h.cfg.WebhookSecret != "" {
		if err := auth.VerifySignature(body, r.Header.Get(auth.SignatureHeader), h.cfg.WebhookSecret); err != nil {
			slog.Warn("rejected webhook notification",
				"remote", middleware.GetClientIP(r),
				"error", err,
			)
			middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
			return
		}
	}

	var note models.WebhookNotification
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&note); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	slog.Info("webhook notification received",
		"event", note.Event,
		"payment_id", note.Object.ID,
		"remote", middleware.GetClientIP(r),
	)

	if note.Event != models.EventPaymentSucceeded {
		middleware.JSONResponse(w, http.StatusOK, models.WebhookResponse{
			Status: "ignored",
			Event:  note.Event,
		})
		return
	}

	applicationID, err := metadataApplicationID(note.Object.Metadata)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing application_id in metadata")
		return
	}

	if note.Object.Status != models.PaymentSucceeded {
		middleware.JSONResponse(w, http.StatusOK, models.WebhookResponse{
			Status:        "processed",
			PaymentStatus: note.Object.Status,
		})
		return
	}

	update := db.Builder.Update("applications").
		Set("status", models.StatusPaid).
		Set("payment_status", note.Object.Status).
		Where(sq.Eq{"id": applicationID})
	if _, err := db.Exec(r.Context(), h.db, update); err != nil {
		serverError(w, "failed to mark application paid", err)
		return
	}

	q := db.Builder.Select(applicationSelect(h.cfg.SoftDelete)).
		From("applications").
		Where(sq.Eq{"id": applicationID})

	var application *models.Application
	a, err := scanApplication(db.QueryRow(r.Context(), h.db, q))
	switch {
	case err == nil:
		application = &a
	case errors.Is(err, sql.ErrNoRows):
		// Unknown application: nothing was updated
	default:
		serverError(w, "failed to load paid application", err)
		return
	}

	slog.Info("application paid", "application_id", applicationID, "payment_id", note.Object.ID)

	middleware.JSONResponse(w, http.StatusOK, models.WebhookResponse{
		Status:        "success",
		ApplicationID: applicationID,
		PaymentStatus: note.Object.Status,
		Application:   application,
	})
}

// metadataApplicationID accepts the id as the string the gateway echoes
// back or as a JSON number
func metadataApplicationID(metadata map[string]any) (int64, error) {
	switch v := metadata["application_id"].(type) {
	case string:
		return parseID(v)
	case float64:
		if v <= 0 || v != float64(int64(v)) {
			return 0, errInvalidID
		}
		return int64(v), nil
	default:
		return 0, errMissingID
	}
}

