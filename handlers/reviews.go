// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	sq "github.com/Masterminds/squirrel"

	"github.com/danielhkuo/talent-studio/cliparse"
	"github.com/danielhkuo/talent-studio/db"
	"github.com/danielhkuo/talent-studio/middleware"
	"github.com/danielhkuo/talent-studio/models"
	"github.com/danielhkuo/talent-studio/validate"
)

// ReviewMethods is the preflight contract of /reviews
const ReviewMethods = "GET, POST, PUT, DELETE, OPTIONS"

type ReviewHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewReviewHandler(db *sql.DB, cfg cliparse.Config) *ReviewHandler {
	return &ReviewHandler{db: db, cfg: cfg}
}

func (h *ReviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.ListReviews(w, r)
	case http.MethodPost:
		h.CreateReview(w, r)
	case http.MethodPut:
		h.ModerateReview(w, r)
	case http.MethodDelete:
		h.DeleteReview(w, r)
	default:
		middleware.MethodNotAllowed(w)
	}
}

// ListReviews handles GET /reviews?status=. Only approved reviews are
// listed unless status names another state or "all".
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		status = models.ReviewApproved
	}

	q := db.Builder.
		Select("id, author_name, author_role, rating, text, status, created_at, updated_at, published_at").
		From("reviews").
		OrderBy("created_at DESC")
	if status != models.ReviewAll {
		q = q.Where(sq.Eq{"status": status})
	}

	rows, err := db.Query(r.Context(), h.db, q)
	if err != nil {
		serverError(w, "failed to query reviews", err)
		return
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var rv models.Review
		if err := rows.Scan(&rv.ID, &rv.AuthorName, &rv.AuthorRole, &rv.Rating, &rv.Text, &rv.Status,
			&rv.CreatedAt, &rv.UpdatedAt, &rv.PublishedAt); err != nil {
			serverError(w, "failed to scan review", err)
			return
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		serverError(w, "failed to iterate reviews", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, reviews)
}

// CreateReview handles POST /reviews. New reviews always wait for moderation,
// whatever status the client sends.
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req models.CreateReviewRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := validate.Struct(r.Context(), req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	q := db.Builder.Insert("reviews").
		Columns("author_name", "author_role", "rating", "text", "status").
		Values(req.AuthorName, req.AuthorRole, req.Rating, req.Text, models.ReviewPending).
		Suffix("RETURNING id")

	var id int64
	if err := db.QueryRow(r.Context(), h.db, q).Scan(&id); err != nil {
		serverError(w, "failed to insert review", err)
		return
	}

	slog.Info("review submitted", "review_id", id)

	middleware.JSONResponse(w, http.StatusCreated, models.IDResponse{
		ID:      id,
		Message: "Review sent for moderation",
	})
}

// ModerateReview handles PUT /reviews. Approval stamps published_at;
// later transitions leave the stamp in place.
func (h *ReviewHandler) ModerateReview(w http.ResponseWriter, r *http.Request) {
	var req models.ModerateReviewRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := validate.Struct(r.Context(), req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	q := db.Builder.Update("reviews").
		Set("status", req.Status).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": req.ID})
	if req.Status == models.ReviewApproved {
		q = q.Set("published_at", sq.Expr("CURRENT_TIMESTAMP"))
	}

	if _, err := db.Exec(r.Context(), h.db, q); err != nil {
		serverError(w, "failed to moderate review", err)
		return
	}

	slog.Info("review moderated", "review_id", req.ID, "status", req.Status)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Review status updated"})
}

// DeleteReview handles DELETE /reviews?id=
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.URL.Query().Get("id"))
	if err != nil {
		badID(w, err)
		return
	}

	q := db.Builder.Delete("reviews").Where(sq.Eq{"id": id})
	if _, err := db.Exec(r.Context(), h.db, q); err != nil {
		serverError(w, "failed to delete review", err)
		return
	}

	slog.Info("review deleted", "review_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Review deleted"})
}
