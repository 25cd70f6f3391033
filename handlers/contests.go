// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/danielhkuo/talent-studio/cliparse"
	"github.com/danielhkuo/talent-studio/db"
	"github.com/danielhkuo/talent-studio/middleware"
	"github.com/danielhkuo/talent-studio/models"
)

// ContestMethods is the preflight contract of /contests
const ContestMethods = "GET, POST, PUT, DELETE, OPTIONS"

type ContestHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewContestHandler(db *sql.DB, cfg cliparse.Config) *ContestHandler {
	return &ContestHandler{db: db, cfg: cfg}
}

func (h *ContestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.ListContests(w, r)
	case http.MethodPost:
		h.CreateContest(w, r)
	case http.MethodPut:
		h.UpdateContest(w, r)
	case http.MethodDelete:
		h.DeleteContest(w, r)
	default:
		middleware.MethodNotAllowed(w)
	}
}

// ListContests handles GET /contests?category_id=
func (h *ContestHandler) ListContests(w http.ResponseWriter, r *http.Request) {
	q := db.Builder.
		Select("id, title, description, category_id, deadline, price, status, rules_file_url, diploma_sample_url, image_url, participants_count, is_popular").
		From("contests").
		OrderBy("deadline ASC")

	if categoryID := r.URL.Query().Get("category_id"); categoryID != "" {
		q = q.Where(sq.Eq{"category_id": categoryID})
	}

	rows, err := db.Query(r.Context(), h.db, q)
	if err != nil {
		serverError(w, "failed to query contests", err)
		return
	}
	defer rows.Close()

	contests := []models.Contest{}
	for rows.Next() {
		var c models.Contest
		var deadline *time.Time
		if err := rows.Scan(
			&c.ID, &c.Title, &c.Description, &c.CategoryID, &deadline, &c.Price, &c.Status,
			&c.RulesLink, &c.DiplomaImage, &c.Image, &c.Participants, &c.IsPopular,
		); err != nil {
			serverError(w, "failed to scan contest", err)
			return
		}
		if deadline != nil {
			formatted := deadline.Format(models.DeadlineLayout)
			c.Deadline = &formatted
		}
		contests = append(contests, c)
	}
	if err := rows.Err(); err != nil {
		serverError(w, "failed to iterate contests", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, contests)
}

// CreateContest handles POST /contests
func (h *ContestHandler) CreateContest(w http.ResponseWriter, r *http.Request) {
	var req models.ContestRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Create defaults
	price := models.DefaultContestPrice
	if req.Price != nil {
		price = *req.Price
	}
	status := models.DefaultContestStatus
	if req.Status != nil {
		status = *req.Status
	}
	isPopular := req.IsPopular != nil && *req.IsPopular

	q := db.Builder.Insert("contests").
		Columns("title", "description", "category_id", "deadline", "price", "status",
			"rules_file_url", "diploma_sample_url", "image_url", "is_popular").
		Values(req.Title, req.Description, req.CategoryID, req.Deadline, price, status,
			req.RulesLink, req.DiplomaImage, req.Image, isPopular).
		Suffix("RETURNING id")

	var id int64
	if err := db.QueryRow(r.Context(), h.db, q).Scan(&id); err != nil {
		serverError(w, "failed to insert contest", err)
		return
	}

	slog.Info("contest created", "contest_id", id, "title", req.Title)

	middleware.JSONResponse(w, http.StatusCreated, models.IDResponse{
		ID:      id,
		Message: "Contest created",
	})
}

// UpdateContest handles PUT /contests. Every field is replaced, omitted
// fields become NULL and isPopular becomes false.
func (h *ContestHandler) UpdateContest(w http.ResponseWriter, r *http.Request) {
	var req models.ContestRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.ID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing id")
		return
	}

	q := db.Builder.Update("contests").
		Set("title", req.Title).
		Set("description", req.Description).
		Set("category_id", req.CategoryID).
		Set("deadline", req.Deadline).
		Set("price", req.Price).
		Set("status", req.Status).
		Set("rules_file_url", req.RulesLink).
		Set("diploma_sample_url", req.DiplomaImage).
		Set("image_url", req.Image).
		Set("is_popular", req.IsPopular != nil && *req.IsPopular).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": req.ID})

	if _, err := db.Exec(r.Context(), h.db, q); err != nil {
		serverError(w, "failed to update contest", err)
		return
	}

	slog.Info("contest updated", "contest_id", req.ID)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Contest updated"})
}

// DeleteContest handles DELETE /contests?id=. Unknown ids are a no-op.
func (h *ContestHandler) DeleteContest(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.URL.Query().Get("id"))
	if err != nil {
		badID(w, err)
		return
	}

	q := db.Builder.Delete("contests").Where(sq.Eq{"id": id})
	if _, err := db.Exec(r.Context(), h.db, q); err != nil {
		serverError(w, "failed to delete contest", err)
		return
	}

	slog.Info("contest deleted", "contest_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Contest deleted"})
}
