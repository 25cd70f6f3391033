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
)

// ApplicationMethods is the preflight contract of /applications
const ApplicationMethods = "GET, PUT, DELETE, OPTIONS"

type ApplicationHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewApplicationHandler(db *sql.DB, cfg cliparse.Config) *ApplicationHandler {
	return &ApplicationHandler{db: db, cfg: cfg}
}

func (h *ApplicationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.ListApplications(w, r)
	case http.MethodPut:
		h.UpdateApplication(w, r)
	case http.MethodDelete:
		h.DeleteApplication(w, r)
	default:
		middleware.MethodNotAllowed(w)
	}
}

// ListApplications handles GET /applications?deleted=true
func (h *ApplicationHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	q := db.Builder.Select(applicationSelect(h.cfg.SoftDelete)).From("applications")

	switch {
	case !h.cfg.SoftDelete:
		q = q.OrderBy("created_at DESC")
	case r.URL.Query().Get("deleted") == "true":
		q = q.Where(sq.NotEq{"deleted_at": nil}).OrderBy("deleted_at DESC")
	default:
		q = q.Where(sq.Eq{"deleted_at": nil}).OrderBy("created_at DESC")
	}

	rows, err := db.Query(r.Context(), h.db, q)
	if err != nil {
		serverError(w, "failed to query applications", err)
		return
	}
	defer rows.Close()

	applications := []models.Application{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			serverError(w, "failed to scan application", err)
			return
		}
		applications = append(applications, a)
	}
	if err := rows.Err(); err != nil {
		serverError(w, "failed to iterate applications", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, applications)
}

// UpdateApplication handles PUT /applications. The editable fields are
// replaced as a whole; omitted ones become NULL.
func (h *ApplicationHandler) UpdateApplication(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateApplicationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.ID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing id")
		return
	}

	q := db.Builder.Update("applications").
		Set("full_name", req.FullName).
		Set("age", req.Age).
		Set("teacher", req.Teacher).
		Set("institution", req.Institution).
		Set("work_title", req.WorkTitle).
		Set("email", req.Email).
		Set("status", req.Status).
		Set("result", req.Result).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": req.ID})

	if _, err := db.Exec(r.Context(), h.db, q); err != nil {
		serverError(w, "failed to update application", err)
		return
	}

	slog.Info("application updated", "application_id", req.ID)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// DeleteApplication handles DELETE /applications?id=&restore=true.
// It soft-deletes or restores; unknown ids are a no-op.
func (h *ApplicationHandler) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	if !h.cfg.SoftDelete {
		middleware.ErrorResponse(w, http.StatusBadRequest, "soft delete is not enabled")
		return
	}

	id, err := parseID(r.URL.Query().Get("id"))
	if err != nil {
		badID(w, err)
		return
	}
	restore := r.URL.Query().Get("restore") == "true"

	q := db.Builder.Update("applications").Where(sq.Eq{"id": id})
	if restore {
		q = q.Set("deleted_at", nil).Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))
	} else {
		q = q.Set("deleted_at", sq.Expr("CURRENT_TIMESTAMP"))
	}

	if _, err := db.Exec(r.Context(), h.db, q); err != nil {
		serverError(w, "failed to change application deletion state", err)
		return
	}

	slog.Info("application deletion state changed", "application_id", id, "restored", restore)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}
