// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	sq "github.com/Masterminds/squirrel"

	"github.com/danielhkuo/talent-studio/cliparse"
	"github.com/danielhkuo/talent-studio/db"
	"github.com/danielhkuo/talent-studio/middleware"
	"github.com/danielhkuo/talent-studio/models"
)

// ResultMethods is the preflight contract of /results
const ResultMethods = "GET, POST, PUT, DELETE, OPTIONS"

const (
	msgResultIDRequired = "Result ID is required"
	msgResultNotFound   = "Result not found"
	msgResultExists     = "Result for this application already exists"
)

type ResultHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewResultHandler(db *sql.DB, cfg cliparse.Config) *ResultHandler {
	return &ResultHandler{db: db, cfg: cfg}
}

func (h *ResultHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if r.URL.Query().Get("id") != "" {
			h.GetResult(w, r)
			return
		}
		h.ListResults(w, r)
	case http.MethodPost:
		h.CreateResult(w, r)
	case http.MethodPut:
		h.UpdateResult(w, r)
	case http.MethodDelete:
		h.DeleteResult(w, r)
	default:
		middleware.MethodNotAllowed(w)
	}
}

// GetResult handles GET /results?id=
func (h *ResultHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.URL.Query().Get("id"))
	if err != nil {
		badID(w, err)
		return
	}

	q := db.Builder.Select(resultColumns).From("results").Where(sq.Eq{"id": id})
	result, err := scanResult(db.QueryRow(r.Context(), h.db, q))
	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, msgResultNotFound)
		return
	}
	if err != nil {
		serverError(w, "failed to query result", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, result)
}

// ListResults handles GET /results with optional, combinable filters:
// contest_id, contest_name (substring, case-insensitive), result and place
func (h *ResultHandler) ListResults(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q := db.Builder.Select(resultColumns).From("results").OrderBy("created_at DESC")

	if v := params.Get("contest_id"); v != "" {
		contestID, err := parseID(v)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid contest_id")
			return
		}
		q = q.Where(sq.Eq{"contest_id": contestID})
	}
	if v := params.Get("contest_name"); v != "" {
		q = q.Where(sq.ILike{"contest_name": "%" + v + "%"})
	}
	if v := params.Get("result"); v != "" {
		q = q.Where(sq.Eq{"result": v})
	}
	if v := params.Get("place"); v != "" {
		q = q.Where(sq.Eq{"place": v})
	}

	rows, err := db.Query(r.Context(), h.db, q)
	if err != nil {
		serverError(w, "failed to query results", err)
		return
	}
	defer rows.Close()

	results := []models.Result{}
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			serverError(w, "failed to scan result", err)
			return
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		serverError(w, "failed to iterate results", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}

// CreateResult handles POST /results. At most one result may reference an
// application: the pre-check answers 409 and the UNIQUE constraint catches
// the insert that races past it.
func (h *ResultHandler) CreateResult(w http.ResponseWriter, r *http.Request) {
	var req models.ResultRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ApplicationID != nil {
		var existing int64
		check := db.Builder.Select("id").From("results").Where(sq.Eq{"application_id": *req.ApplicationID})
		err := db.QueryRow(r.Context(), h.db, check).Scan(&existing)
		if err == nil {
			middleware.ErrorResponse(w, http.StatusConflict, msgResultExists)
			return
		}
		if !errors.Is(err, sql.ErrNoRows) {
			serverError(w, "failed to check existing result", err)
			return
		}
	}

	q := db.Builder.Insert("results").
		Columns("application_id", "full_name", "age", "teacher", "institution", "work_title", "email",
			"contest_id", "contest_name", "work_file_url", "result", "place", "score", "diploma_url", "notes",
			"gallery_consent").
		Values(req.ApplicationID, req.FullName, req.Age, req.Teacher, req.Institution, req.WorkTitle, req.Email,
			req.ContestID, req.ContestName, req.WorkFileURL, req.Result, req.Place, req.Score, req.DiplomaURL, req.Notes,
			req.GalleryConsent).
		Suffix("RETURNING " + resultColumns)

	result, err := scanResult(db.QueryRow(r.Context(), h.db, q))
	if db.IsUniqueViolation(err) {
		middleware.ErrorResponse(w, http.StatusConflict, msgResultExists)
		return
	}
	if err != nil {
		serverError(w, "failed to insert result", err)
		return
	}

	slog.Info("result created", "result_id", result.ID, "application_id", result.ApplicationID)

	middleware.JSONResponse(w, http.StatusCreated, result)
}

// UpdateResult handles PUT /results. Every field except application_id is replaced.
func (h *ResultHandler) UpdateResult(w http.ResponseWriter, r *http.Request) {
	var req models.ResultRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.ID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgResultIDRequired)
		return
	}

	q := db.Builder.Update("results").
		Set("full_name", req.FullName).
		Set("age", req.Age).
		Set("teacher", req.Teacher).
		Set("institution", req.Institution).
		Set("work_title", req.WorkTitle).
		Set("email", req.Email).
		Set("contest_id", req.ContestID).
		Set("contest_name", req.ContestName).
		Set("work_file_url", req.WorkFileURL).
		Set("result", req.Result).
		Set("place", req.Place).
		Set("score", req.Score).
		Set("diploma_url", req.DiplomaURL).
		Set("notes", req.Notes).
		Set("gallery_consent", req.GalleryConsent).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": req.ID}).
		Suffix("RETURNING " + resultColumns)

	result, err := scanResult(db.QueryRow(r.Context(), h.db, q))
	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, msgResultNotFound)
		return
	}
	if err != nil {
		serverError(w, "failed to update result", err)
		return
	}

	slog.Info("result updated", "result_id", result.ID)

	middleware.JSONResponse(w, http.StatusOK, result)
}

// DeleteResult handles DELETE /results?id=
func (h *ResultHandler) DeleteResult(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.URL.Query().Get("id"))
	if errors.Is(err, errMissingID) {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgResultIDRequired)
		return
	}
	if err != nil {
		badID(w, err)
		return
	}

	q := db.Builder.Delete("results").Where(sq.Eq{"id": id})
	if _, err := db.Exec(r.Context(), h.db, q); err != nil {
		serverError(w, "failed to delete result", err)
		return
	}

	slog.Info("result deleted", "result_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Result deleted"})
}
