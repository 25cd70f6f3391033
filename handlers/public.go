// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"

	sq "github.com/Masterminds/squirrel"

	"github.com/danielhkuo/talent-studio/cliparse"
	"github.com/danielhkuo/talent-studio/db"
	"github.com/danielhkuo/talent-studio/middleware"
	"github.com/danielhkuo/talent-studio/models"
)

// PublicMethods is the preflight contract of /public-results and /gallery-works
const PublicMethods = "GET, OPTIONS"

// PublicHandler serves the read-only views of results whose subjects
// consented to public display
type PublicHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewPublicHandler(db *sql.DB, cfg cliparse.Config) *PublicHandler {
	return &PublicHandler{db: db, cfg: cfg}
}

func (h *PublicHandler) consented() sq.SelectBuilder {
	return db.Builder.Select().From("results").
		Where(sq.Eq{"gallery_consent": true}).
		OrderBy("created_at DESC")
}

// PublicResults handles GET /public-results
func (h *PublicHandler) PublicResults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		middleware.MethodNotAllowed(w)
		return
	}

	q := h.consented().Columns("id", "full_name", "age", "teacher", "institution",
		"work_title", "contest_name", "result", "work_file_url", "created_at", "updated_at")

	rows, err := db.Query(r.Context(), h.db, q)
	if err != nil {
		serverError(w, "failed to query public results", err)
		return
	}
	defer rows.Close()

	results := []models.PublicResult{}
	for rows.Next() {
		var res models.PublicResult
		if err := rows.Scan(&res.ID, &res.FullName, &res.Age, &res.Teacher, &res.Institution,
			&res.WorkTitle, &res.ContestName, &res.Result, &res.WorkFileURL, &res.CreatedAt, &res.UpdatedAt); err != nil {
			serverError(w, "failed to scan public result", err)
			return
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		serverError(w, "failed to iterate public results", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}

// GalleryWorks handles GET /gallery-works. Only consented results with a
// work file are shown.
func (h *PublicHandler) GalleryWorks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		middleware.MethodNotAllowed(w)
		return
	}

	q := h.consented().
		Columns("id", "full_name", "age", "work_title", "contest_name", "work_file_url", "created_at").
		Where(sq.NotEq{"work_file_url": nil}).
		Where(sq.NotEq{"work_file_url": ""})

	rows, err := db.Query(r.Context(), h.db, q)
	if err != nil {
		serverError(w, "failed to query gallery works", err)
		return
	}
	defer rows.Close()

	works := []models.GalleryWork{}
	for rows.Next() {
		var work models.GalleryWork
		if err := rows.Scan(&work.ID, &work.FullName, &work.Age, &work.WorkTitle,
			&work.ContestName, &work.WorkFileURL, &work.CreatedAt); err != nil {
			serverError(w, "failed to scan gallery work", err)
			return
		}
		works = append(works, work)
	}
	if err := rows.Err(); err != nil {
		serverError(w, "failed to iterate gallery works", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, works)
}
