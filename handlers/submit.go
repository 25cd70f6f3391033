// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/talent-studio/cliparse"
	"github.com/danielhkuo/talent-studio/db"
	"github.com/danielhkuo/talent-studio/middleware"
	"github.com/danielhkuo/talent-studio/models"
	"github.com/danielhkuo/talent-studio/storage"
	"github.com/danielhkuo/talent-studio/validate"
)

// SubmitMethods is the preflight contract of /submit-application
const SubmitMethods = "POST, OPTIONS"

// worksFolder holds uploaded contest entries, keyed by their original file name
const worksFolder = "works/"

type SubmitHandler struct {
	db    *sql.DB
	cfg   cliparse.Config
	store storage.Store
}

func NewSubmitHandler(db *sql.DB, cfg cliparse.Config, store storage.Store) *SubmitHandler {
	return &SubmitHandler{db: db, cfg: cfg, store: store}
}

func (h *SubmitHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		middleware.MethodNotAllowed(w)
		return
	}
	h.SubmitApplication(w, r)
}

// SubmitApplication handles POST /submit-application.
// Nothing is uploaded or written unless every required field is present.
func (h *SubmitHandler) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitApplicationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := validate.Struct(r.Context(), req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	fileData, err := base64.StdEncoding.DecodeString(req.WorkFile)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "work_file is not valid base64")
		return
	}

	// Same file name overwrites the previous object
	workURL, err := h.store.Put(r.Context(), worksFolder+req.FileName, fileData, req.FileType)
	if err != nil {
		serverError(w, "failed to upload work file", err)
		return
	}

	q := db.Builder.Insert("applications").
		Columns("full_name", "age", "teacher", "institution", "work_title", "email",
			"contest_id", "contest_name", "work_file_url", "gallery_consent", "status").
		Values(req.FullName, req.Age, req.Teacher, req.Institution, req.WorkTitle, req.Email,
			req.ContestID, req.ContestName, workURL, req.GalleryConsent, models.StatusNew).
		Suffix("RETURNING id")

	var applicationID int64
	if err := db.QueryRow(r.Context(), h.db, q).Scan(&applicationID); err != nil {
		serverError(w, "failed to insert application", err)
		return
	}

	slog.Info("application submitted",
		"application_id", applicationID,
		"contest_name", req.ContestName,
	)

	middleware.JSONResponse(w, http.StatusOK, models.SubmitApplicationResponse{
		Success:       true,
		ApplicationID: applicationID,
		WorkURL:       workURL,
	})
}
