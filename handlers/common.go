// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/talent-studio/middleware"
	"github.com/danielhkuo/talent-studio/models"
)

var (
	errMissingID = errors.New("missing id")
	errInvalidID = errors.New("invalid id")
)

// scanner is satisfied by both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

const applicationColumns = `id, full_name, age, teacher, institution, work_title, email,
	contest_id, contest_name, work_file_url, status, result, payment_id, payment_status,
	gallery_consent, created_at, updated_at`

// applicationSelect lists the columns scanApplication expects.
// Without soft delete the deleted_at column is never read.
func applicationSelect(softDelete bool) string {
	if softDelete {
		return applicationColumns + ", deleted_at"
	}
	return applicationColumns + ", NULL AS deleted_at"
}

func scanApplication(s scanner) (models.Application, error) {
	var a models.Application
	err := s.Scan(
		&a.ID, &a.FullName, &a.Age, &a.Teacher, &a.Institution, &a.WorkTitle, &a.Email,
		&a.ContestID, &a.ContestName, &a.WorkFileURL, &a.Status, &a.Result, &a.PaymentID, &a.PaymentStatus,
		&a.GalleryConsent, &a.CreatedAt, &a.UpdatedAt, &a.DeletedAt,
	)
	return a, err
}

const resultColumns = `id, application_id, full_name, age, teacher, institution, work_title, email,
	contest_id, contest_name, work_file_url, result, place, score, diploma_url, notes,
	gallery_consent, created_at, updated_at`

func scanResult(s scanner) (models.Result, error) {
	var res models.Result
	err := s.Scan(
		&res.ID, &res.ApplicationID, &res.FullName, &res.Age, &res.Teacher, &res.Institution, &res.WorkTitle, &res.Email,
		&res.ContestID, &res.ContestName, &res.WorkFileURL, &res.Result, &res.Place, &res.Score, &res.DiplomaURL, &res.Notes,
		&res.GalleryConsent, &res.CreatedAt, &res.UpdatedAt,
	)
	return res, err
}

// parseID reads a positive numeric id. An empty value is errMissingID.
func parseID(raw string) (int64, error) {
	if raw == "" {
		return 0, errMissingID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// badID answers 400 for an id rejected by parseID
func badID(w http.ResponseWriter, err error) {
	if errors.Is(err, errMissingID) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing id")
		return
	}
	middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid id")
}

// serverError logs err and answers 500 with its raw text
func serverError(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err)
	middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
}
