// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/talent-studio/auth"
	"github.com/danielhkuo/talent-studio/cliparse"
	"github.com/danielhkuo/talent-studio/middleware"
	"github.com/danielhkuo/talent-studio/models"
	"github.com/danielhkuo/talent-studio/storage"
	"github.com/danielhkuo/talent-studio/validate"
)

// UploadMethods is the preflight contract of /upload-file
const UploadMethods = "POST, OPTIONS"

const (
	defaultUploadFolder = "contests"
	defaultUploadType   = "application/pdf"
)

type UploadHandler struct {
	cfg   cliparse.Config
	store storage.Store
}

func NewUploadHandler(cfg cliparse.Config, store storage.Store) *UploadHandler {
	return &UploadHandler{cfg: cfg, store: store}
}

func (h *UploadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		middleware.MethodNotAllowed(w)
		return
	}
	h.UploadFile(w, r)
}

// UploadFile handles POST /upload-file. The object key is random, so
// uploads never overwrite each other.
func (h *UploadHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	var req models.UploadFileRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := validate.Struct(r.Context(), req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.File)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "file is not valid base64")
		return
	}

	folder := req.Folder
	if folder == "" {
		folder = defaultUploadFolder
	}
	fileType := req.FileType
	if fileType == "" {
		fileType = defaultUploadType
	}

	key := auth.GenerateObjectKey(folder, req.FileName)
	url, err := h.store.Put(r.Context(), key, data, fileType)
	if err != nil {
		serverError(w, "failed to upload file", err)
		return
	}

	slog.Info("file uploaded", "key", key, "size", len(data))

	middleware.JSONResponse(w, http.StatusOK, models.UploadFileResponse{
		URL:      url,
		FileName: req.FileName,
		Message:  "File uploaded",
	})
}
