package handler

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"phone-extractor/internal/domain"
	apperrors "phone-extractor/pkg/errors"
)

//go:embed web/templates/*.html web/static/*
var webFS embed.FS

var formTemplate = template.Must(template.ParseFS(webFS, "web/templates/form.html"))

type formPage struct {
	Title         string
	Action        string
	MaxFileSizeMB int64
}

// FormHandler serves the HTML upload form and its static assets
type FormHandler struct {
	logger      domain.Logger
	maxFileSize int64
}

// NewFormHandler creates a new form handler
func NewFormHandler(logger domain.Logger, maxFileSize int64) *FormHandler {
	return &FormHandler{
		logger:      logger,
		maxFileSize: maxFileSize,
	}
}

// Form renders the upload form
func (h *FormHandler) Form(w http.ResponseWriter, r *http.Request) {
	page := formPage{
		Title:         "Поиск телефонных номеров",
		Action:        extractPath,
		MaxFileSizeMB: (h.maxFileSize + (1 << 20) - 1) >> 20,
	}

	var buf bytes.Buffer
	if err := formTemplate.Execute(&buf, page); err != nil {
		h.logger.Error("Failed to render upload form", err)
		writeAppError(w, apperrors.NewInternalError(err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// Static returns a handler serving embedded assets under /static/
func (h *FormHandler) Static() http.Handler {
	static, err := fs.Sub(webFS, "web/static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix(staticPrefix, http.FileServer(http.FS(static)))
}
