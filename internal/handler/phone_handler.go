package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"phone-extractor/internal/domain"
	apperrors "phone-extractor/pkg/errors"
)

const (
	uploadFieldName = "file"
	// multipartOverhead leaves room for boundaries and part headers on top
	// of the file size limit.
	multipartOverhead = 64 << 10
	maxFormMemory     = 8 << 20
)

// PhoneHandler handles phone extraction requests
type PhoneHandler struct {
	extractor   domain.PhoneExtractor
	logger      domain.Logger
	maxFileSize int64
}

// NewPhoneHandler creates a new phone handler
func NewPhoneHandler(extractor domain.PhoneExtractor, logger domain.Logger, maxFileSize int64) *PhoneHandler {
	return &PhoneHandler{
		extractor:   extractor,
		logger:      logger,
		maxFileSize: maxFileSize,
	}
}

// ExtractPhones handles a multipart upload and returns the phone numbers found in it
func (h *PhoneHandler) ExtractPhones(w http.ResponseWriter, r *http.Request) {
	requestID, _ := GetRequestIDFromContext(r)

	upload, appErr := h.readUpload(w, r)
	if appErr != nil {
		h.logger.Warn("Rejected upload", "request_id", requestID, "reason", appErr.Error())
		writeAppError(w, appErr)
		return
	}

	phones, err := h.extractor.Extract(upload)
	if err != nil {
		appErr := apperrors.FromExtraction(err)
		if appErr.Type == apperrors.ErrorTypeInternal {
			h.logger.Error("Failed to extract phones", err, "request_id", requestID, "filename", upload.Filename)
		}
		writeAppError(w, appErr)
		return
	}

	if len(phones) == 0 {
		writeJSON(w, http.StatusOK, domain.MessageResponse{Message: domain.MsgNoPhonesFound})
		return
	}

	writeJSON(w, http.StatusOK, domain.PhonesResponse{Phones: phones.Strings()})
}

// readUpload reads the "file" part fully, enforcing the size limit
func (h *PhoneHandler) readUpload(w http.ResponseWriter, r *http.Request) (domain.RawUpload, *apperrors.AppError) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize+multipartOverhead)

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		if isTooLarge(err) {
			return domain.RawUpload{}, apperrors.NewTooLargeError(h.maxFileSize, err)
		}
		return domain.RawUpload{}, apperrors.NewValidationError(apperrors.MsgFileRequired, err)
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	file, header, err := r.FormFile(uploadFieldName)
	if err != nil {
		return domain.RawUpload{}, apperrors.NewValidationError(apperrors.MsgFileRequired, err)
	}
	defer file.Close()

	if header.Size > h.maxFileSize {
		return domain.RawUpload{}, apperrors.NewTooLargeError(h.maxFileSize, nil)
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return domain.RawUpload{}, apperrors.NewInternalError(err)
	}

	return domain.RawUpload{
		Content:     content,
		ContentType: header.Header.Get("Content-Type"),
		Filename:    sanitizeFilename(header.Filename),
	}, nil
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr) || errors.Is(err, multipart.ErrMessageTooLarge)
}

// sanitizeFilename strips any path components
func sanitizeFilename(name string) string {
	name = strings.TrimSpace(filepath.Base(name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "upload"
	}
	return name
}
