package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phone-extractor/internal/domain"
	"phone-extractor/internal/service"
	apperrors "phone-extractor/pkg/errors"
)

const testMaxFileSize = 1 << 20

// newUploadRequest builds a multipart request with a single file part.
// An empty contentType omits the part's Content-Type header.
func newUploadRequest(t *testing.T, field, filename, contentType string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, extractPath, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func newTestPhoneHandler(maxFileSize int64) *PhoneHandler {
	return NewPhoneHandler(service.NewPhoneExtractor(nil, nil), NewMockHandlerLogger(), maxFileSize)
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return body
}

func TestPhoneHandler_ExtractPhones_Found(t *testing.T) {
	h := newTestPhoneHandler(testMaxFileSize)
	req := newUploadRequest(t, "file", "contacts.txt", "text/plain",
		[]byte("8 916 111 22 33 and 8-925-444-55-66"))
	rr := httptest.NewRecorder()

	h.ExtractPhones(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp domain.PhonesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, []string{"+7(916)111-22-33", "+7(925)444-55-66"}, resp.Phones)
}

func TestPhoneHandler_ExtractPhones_NoneFound(t *testing.T) {
	h := newTestPhoneHandler(testMaxFileSize)
	req := newUploadRequest(t, "file", "notes.txt", "text/plain", []byte("Просто текст без номеров."))
	rr := httptest.NewRecorder()

	h.ExtractPhones(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, domain.MsgNoPhonesFound, body["message"])
	assert.NotContains(t, body, "phones")
}

func TestPhoneHandler_ExtractPhones_ClassifiedFailures(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		content     []byte
		wantMsg     string
	}{
		{"unsupported media type", "image/png", []byte{0x89, 'P', 'N', 'G'}, apperrors.MsgUnsupportedMediaType},
		{"missing part content type", "", []byte("+79161234567"), apperrors.MsgUnsupportedMediaType},
		{"empty file", "text/plain", []byte{}, apperrors.MsgEmptyFile},
		{"whitespace file", "text/plain", []byte("   \n\t"), apperrors.MsgEmptyFile},
		{"invalid utf-8", "text/plain", []byte{'8', 0x80, '9'}, apperrors.MsgInvalidEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestPhoneHandler(testMaxFileSize)
			req := newUploadRequest(t, "file", "upload.bin", tt.contentType, tt.content)
			rr := httptest.NewRecorder()

			h.ExtractPhones(rr, req)

			require.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, tt.wantMsg, decodeBody(t, rr)["error"])
		})
	}
}

func TestPhoneHandler_ExtractPhones_MissingFile(t *testing.T) {
	h := newTestPhoneHandler(testMaxFileSize)

	t.Run("wrong field name", func(t *testing.T) {
		req := newUploadRequest(t, "document", "a.txt", "text/plain", []byte("+79161234567"))
		rr := httptest.NewRecorder()
		h.ExtractPhones(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, apperrors.MsgFileRequired, decodeBody(t, rr)["error"])
	})

	t.Run("not multipart", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, extractPath, strings.NewReader(`{"file":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		h.ExtractPhones(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, apperrors.MsgFileRequired, decodeBody(t, rr)["error"])
	})
}

func TestPhoneHandler_ExtractPhones_TooLarge(t *testing.T) {
	const limit = 16

	t.Run("body over the reader limit", func(t *testing.T) {
		h := newTestPhoneHandler(limit)
		big := bytes.Repeat([]byte("8 916 111 22 33\n"), (multipartOverhead/16)+1024)
		req := newUploadRequest(t, "file", "big.txt", "text/plain", big)
		rr := httptest.NewRecorder()

		h.ExtractPhones(rr, req)

		require.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
		assert.Equal(t, apperrors.MsgFileTooLarge, decodeBody(t, rr)["error"])
	})

	t.Run("file over the size limit", func(t *testing.T) {
		h := newTestPhoneHandler(limit)
		req := newUploadRequest(t, "file", "small.txt", "text/plain", []byte("8 916 111 22 33 8 925 444 55 66"))
		rr := httptest.NewRecorder()

		h.ExtractPhones(rr, req)

		require.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	})
}

type failingExtractor struct{}

func (failingExtractor) Extract(domain.RawUpload) (domain.ExtractionResult, error) {
	return nil, errors.New("unexpected failure")
}

func TestPhoneHandler_ExtractPhones_UnexpectedError(t *testing.T) {
	h := NewPhoneHandler(failingExtractor{}, NewMockHandlerLogger(), testMaxFileSize)
	req := newUploadRequest(t, "file", "a.txt", "text/plain", []byte("+79161234567"))
	rr := httptest.NewRecorder()

	h.ExtractPhones(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, apperrors.MsgInternal, decodeBody(t, rr)["error"])
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "a.txt", sanitizeFilename("../../etc/a.txt"))
	assert.Equal(t, "upload", sanitizeFilename(""))
	assert.Equal(t, "upload", sanitizeFilename("   "))
}
