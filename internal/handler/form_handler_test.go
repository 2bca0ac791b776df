package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormHandler_Form(t *testing.T) {
	h := NewFormHandler(NewMockHandlerLogger(), 10<<20)

	rr := httptest.NewRecorder()
	h.Form(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	body := rr.Body.String()
	assert.Contains(t, body, `action="/extract-phones/"`)
	assert.Contains(t, body, `name="file"`)
	assert.Contains(t, body, "10 МБ")
}

func TestFormHandler_Static(t *testing.T) {
	h := NewFormHandler(NewMockHandlerLogger(), 1<<20)

	rr := httptest.NewRecorder()
	h.Static().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/style.css", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/css")

	rr = httptest.NewRecorder()
	h.Static().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/missing.js", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
