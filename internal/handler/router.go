package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"phone-extractor/internal/domain"
	"phone-extractor/internal/metrics"
	apperrors "phone-extractor/pkg/errors"
)

const (
	extractPath  = "/extract-phones/"
	staticPrefix = "/static/"
)

// RouterConfig collects what NewRouter needs besides the handlers
type RouterConfig struct {
	Logger         domain.Logger
	Metrics        *metrics.Metrics
	AllowedOrigins []string
}

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(phoneHandler *PhoneHandler, formHandler *FormHandler, cfg RouterConfig) http.Handler {
	router := mux.NewRouter()
	router.Use(cfg.Metrics.Middleware, NewAccessLog(cfg.Logger).Middleware)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeAppError(w, apperrors.NewNotFoundError())
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeAppError(w, apperrors.NewMethodNotAllowedError())
	})

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "phone-extractor"})
	}).Methods(http.MethodGet)

	router.Handle("/metrics", cfg.Metrics.Handler()).Methods(http.MethodGet)

	// Upload form and assets
	router.HandleFunc("/", formHandler.Form).Methods(http.MethodGet)
	router.PathPrefix(staticPrefix).Handler(formHandler.Static()).Methods(http.MethodGet)

	// Extraction
	router.HandleFunc(extractPath, phoneHandler.ExtractPhones).Methods(http.MethodPost)
	router.HandleFunc("/extract-phones", phoneHandler.ExtractPhones).Methods(http.MethodPost)

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			RequestIDHeader,
		},
		ExposedHeaders: []string{
			RequestIDHeader,
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(RequestID(NewRecoverer(cfg.Logger).Middleware(router)))
}
