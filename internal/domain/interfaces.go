package domain

import "time"

// PhoneExtractor finds Russian phone numbers in uploaded text
type PhoneExtractor interface {
	Extract(upload RawUpload) (ExtractionResult, error)
}

// ExtractionObserver receives the outcome of every extraction.
// An empty kind means the extraction succeeded.
type ExtractionObserver interface {
	ObserveExtraction(kind ErrorKind, found int)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetAllowedOrigins() []string
	GetReadTimeout() time.Duration
	GetWriteTimeout() time.Duration
}
