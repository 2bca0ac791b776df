package domain

import "errors"

// Extraction errors. All of them are caller-input errors.
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrEmptyInput           = errors.New("empty input")
	ErrInvalidEncoding      = errors.New("invalid encoding")
)

// ErrorKind classifies an extraction failure.
type ErrorKind string

const (
	KindUnsupportedMediaType ErrorKind = "unsupported_media_type"
	KindEmptyInput           ErrorKind = "empty_input"
	KindInvalidEncoding      ErrorKind = "invalid_encoding"
)

// ExtractionErrorKind returns the kind of a classified extraction error,
// or an empty kind for anything else.
func ExtractionErrorKind(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrUnsupportedMediaType):
		return KindUnsupportedMediaType
	case errors.Is(err, ErrEmptyInput):
		return KindEmptyInput
	case errors.Is(err, ErrInvalidEncoding):
		return KindInvalidEncoding
	default:
		return ""
	}
}
