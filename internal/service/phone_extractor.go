package service

import (
	"bytes"
	"regexp"
	"strings"
	"unicode/utf8"

	"phone-extractor/internal/domain"
)

// phoneSpace matches a single whitespace code point: ASCII control
// whitespace, the file/group/record/unit separators, NEL and every Unicode
// space separator (including the no-break space).
const phoneSpace = `[\t-\r\x{1c}-\x{1f}\x{85}\p{Z}]`

// phonePattern matches +7 or 8, an optional bracketed or dashed 3-digit code,
// a 3-digit block and two 2-digit groups with optional separators.
var phonePattern = regexp.MustCompile(
	`(?:\+7|8)` + phoneSpace + `*[(\-]?([0-9]{3})[)\-]?` + phoneSpace +
		`*([0-9]{3})(?:[\-.]|` + phoneSpace + `)?([0-9]{2})(?:[\-.]|` + phoneSpace + `)?([0-9]{2})`,
)

// asciiSpace is the set trimmed before the empty-input check.
const asciiSpace = " \t\n\r\v\f"

const textMediaPrefix = "text/"

// ExtractPhones returns the distinct phone numbers found in content, in order
// of first occurrence. The declared content type is trusted as-is.
func ExtractPhones(content []byte, declaredContentType string) (domain.ExtractionResult, error) {
	if !strings.HasPrefix(declaredContentType, textMediaPrefix) {
		return nil, domain.ErrUnsupportedMediaType
	}
	if len(bytes.Trim(content, asciiSpace)) == 0 {
		return nil, domain.ErrEmptyInput
	}
	if !utf8.Valid(content) {
		return nil, domain.ErrInvalidEncoding
	}
	return FindPhones(string(content)), nil
}

// FindPhones scans text left to right and canonicalizes every match,
// dropping numbers already seen.
func FindPhones(text string) domain.ExtractionResult {
	matches := phonePattern.FindAllStringSubmatch(text, -1)

	found := make(domain.ExtractionResult, 0, len(matches))
	seen := make(map[domain.PhoneNumber]struct{}, len(matches))
	for _, m := range matches {
		phone := Canonicalize(m[1], m[2], m[3], m[4])
		if _, ok := seen[phone]; ok {
			continue
		}
		seen[phone] = struct{}{}
		found = append(found, phone)
	}
	return found
}

// Canonicalize formats the four captured digit groups as +7(AAA)BBB-CC-DD.
func Canonicalize(area, block, first, second string) domain.PhoneNumber {
	var sb strings.Builder
	sb.Grow(16)
	sb.WriteString("+7(")
	sb.WriteString(area)
	sb.WriteString(")")
	sb.WriteString(block)
	sb.WriteString("-")
	sb.WriteString(first)
	sb.WriteString("-")
	sb.WriteString(second)
	return domain.PhoneNumber(sb.String())
}

// PhoneExtractor runs ExtractPhones and reports every outcome to its logger
// and observer.
type PhoneExtractor struct {
	logger   domain.Logger
	observer domain.ExtractionObserver
}

// NewPhoneExtractor creates a new phone extractor. Nil sinks are replaced
// with no-ops.
func NewPhoneExtractor(logger domain.Logger, observer domain.ExtractionObserver) *PhoneExtractor {
	if logger == nil {
		logger = nopLogger{}
	}
	if observer == nil {
		observer = nopObserver{}
	}
	return &PhoneExtractor{
		logger:   logger,
		observer: observer,
	}
}

// Extract implements domain.PhoneExtractor
func (s *PhoneExtractor) Extract(upload domain.RawUpload) (domain.ExtractionResult, error) {
	result, err := ExtractPhones(upload.Content, upload.ContentType)
	if err != nil {
		kind := domain.ExtractionErrorKind(err)
		switch kind {
		case domain.KindUnsupportedMediaType:
			s.logger.Warn("Unsupported file type", "content_type", upload.ContentType, "filename", upload.Filename)
		case domain.KindEmptyInput:
			s.logger.Warn("Empty file uploaded", "filename", upload.Filename)
		case domain.KindInvalidEncoding:
			s.logger.Warn("File is not valid UTF-8", "filename", upload.Filename, "size", len(upload.Content))
		}
		s.observer.ObserveExtraction(kind, 0)
		return nil, err
	}

	s.logger.Info("Phone numbers extracted", "count", len(result), "filename", upload.Filename)
	s.observer.ObserveExtraction("", len(result))
	return result, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})         {}
func (nopLogger) Error(string, error, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{})        {}
func (nopLogger) Warn(string, ...interface{})         {}

type nopObserver struct{}

func (nopObserver) ObserveExtraction(domain.ErrorKind, int) {}
