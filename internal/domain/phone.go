package domain

// PhoneNumber is a phone number in canonical form: +7(AAA)BBB-CC-DD.
type PhoneNumber string

// String returns the canonical representation
func (p PhoneNumber) String() string {
	return string(p)
}

// ExtractionResult holds distinct phone numbers in order of first occurrence.
type ExtractionResult []PhoneNumber

// Strings converts the result into a plain string slice, never nil.
func (r ExtractionResult) Strings() []string {
	out := make([]string, 0, len(r))
	for _, p := range r {
		out = append(out, string(p))
	}
	return out
}

// RawUpload is the uploaded file as received by the transport layer.
type RawUpload struct {
	Content     []byte
	ContentType string
	Filename    string
}

// PhonesResponse is returned when at least one number was found
type PhonesResponse struct {
	Phones []string `json:"phones"`
}

// MsgNoPhonesFound is reported when the text contains no phone numbers
const MsgNoPhonesFound = "Телефонные номера не найдены."

// MessageResponse is returned when the upload contained no numbers
type MessageResponse struct {
	Message string `json:"message"`
}
