package common

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the reference model. Typed errors below unwrap to one of these.
var (
	ErrConfiguration       = errors.New("configuration error")
	ErrReferenceParse      = errors.New("unrecognized reference")
	ErrReferenceRange      = errors.New("reference out of range")
	ErrIndex               = errors.New("index out of range")
	ErrPassageRange        = errors.New("invalid passage")
	ErrOmitted             = errors.New("verse omitted in this translation")
	ErrTranslationMismatch = errors.New("cannot compare elements of different translations")
	ErrUnknownTranslation  = errors.New("unknown translation")
	ErrNotFound            = errors.New("not found")
)

type UserVisibleError struct {
	HttpCode int
	Message  string
}

func (e *UserVisibleError) Error() string {
	return fmt.Sprintf("Error %d: %s", e.HttpCode, e.Message)
}

func NewUserVisibleError(httpCode int, message string) *UserVisibleError {
	return &UserVisibleError{
		HttpCode: httpCode,
		Message:  message,
	}
}

func WrapErrorForResponse(err error, message string) error {
	if e, ok := err.(*UserVisibleError); ok {
		return &UserVisibleError{
			HttpCode: e.HttpCode,
			Message:  fmt.Sprintf("%s: %s", message, e.Message),
		}
	}
	return err
}

// ConfigurationError reports malformed or missing canon data. It is fatal at startup.
type ConfigurationError struct {
	Translation string
	Message     string
	Err         error
}

func (e *ConfigurationError) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Translation != "" {
		return fmt.Sprintf("canon %s: %s", e.Translation, msg)
	}
	return "canon: " + msg
}

func (e *ConfigurationError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrConfiguration, e.Err}
	}
	return []error{ErrConfiguration}
}

// ReferenceParseError means the book token (or the whole text) could not be recognized.
type ReferenceParseError struct {
	Input string
	Token string
	Err   error
}

func (e *ReferenceParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("could not find that book of the Bible: %q", e.Token)
	}
	if e.Err != nil {
		return fmt.Sprintf("could not make sense of reference %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("could not make sense of reference %q", e.Input)
}

func (e *ReferenceParseError) Unwrap() error { return ErrReferenceParse }

// ReferenceRangeError means the chapter or verse lies outside the canon bounds, or is omitted.
// Field is "chapter" or "verse" so callers can attach the message to the right input.
type ReferenceRangeError struct {
	Book   string
	Field  string
	Number int
	Max    int
	Err    error
}

func (e *ReferenceRangeError) Error() string {
	if errors.Is(e.Err, ErrOmitted) {
		return fmt.Sprintf("%s %d is omitted in %s", e.Field, e.Number, e.Book)
	}
	return fmt.Sprintf("%s %d out of range for %s (1-%d)", e.Field, e.Number, e.Book, e.Max)
}

func (e *ReferenceRangeError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrReferenceRange, e.Err}
	}
	return []error{ErrReferenceRange}
}

// IndexError is returned by the logical-index accessors of the index.
type IndexError struct {
	Kind  string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range (have %d)", e.Kind, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndex }

// PassageRangeError wraps everything that can go wrong while resolving a passage.
type PassageRangeError struct {
	Start string
	End   string
	Err   error
}

func (e *PassageRangeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid passage %s - %s: %v", e.Start, e.End, e.Err)
	}
	return fmt.Sprintf("invalid passage %s - %s: end precedes start", e.Start, e.End)
}

func (e *PassageRangeError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrPassageRange, e.Err}
	}
	return []error{ErrPassageRange}
}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// HTTPStatus maps error kinds to a response code.
func HTTPStatus(err error) int {
	var uve *UserVisibleError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &uve):
		return uve.HttpCode
	case errors.Is(err, ErrPassageRange),
		errors.Is(err, ErrReferenceParse),
		errors.Is(err, ErrReferenceRange):
		return http.StatusBadRequest
	case errors.Is(err, ErrIndex),
		errors.Is(err, ErrUnknownTranslation),
		errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
