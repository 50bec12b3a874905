package umssdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/ums/pkg/httpx"
)

const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeUnsupportedMedia   = "unsupported_media_type"
	ErrorCodeValidationFailed   = "validation_failed"
	ErrorCodeEmailTaken         = "email_taken"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeUnauthenticated    = "unauthenticated"
	ErrorCodeRateLimitExceeded  = "rate_limit_exceeded"
	ErrorCodeServerError        = "server_error"
)

// APIError is an error response. The server writes it with WriteError and
// the client decodes it back from the body.
type APIError struct {
	StatusCode int               `json:"-"`
	Code       string            `json:"error"`
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches on the error code, so errors.Is(err, ErrEmailTaken) holds for
// any decoded email_taken response.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WriteError writes e as a JSON response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	httpx.WriteJSON(w, e.StatusCode, ErrorResponse{
		Error:   e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// WithMessage returns a copy of e with a different message.
func (e *APIError) WithMessage(msg string) *APIError {
	cp := *e
	cp.Message = msg
	return &cp
}

var (
	ErrInvalidRequest = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeInvalidRequest,
		Message:    "the request body is malformed",
	}

	ErrUnsupportedMediaType = &APIError{
		StatusCode: http.StatusUnsupportedMediaType,
		Code:       ErrorCodeUnsupportedMedia,
		Message:    "content-type must be application/json",
	}

	ErrValidationFailed = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeValidationFailed,
		Message:    "Please fix the errors before submitting",
	}

	ErrEmailTaken = &APIError{
		StatusCode: http.StatusConflict,
		Code:       ErrorCodeEmailTaken,
		Message:    "Email already exists",
	}

	ErrInvalidCredentials = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeInvalidCredentials,
		Message:    "Invalid email or password",
	}

	ErrUnauthenticated = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeUnauthenticated,
		Message:    "login required",
	}

	ErrRateLimitExceeded = &APIError{
		StatusCode: http.StatusTooManyRequests,
		Code:       ErrorCodeRateLimitExceeded,
		Message:    "too many requests",
	}

	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrorCodeServerError,
		Message:    "internal server error",
	}
)

// NewValidationError builds a validation_failed error carrying the message
// of every invalid field. Valid fields are left out of Details.
func NewValidationError(message string, fields map[string]string) *APIError {
	details := make(map[string]string, len(fields))
	for field, msg := range fields {
		if msg != "" {
			details[field] = msg
		}
	}
	e := ErrValidationFailed.WithMessage(message)
	e.Details = details
	return e
}

// parseErrorResponse turns a non-2xx response into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       errResp.Error,
			Message:    errResp.Message,
			Details:    errResp.Details,
		}
	}

	// Fallback: create generic error from status code
	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       ErrorCodeServerError,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
