package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// FieldError is one field-level issue reported by the backend. The backend
// sends either objects or bare strings.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (f *FieldError) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		f.Message = plain
		return nil
	}
	type alias FieldError
	var obj alias
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*f = FieldError(obj)
	return nil
}

type errorBody struct {
	Status  int          `json:"status"`
	Error   string       `json:"error"`
	Message string       `json:"message"`
	Details []string     `json:"details"`
	Errors  []FieldError `json:"errors"`
}

// Error is a failed backend call. Status is 0 when no response arrived.
type Error struct {
	Status    int
	Code      string
	Message   string
	Details   []string
	Fields    []FieldError
	Method    string
	Path      string
	RequestID string
	cause     error
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s %s: %s", e.Method, e.Path, e.Message)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// DefaultMessage is the user-facing text for a status when the server sent
// none.
func DefaultMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Bad Request"
	case http.StatusUnauthorized:
		return "Unauthorized"
	case http.StatusForbidden:
		return "Access Denied"
	case http.StatusNotFound:
		return "Resource Not Found"
	case http.StatusConflict:
		return "Conflict - Resource Already Exists"
	case http.StatusInternalServerError:
		return "Internal Server Error"
	default:
		return "Error: " + http.StatusText(status)
	}
}

func newStatusError(method, path, requestID string, status int, raw []byte) *Error {
	out := &Error{
		Status:    status,
		Method:    method,
		Path:      path,
		RequestID: requestID,
	}
	var body errorBody
	if len(raw) > 0 && json.Unmarshal(raw, &body) == nil {
		out.Code = body.Error
		out.Details = body.Details
		out.Fields = body.Errors
		out.Message = strings.TrimSpace(body.Message)
	}
	if out.Message == "" {
		out.Message = DefaultMessage(status)
	}
	return out
}

func newTransportError(method, path, requestID string, cause error) *Error {
	return &Error{
		Method:    method,
		Path:      path,
		RequestID: requestID,
		Message:   "Error: " + cause.Error(),
		cause:     cause,
	}
}

func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func IsStatus(err error, status int) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Status == status
}

func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}

func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

// Message is the user-facing text for err.
func Message(err error) string {
	if apiErr, ok := AsError(err); ok {
		return apiErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
