package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/heartmarshall/agei/internal/domain"
)

const maxMessageLen = 512

// messageFields are the body fields the server puts its error text in.
var messageFields = []string{"erro", "error", "message", "mensagem"}

// StatusError is a non-2xx response from the API.
//
// errors.Is matches domain.ErrHTTP for every status, plus the sentinel
// for the status class (401 ErrUnauthorized, 403 ErrForbidden,
// 404 ErrNotFound, 409 ErrConflict, 400/422 ErrValidation).
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
	Body       []byte
}

func newStatusError(method, path string, code int, body []byte) *StatusError {
	return &StatusError{
		Method:     method,
		Path:       path,
		StatusCode: code,
		Message:    extractMessage(body, code),
		Body:       body,
	}
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api: %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

func (e *StatusError) Is(target error) bool {
	if target == domain.ErrHTTP {
		return true
	}
	s := sentinelFor(e.StatusCode)
	return s != nil && target == s
}

func sentinelFor(code int) error {
	switch code {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusConflict:
		return domain.ErrConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrValidation
	}
	return nil
}

func extractMessage(body []byte, code int) string {
	if gjson.ValidBytes(body) {
		for _, f := range messageFields {
			if r := gjson.GetBytes(body, f); r.Type == gjson.String && r.Str != "" {
				return truncate(r.Str)
			}
		}
	}
	if msg := strings.TrimSpace(string(body)); msg != "" {
		return truncate(msg)
	}
	return http.StatusText(code)
}

func truncate(s string) string {
	if len(s) <= maxMessageLen {
		return s
	}
	return s[:maxMessageLen] + "...(truncated)"
}

// StatusCode returns the HTTP status carried by err, or 0 when err did not
// come from a server response.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
