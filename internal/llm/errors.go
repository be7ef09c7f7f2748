package llm

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	ErrProviderNotFound = errors.New("provider not found")
	ErrNotConfigured    = errors.New("provider not configured")
	ErrRateLimited      = errors.New("provider rate limit exceeded")
	ErrUnauthenticated  = errors.New("provider rejected credentials")
	ErrEmptyResponse    = errors.New("empty response from provider")
)

// StatusError is returned for non-2xx provider responses. Rate limit and
// auth failures unwrap to ErrRateLimited and ErrUnauthenticated.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s returned status %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthenticated
	}
	return nil
}

// StatusErr builds the error for a status code, or nil for 2xx.
func StatusErr(provider string, code int, body string) error {
	if code >= 200 && code < 300 {
		return nil
	}
	body = strings.TrimSpace(body)
	if len(body) > 512 {
		body = body[:512]
	}
	return &StatusError{Provider: provider, StatusCode: code, Body: body}
}

// CheckResponse inspects an HTTP response and returns a *StatusError for non-2xx codes.
func CheckResponse(provider string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return StatusErr(provider, resp.StatusCode, string(body))
}

// NotConfigured wraps ErrNotConfigured with the provider name.
func NotConfigured(provider string) error {
	return fmt.Errorf("%s: %w", provider, ErrNotConfigured)
}

// Empty wraps ErrEmptyResponse with the provider name.
func Empty(provider string) error {
	return fmt.Errorf("%s: %w", provider, ErrEmptyResponse)
}
