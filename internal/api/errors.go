package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// AuthError is returned for rejected credentials or an invalid/expired
// token (HTTP 401/403). Detail carries the server's message when one is
// provided.
type AuthError struct {
	Status int
	Detail string
}

func (e *AuthError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("authentication failed: %s", e.Detail)
	}
	return fmt.Sprintf("authentication failed (status %d)", e.Status)
}

// ValidationError carries field-level messages from a rejected payload
// (HTTP 400/422), e.g. a duplicate username or a password policy
// violation. It is also produced client-side before a request is sent.
type ValidationError struct {
	Status int
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], ", ")))
	}
	return strings.Join(parts, "; ")
}

// HTTPError is any other non-2xx response.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("server returned HTTP %d", e.Status)
}

// NetworkError is a transport failure where no response was received.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// errorFromResponse maps a non-2xx response onto the error taxonomy.
// The server body is propagated unchanged wherever it parses.
func errorFromResponse(status int, body []byte) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		var payload struct {
			Detail string `json:"detail"`
		}
		_ = json.Unmarshal(body, &payload)
		return &AuthError{Status: status, Detail: payload.Detail}
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if fields := parseFieldErrors(body); len(fields) > 0 {
			return &ValidationError{Status: status, Fields: fields}
		}
	}
	return &HTTPError{Status: status, Body: string(body)}
}

// parseFieldErrors decodes a DRF-style field error map, where each field
// maps to either a string or a list of strings.
func parseFieldErrors(body []byte) map[string][]string {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || len(raw) == 0 {
		return nil
	}

	fields := make(map[string][]string, len(raw))
	for key, msg := range raw {
		var list []string
		if err := json.Unmarshal(msg, &list); err == nil {
			fields[key] = list
			continue
		}
		var single string
		if err := json.Unmarshal(msg, &single); err == nil {
			fields[key] = []string{single}
			continue
		}
		return nil
	}
	return fields
}
