package service

import (
	"errors"
	"sort"
	"strings"

	"github.com/aussiebroadwan/orgs/pkg/orgsdk"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRefresh     = errors.New("invalid refresh token")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
)

// Field error messages for conflicts only the server can detect.
const (
	MsgEmailTaken = "user with this email already exists."
	MsgNameTaken  = "organisation with this name already exists."
	MsgRetry      = "Could not complete the request, please try again."
)

// ValidationError carries per-field messages keyed by JSON field name.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "validation failed: " + strings.Join(keys, ", ")
}

// validationError returns nil when fields is empty.
func validationError(fields map[string][]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func fieldError(field, msg string) error {
	errs := orgsdk.FieldErrors{}
	errs.Add(field, msg)
	return &ValidationError{Fields: errs}
}
