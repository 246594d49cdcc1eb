package errcodes

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced to the delivery layer
var (
	// ErrExpiredConnection means the stored access token failed validation
	// against GitHub; the remedy is to reconnect the account.
	ErrExpiredConnection = errors.New("github connection is no longer valid")

	// ErrDuplicateProject means the user already has a project for the
	// requested repository.
	ErrDuplicateProject = errors.New("a project already exists for this repository")

	// ErrNoConnection means the user has not linked a GitHub account.
	ErrNoConnection = errors.New("no github connection for user")
)

// ConfigurationError indicates a missing OAuth client credential. It is not
// retryable; the process environment must be fixed.
type ConfigurationError struct {
	Missing string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing configuration: %s", e.Missing)
}

// ProviderError indicates GitHub explicitly rejected a request, e.g. a bad
// or expired authorization code.
type ProviderError struct {
	Code        string
	Description string
}

func (e *ProviderError) Error() string {
	if e.Description != "" {
		return e.Description
	}
	return e.Code
}

// ProtocolError indicates an unexpected HTTP status or an unparseable
// response from GitHub.
type ProtocolError struct {
	Status int
	Reason string
}

func (e *ProtocolError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: status code %d", e.Reason, e.Status)
	}
	return e.Reason
}

// PersistenceError wraps a storage failure.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
