package auth

import (
	"context"
	"errors"
	"fmt"
)

// Kind classifies an authentication failure. The orchestrator bases its
// fallback and cache-purge decisions on it.
type Kind int

const (
	// KindUnknown is everything we could not classify
	KindUnknown Kind = iota
	// KindAuthorizationDenied means the identity provider explicitly refused.
	// Usually: no Xbox gamertag, no Minecraft Java entitlement or a child
	// account with restrictive settings.
	KindAuthorizationDenied
	// KindConfiguration means a flow can not succeed as configured
	// (e.g. a required flow parameter like the title id is missing)
	KindConfiguration
	// KindTimeout means the bounded wait elapsed without a resolution
	KindTimeout
	// KindTransport is a network failure talking to the identity services
	KindTransport
	// KindFilesystem means the cache directory or session file is unusable
	KindFilesystem
	// KindConflict means another sign-in is already running
	KindConflict
)

// result codes surfaced to the CLI / GUI layer
const (
	CodeSignInRequired = "SIGN_IN_REQUIRED"
	CodeLoginTimeout   = "LOGIN_TIMEOUT"
	CodeAuthDenied     = "AUTH_DENIED"
	CodeMisconfigured  = "AUTH_MISCONFIGURED"
	CodeNetwork        = "NETWORK_ERROR"
	CodeFilesystem     = "FILESYSTEM_ERROR"
	CodeInProgress     = "AUTH_IN_PROGRESS"
	CodeUnknown        = "UNKNOWN"
)

// Error is the only error shape that crosses the orchestrator boundary
type Error struct {
	Kind    Kind
	Message string
	Cause   error

	// code overrides the kind derived code (used for sentinels)
	code string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// Code returns the machine readable result code for this error
func (e *Error) Code() string {
	if e.code != "" {
		return e.code
	}
	switch e.Kind {
	case KindAuthorizationDenied:
		return CodeAuthDenied
	case KindConfiguration:
		return CodeMisconfigured
	case KindTimeout:
		return CodeLoginTimeout
	case KindTransport:
		return CodeNetwork
	case KindFilesystem:
		return CodeFilesystem
	case KindConflict:
		return CodeInProgress
	}
	return CodeUnknown
}

var (
	// ErrAuthInProgress is returned when Authenticate is called while
	// another call is still running
	ErrAuthInProgress = &Error{
		Kind:    KindConflict,
		Message: "another sign-in is already in progress",
	}

	// ErrSignInRequired is returned by consumers (like the launch path)
	// that need a session before they can do anything
	ErrSignInRequired = &Error{
		Kind:    KindConfiguration,
		Message: "you need to sign in first",
		code:    CodeSignInRequired,
	}
)

// Denied wraps err as an authorization refusal
func Denied(message string, err error) *Error {
	return &Error{Kind: KindAuthorizationDenied, Message: message, Cause: err}
}

// Misconfigured wraps err as a "this flow can not succeed as configured" failure
func Misconfigured(message string, err error) *Error {
	return &Error{Kind: KindConfiguration, Message: message, Cause: err}
}

// Transport wraps err as a network failure
func Transport(message string, err error) *Error {
	return &Error{Kind: KindTransport, Message: message, Cause: err}
}

// Filesystem wraps err as a local filesystem failure
func Filesystem(message string, err error) *Error {
	return &Error{Kind: KindFilesystem, Message: message, Cause: err}
}

func timedOut() *Error {
	return &Error{
		Kind:    KindTimeout,
		Message: "login timed out – finish the sign-in in your browser and try again",
	}
}

// classify maps an arbitrary provider error onto the taxonomy.
// Typed errors pass through untouched, context deadlines become timeouts
// and the rest counts as transport trouble.
func classify(err error) *Error {
	var authErr *Error
	if errors.As(err, &authErr) {
		return authErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return timedOut()
	}
	return &Error{Kind: KindTransport, Message: "authentication failed", Cause: err}
}

// IsTimeout reports whether err is a timed out attempt
func IsTimeout(err error) bool {
	var authErr *Error
	return errors.As(err, &authErr) && authErr.Kind == KindTimeout
}

// CodeOf returns the result code for any error
func CodeOf(err error) string {
	var authErr *Error
	if errors.As(err, &authErr) {
		return authErr.Code()
	}
	return CodeUnknown
}

// shouldPurge is the cache purge policy: only failures that mean
// "this flow can never succeed with the cached state" clear the cache.
// Timeouts and network blips must not force a re-login.
func shouldPurge(err error) bool {
	var authErr *Error
	if !errors.As(err, &authErr) {
		return false
	}
	return authErr.Kind == KindAuthorizationDenied || authErr.Kind == KindConfiguration
}
