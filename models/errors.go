package models

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientTokens = errors.New("insufficient tokens")
	ErrInvalidAmount      = errors.New("grant amount must be positive")
	ErrUnknownFeature     = errors.New("unknown feature")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPackageNotFound    = errors.New("token package not found")
	ErrEntryNotFound      = errors.New("history entry not found")
)

// MissingFieldError reports a blank or absent form field required by a feature.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// GatewayErrorKind classifies failures of the LLM gateway call.
type GatewayErrorKind string

const (
	GatewayNetworkFailure GatewayErrorKind = "network_failure"
	GatewayRateLimited    GatewayErrorKind = "rate_limited"
	GatewayUpstreamError  GatewayErrorKind = "upstream_error"
	GatewayTimeout        GatewayErrorKind = "timeout"
)

// GatewayError is returned when the completion call fails. The workflow
// aborts without debiting on any gateway error.
type GatewayError struct {
	Kind   GatewayErrorKind
	Status int
	Err    error
}

func (e *GatewayError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("gateway %s (status %d): %v", e.Kind, e.Status, e.Err)
	}
	return fmt.Sprintf("gateway %s: %v", e.Kind, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// ParseErrorKind classifies response validation failures.
type ParseErrorKind string

const (
	ParseMalformedJSON   ParseErrorKind = "malformed_json"
	ParseMissingKey      ParseErrorKind = "missing_key"
	ParseOutOfRangeValue ParseErrorKind = "out_of_range_value"
)

// ParseError is returned when the model response does not match the
// feature's result schema. Validation failures are a full abort, never a
// partial record.
type ParseError struct {
	Kind ParseErrorKind
	Key  string
	Err  error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ParseMissingKey:
		return fmt.Sprintf("response missing key %q", e.Key)
	case ParseOutOfRangeValue:
		return fmt.Sprintf("response value %q out of range", e.Key)
	default:
		return fmt.Sprintf("malformed response: %v", e.Err)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }
