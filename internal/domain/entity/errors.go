package entity

import "errors"

// Standard domain errors
var (
	ErrUpstreamUnavailable = errors.New("completion service unavailable")
	ErrUpstreamMalformed   = errors.New("malformed completion response")
	ErrExtractionFailed    = errors.New("no valid JSON found in AI response")
	ErrNotFound            = errors.New("the requested resource was not found")
	ErrValidationFailed    = errors.New("invalid request parameters")
)
