package service

import "errors"

// Common service errors. The API layer maps these to HTTP status codes.
var (
	// ErrDeliveryFailed indicates the contact email could not be sent.
	// API layer should map this to HTTP 500 with a generic message.
	ErrDeliveryFailed = errors.New("contact delivery failed")

	// ErrResumeUnavailable indicates the resume could not be assembled.
	ErrResumeUnavailable = errors.New("resume unavailable")
)
