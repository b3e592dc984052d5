package service

import "errors"

// Sentinel errors for the service layer. Handlers map these to
// taxonomy-level messages; the wrapped detail is for logs only.
var (
	ErrNotConfigured = errors.New("mail relay not configured")
	ErrDelivery      = errors.New("mail delivery failed")
)
