package webhook

import "errors"

var (
	ErrInvalidURL       = errors.New("invalid webhook URL")
	ErrInvalidPayload   = errors.New("invalid webhook payload")
	ErrInvalidSecret    = errors.New("webhook secret is required")
	ErrDeliveryFailed   = errors.New("webhook delivery failed")
	ErrPermanentFailure = errors.New("webhook rejected permanently")
	ErrInvalidSignature = errors.New("invalid webhook signature")
)
