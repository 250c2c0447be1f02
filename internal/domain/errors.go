package domain

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
	ErrUserNotFound  = errors.New("user not found")
)

var (
	ErrInvalidTransition = errors.New("event is not pending moderation")
	ErrEventNotAnnounced = errors.New("event has no public announcement")
	ErrPartialApproval   = errors.New("event approved but follow-up steps failed")
	ErrNoTicketChannel   = errors.New("event has no support channel")
	ErrDeliveryFailed    = errors.New("notification delivery failed")
)

var (
	ErrUnauthorized = errors.New("caller is not authenticated")
	ErrForbidden    = errors.New("caller is not allowed to perform this action")
)

var (
	ErrValidation         = errors.New("validation error")
	ErrUnknownInteraction = errors.New("unknown interaction")
)
