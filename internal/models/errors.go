package models

import "errors"

// Domain errors. Handlers map these to HTTP status codes; anything else
// coming out of a service is treated as an internal error.
var (
	// Validation: malformed or out-of-range input.
	ErrQuantityNotPositive = errors.New("quantity must be positive")
	ErrEventNameRequired   = errors.New("event name is required")
	ErrNegativePrice       = errors.New("price must be non-negative")
	ErrHoursIncomplete     = errors.New("timeOpen and timeClosed are required")
	ErrDateRequired        = errors.New("date is required")
	ErrVisitDateRequired   = errors.New("visit date is required")

	// Not found: the referenced entity does not exist.
	ErrEventNotFound = errors.New("event not found")

	// Business rule / conflict: well-formed request that violates a
	// scheduling or uniqueness invariant.
	ErrMuseumClosed           = errors.New("museum is closed on this date")
	ErrEventNotScheduled      = errors.New("event is not scheduled on this date")
	ErrDuplicateEventDate     = errors.New("date already exists for this event")
	ErrEventDateNotScheduled  = errors.New("date does not exist for this event")
	ErrHoursAlreadyConfigured = errors.New("hours already configured for this date")
)

// IsValidation reports whether err is a malformed-input error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrQuantityNotPositive) ||
		errors.Is(err, ErrEventNameRequired) ||
		errors.Is(err, ErrNegativePrice) ||
		errors.Is(err, ErrHoursIncomplete) ||
		errors.Is(err, ErrDateRequired) ||
		errors.Is(err, ErrVisitDateRequired)
}

// IsBusinessRule reports whether err is a scheduling or uniqueness
// violation. These are client errors, distinct from "not found".
func IsBusinessRule(err error) bool {
	return errors.Is(err, ErrMuseumClosed) ||
		errors.Is(err, ErrEventNotScheduled) ||
		errors.Is(err, ErrDuplicateEventDate) ||
		errors.Is(err, ErrEventDateNotScheduled) ||
		errors.Is(err, ErrHoursAlreadyConfigured)
}

// IsNotFound reports whether err means the referenced entity is missing.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEventNotFound)
}
