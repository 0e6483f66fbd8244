package errs

import "errors"

// Sentinel errors shared by the usecase layers. Handlers translate these to
// HTTP statuses; everything else surfaces as an internal error.
var (
	// Time / interval validation
	ErrInvalidTimeFormat = errors.New("invalid time format")
	ErrInvalidInterval   = errors.New("invalid interval")

	// Lookups
	ErrServiceNotFound   = errors.New("service not found")
	ErrStylistNotFound   = errors.New("stylist not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrTemplateNotFound  = errors.New("availability template not found")
	ErrExceptionNotFound = errors.New("availability exception not found")
	ErrUserNotFound      = errors.New("user not found")

	// Authorization
	ErrForbidden   = errors.New("forbidden")
	ErrNotAStylist = errors.New("user is not a stylist")

	// Availability
	ErrTemplateOverlap = errors.New("template overlaps an existing one")

	// Booking ledger
	ErrSlotUnavailable   = errors.New("slot unavailable")
	ErrPastDateTime      = errors.New("start time is in the past")
	ErrTooLateToCancel   = errors.New("too late to cancel")
	ErrInvalidTransition = errors.New("invalid status transition")

	// Auth
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")

	// Operations
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
