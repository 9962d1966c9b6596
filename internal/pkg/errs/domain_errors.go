package errs

// Domain-level sentinel errors shared by the domain and usecase layers
var (
	// Booking validation errors
	ErrInvalidDate        = New("invalid date")
	ErrInvalidTimeSlot    = New("invalid time slot")
	ErrInvalidClientName  = New("invalid client name")
	ErrInvalidGuestCount  = New("invalid guest count")
	ErrInvalidRestaurant  = New("invalid restaurant id")
	ErrInvalidTableCount  = New("invalid table count")
	ErrDomainValidation   = New("domain validation error")
	ErrCredentialsMissing = New("credentials missing")
)
