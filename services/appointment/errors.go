package appointment

// BookingError is a user-facing admission failure.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return e.Message
}

func newBookingError(code, msg string) *BookingError {
	return &BookingError{Code: code, Message: msg}
}

var (
	// ErrMissingFields signals that a required booking field was absent.
	ErrMissingFields = newBookingError("validation", "doctor, date and time are required")
	// ErrInvalidDate signals that the booking date was not a valid calendar date.
	ErrInvalidDate = newBookingError("validation", "date must be a valid YYYY-MM-DD calendar date")
	// ErrDateUnavailable signals that the date failed the eligibility rules.
	ErrDateUnavailable = newBookingError("dateUnavailable", "the selected date is not available")
	// ErrSlotUnavailable signals that the time label is not in the derived slot sequence.
	ErrSlotUnavailable = newBookingError("slotUnavailable", "the selected time is not available")
	// ErrSlotTaken signals that another live appointment already holds the slot.
	ErrSlotTaken = newBookingError("slotTaken", "this time slot has already been booked")
	// ErrInvalidTransition signals that the requested status change is not allowed.
	ErrInvalidTransition = newBookingError("validation", "invalid appointment status transition")
)
