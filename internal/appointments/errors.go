package appointments

import "errors"

var (
	// ErrMissingRequester is returned when the requester id is absent
	ErrMissingRequester = errors.New("requester id is required")

	// ErrInvalidName is returned when the name is empty
	ErrInvalidName = errors.New("name is required")

	// ErrMissingPhone is returned when the phone is empty
	ErrMissingPhone = errors.New("phone is required")

	// ErrMissingSchedule is returned when the scheduled time is unset
	ErrMissingSchedule = errors.New("scheduled time is required")
)
