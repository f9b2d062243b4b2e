package ledger

import "errors"

// ErrIndexOutOfRange indicates the caller referenced a row outside the ledger bounds.
var ErrIndexOutOfRange = errors.New("entry index out of range")

// ErrInvalidClock is returned when a time of day is not in HH:MM form.
var ErrInvalidClock = errors.New("invalid time (expected HH:MM)")

// ErrLogoutBeforeLogin is returned when a logout precedes the row's login.
var ErrLogoutBeforeLogin = errors.New("logout is earlier than login")

// ErrMalformedDuration is returned when a total string cannot be parsed back into hours and minutes.
var ErrMalformedDuration = errors.New("malformed duration")
