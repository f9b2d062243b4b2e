package timesheet

import "errors"

// ErrSessionNotFound is returned when no exported session matches the request.
var ErrSessionNotFound = errors.New("session not found")

// ErrEmptySession is returned when exporting a ledger with no rows.
var ErrEmptySession = errors.New("session has no entries")
