package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for the submission flow and the navigation table.
var (
	ErrValidation         = errors.New("submitted form is invalid")
	ErrInvalidCredentials = errors.New("invalid credentials provided")
	ErrAccountExists      = errors.New("an account with this email already exists")
	ErrBackendUnavailable = errors.New("backend is unavailable")
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
	ErrUnknownTile        = errors.New("unknown dashboard tile")
	ErrNoRoute            = errors.New("no route for path")
)
