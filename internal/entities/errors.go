// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrActivityNotFound is returned when an activity name is not in the store.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrParticipantNotFound signals an email that is not on the activity roster.
	ErrParticipantNotFound = errors.New("participant not registered for this activity")
	// ErrAlreadyEnrolled signals a duplicate signup.
	ErrAlreadyEnrolled = errors.New("participant already signed up for this activity")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
)
