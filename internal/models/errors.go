// Package models contains the persisted entities and the error taxonomy
// shared by the storage, service and handler layers.
package models

import "errors"

var (
	// ErrAuthFailure is returned when a login name or secret is wrong.
	// Callers must not distinguish which of the two failed.
	ErrAuthFailure = errors.New("invalid username or password")
	// ErrUnauthenticated signals a missing, expired or malformed session.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrDuplicateIdentity signals a username that is already registered.
	ErrDuplicateIdentity = errors.New("username already exists")
	// ErrTeamExists signals a team name conflict.
	ErrTeamExists = errors.New("team already exists")
	// ErrTeamNotFound signals a missing team.
	ErrTeamNotFound = errors.New("team not found")
	// ErrUserNotFound signals a missing user.
	ErrUserNotFound = errors.New("user not found")
	// ErrNotFound signals a missing note, message or link.
	ErrNotFound = errors.New("not found")
	// ErrTransient signals a store failure that did not resolve within the
	// retry budget. Safe to retry from the client side.
	ErrTransient = errors.New("temporary storage failure")
	// ErrInconsistent signals a membership row referencing a team that no
	// longer exists. The foreign-key policy should make this unreachable.
	ErrInconsistent = errors.New("inconsistent directory state")
)
