// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Organization-related errors
	ErrOrganizationNotFound = errors.New("organization not found")

	// Membership-related errors
	ErrMembershipNotFound = errors.New("membership not found")
	ErrAlreadyMember      = errors.New("user already in organization")
	ErrLastOwner          = errors.New("cannot remove the last confirmed owner")
	ErrInvalidState       = errors.New("membership in invalid state")
	ErrInvalidRole        = errors.New("invalid membership role")

	// Collection-related errors
	ErrCollectionNotFound = errors.New("collection not found in organization")
	ErrGrantNotFound      = errors.New("user not assigned to collection")
)
