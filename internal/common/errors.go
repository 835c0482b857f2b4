// Package common defines shared sentinel errors and small helpers used across
// shelterdesk layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Authentication errors.
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrDuplicateIdentifier = errors.New("identifier already registered")
	ErrNoActiveSession     = errors.New("no active session")

	// Adoption-request lifecycle errors.
	ErrNoSuchRequest    = errors.New("no such adoption request")
	ErrDuplicateRequest = errors.New("adoption request already exists")

	// Catalog errors.
	ErrDuplicateAnimalCode = errors.New("animal code already in use")

	// Infrastructure errors. Partial state left behind a failed operation is
	// reported once and never retried by the core.
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrRenderFailed       = errors.New("document rendering failed")
)
