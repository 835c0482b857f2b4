// Package models holds the plain data types shared by repositories and
// services.
package models

import "time"

// Credential is the stored identifier/secret-hash pair. The secret is never
// kept in clear form: Verifier is the argon2id-derived key computed over the
// per-credential random Salt.
type Credential struct {
	Email    string
	Salt     []byte
	Verifier []byte
}

// Profile carries the optional account details shown on the profile screen
// and embedded into adoption-request documents.
type Profile struct {
	FirstName        string
	LastName         string
	DateOfBirth      time.Time
	LivingConditions string
	PetExperience    string
	Motivation       string
	PhoneNumber      string
}

// Animal is one catalog record. ID is store-assigned; Code is the
// human-facing unique identifier assigned by the catalog manager.
type Animal struct {
	ID          int64
	Code        string
	Species     string
	Breed       string
	Age         int
	Gender      string
	Size        string
	Description string
	ImagePath   string
}

// AdoptionRequest pairs one requester with one animal. DocumentPath points
// at the rendered request document; the row is the canonical owner of that
// path even when the file is missing.
type AdoptionRequest struct {
	UserEmail    string
	AnimalID     int64
	DocumentPath string
}
