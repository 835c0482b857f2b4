// Package session owns the single current-session state of the process and
// its on-disk persistence. A session exists only after its identifier/secret
// pair was verified against the credential store; the persisted record alone
// is never trusted.
package session

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/mcorbu/shelterdesk/internal/common"
	"github.com/mcorbu/shelterdesk/internal/logging"
	"github.com/mcorbu/shelterdesk/internal/models"
)

// Unknown is the sentinel returned by display accessors when no session is
// active or a profile field is unset. Read-only display paths get a value,
// not an error.
const Unknown = "?"

var emailPattern = regexp.MustCompile(`^.+@.+\..+$`)

// CredentialVerifier is the slice of the credential store the manager needs.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, secret string) (bool, error)
	FetchProfile(ctx context.Context, email string) (*models.Profile, error)
}

// Session is the in-memory representation of the authenticated actor.
// A nil *Session passed to other services means "no active session".
type Session struct {
	Email   string
	Secret  string
	Profile models.Profile
}

// Manager is the single owner of session state: NoSession or Active.
type Manager struct {
	creds   CredentialVerifier
	record  *RecordFile
	log     logging.Logger
	current *Session
}

// NewManager constructs a Manager in the NoSession state.
func NewManager(creds CredentialVerifier, recordPath string, log logging.Logger) *Manager {
	return &Manager{
		creds:  creds,
		record: NewRecordFile(recordPath),
		log:    log.With("component", "session"),
	}
}

// Active reports whether a session is live.
func (m *Manager) Active() bool { return m.current != nil }

// Current returns the live session, or nil in the NoSession state.
func (m *Manager) Current() *Session { return m.current }

// buildSession assembles an Active session, populating profile fields from
// the store and falling back to an identifier/secret-only session when the
// account has no profile yet or the profile cannot be read.
func (m *Manager) buildSession(ctx context.Context, email, secret string) *Session {
	s := &Session{Email: email, Secret: secret}

	profile, err := m.creds.FetchProfile(ctx, email)
	if err != nil {
		m.log.Warn(ctx, "profile not loaded", "identifier", email, "error", err)
		return s
	}
	if profile != nil {
		s.Profile = *profile
	}
	return s
}

// Restore attempts to revive a session from the persisted record. An absent
// or malformed record leaves NoSession. A present record is re-verified
// against the credential store; a failed verification clears the record.
// Returns whether the end state is Active.
func (m *Manager) Restore(ctx context.Context) bool {
	m.current = nil

	email, secret, ok := m.record.Read()
	if !ok {
		return false
	}

	verified, err := m.creds.Verify(ctx, email, secret)
	if err != nil {
		// Store unreachable: the record stays, nothing is trusted.
		m.log.Warn(ctx, "session restore skipped", "error", err)
		return false
	}
	if !verified {
		if err := m.record.Clear(); err != nil {
			m.log.Warn(ctx, "stale session record not cleared", "error", err)
		}
		return false
	}

	m.current = m.buildSession(ctx, email, secret)
	m.log.Info(ctx, "session restored", "identifier", email)
	return true
}

// Login verifies the credentials, persists the record, and transitions to
// Active. Logging in while already Active refreshes the record and profile.
func (m *Manager) Login(ctx context.Context, email, secret string) error {
	verified, err := m.creds.Verify(ctx, email, secret)
	if err != nil {
		return fmt.Errorf("verify credentials: %w", err)
	}
	if !verified {
		return common.ErrInvalidCredentials
	}

	if err := m.record.Write(email, secret); err != nil {
		// The record is a cache; a failed write does not invalidate the
		// verified session.
		m.log.Warn(ctx, "session record not persisted", "error", err)
	}

	m.current = m.buildSession(ctx, email, secret)
	return nil
}

// Logout clears the persisted record and unconditionally transitions to
// NoSession, discarding in-memory profile data.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.record.Clear(); err != nil {
		m.log.Warn(ctx, "session record not cleared", "error", err)
	}
	m.current = nil
}

// UpdateProfile replaces the in-memory profile of the live session. This
// mutation is deliberately not persisted here; writing to the profile table
// is the caller's separate, explicit step.
func (m *Manager) UpdateProfile(profile models.Profile) error {
	if m.current == nil {
		return common.ErrNoActiveSession
	}
	m.current.Profile = profile
	return nil
}

// ValidateRegistration checks registration input: all fields non-empty, the
// identifier shaped like local@domain.tld, and matching secret confirmation.
// No length or strength policy is applied.
func (m *Manager) ValidateRegistration(email, secret, confirmation string) bool {
	if email == "" || secret == "" || confirmation == "" {
		return false
	}
	if !emailPattern.MatchString(email) {
		return false
	}
	return secret == confirmation
}

func (m *Manager) field(get func(*Session) string) string {
	if m.current == nil {
		return Unknown
	}
	if v := get(m.current); v != "" {
		return v
	}
	return Unknown
}

// Identifier returns the live session's identifier, or Unknown.
func (m *Manager) Identifier() string {
	return m.field(func(s *Session) string { return s.Email })
}

// Secret returns the live session's secret, or Unknown.
func (m *Manager) Secret() string {
	return m.field(func(s *Session) string { return s.Secret })
}

// FirstName returns the profile's given name, or Unknown.
func (m *Manager) FirstName() string {
	return m.field(func(s *Session) string { return s.Profile.FirstName })
}

// LastName returns the profile's family name, or Unknown.
func (m *Manager) LastName() string {
	return m.field(func(s *Session) string { return s.Profile.LastName })
}

// DateOfBirth returns the profile's birth date, or the zero time.
func (m *Manager) DateOfBirth() time.Time {
	if m.current == nil {
		return time.Time{}
	}
	return m.current.Profile.DateOfBirth
}

// LivingConditions returns the profile's living conditions, or Unknown.
func (m *Manager) LivingConditions() string {
	return m.field(func(s *Session) string { return s.Profile.LivingConditions })
}

// PetExperience returns the profile's prior pet experience, or Unknown.
func (m *Manager) PetExperience() string {
	return m.field(func(s *Session) string { return s.Profile.PetExperience })
}

// Motivation returns the profile's motivation text, or Unknown.
func (m *Manager) Motivation() string {
	return m.field(func(s *Session) string { return s.Profile.Motivation })
}

// PhoneNumber returns the profile's phone number, or Unknown.
func (m *Manager) PhoneNumber() string {
	return m.field(func(s *Session) string { return s.Profile.PhoneNumber })
}
