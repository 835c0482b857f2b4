package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcorbu/shelterdesk/internal/common"
	"github.com/mcorbu/shelterdesk/internal/logging"
	"github.com/mcorbu/shelterdesk/internal/models"
)

// fakeCreds implements CredentialVerifier over a fixed credential set.
type fakeCreds struct {
	secrets  map[string]string
	profiles map[string]*models.Profile

	verifyErr  error
	profileErr error

	verifyCalls int
}

func (f *fakeCreds) Verify(ctx context.Context, email, secret string) (bool, error) {
	f.verifyCalls++
	if f.verifyErr != nil {
		return false, f.verifyErr
	}
	want, ok := f.secrets[email]
	return ok && want == secret, nil
}

func (f *fakeCreds) FetchProfile(ctx context.Context, email string) (*models.Profile, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profiles[email], nil
}

func newManager(t *testing.T, creds *fakeCreds) *Manager {
	t.Helper()
	if creds.secrets == nil {
		creds.secrets = map[string]string{}
	}
	if creds.profiles == nil {
		creds.profiles = map[string]*models.Profile{}
	}
	path := filepath.Join(t.TempDir(), "session.txt")
	return NewManager(creds, path, logging.NewDiscard())
}

func TestLogin_Success(t *testing.T) {
	creds := &fakeCreds{
		secrets:  map[string]string{"a@b.com": "p"},
		profiles: map[string]*models.Profile{"a@b.com": {FirstName: "Ana"}},
	}
	m := newManager(t, creds)
	ctx := context.Background()

	require.NoError(t, m.Login(ctx, "a@b.com", "p"))
	require.True(t, m.Active())
	assert.Equal(t, "a@b.com", m.Identifier())
	assert.Equal(t, "Ana", m.FirstName())
}

func TestLogin_InvalidCredentialsStaysNoSession(t *testing.T) {
	m := newManager(t, &fakeCreds{secrets: map[string]string{"u@x.com": "pw"}})
	ctx := context.Background()

	err := m.Login(ctx, "u@x.com", "wrong")
	require.True(t, errors.Is(err, common.ErrInvalidCredentials))
	require.False(t, m.Active())
	assert.Equal(t, Unknown, m.Identifier(), "accessor returns the sentinel, not an error")
}

func TestLogin_ProfileFallsBackToIdentifierOnly(t *testing.T) {
	m := newManager(t, &fakeCreds{secrets: map[string]string{"new@b.com": "p"}})
	ctx := context.Background()

	require.NoError(t, m.Login(ctx, "new@b.com", "p"))
	assert.Equal(t, "new@b.com", m.Identifier())
	assert.Equal(t, Unknown, m.FirstName())
	assert.True(t, m.DateOfBirth().IsZero())
}

func TestRestore_AfterLogin(t *testing.T) {
	creds := &fakeCreds{secrets: map[string]string{"a@b.com": "p"}}
	m := newManager(t, creds)
	ctx := context.Background()

	require.NoError(t, m.Login(ctx, "a@b.com", "p"))

	// Simulate a process restart: a fresh manager over the same record file.
	m2 := NewManager(creds, m.record.path, logging.NewDiscard())
	require.True(t, m2.Restore(ctx))
	assert.Equal(t, "a@b.com", m2.Identifier())
}

func TestRestore_AfterLogoutReturnsFalse(t *testing.T) {
	creds := &fakeCreds{secrets: map[string]string{"a@b.com": "p"}}
	m := newManager(t, creds)
	ctx := context.Background()

	require.NoError(t, m.Login(ctx, "a@b.com", "p"))
	m.Logout(ctx)
	require.False(t, m.Active())

	m2 := NewManager(creds, m.record.path, logging.NewDiscard())
	require.False(t, m2.Restore(ctx))
	assert.Equal(t, Unknown, m2.Identifier())
}

func TestRestore_AbsentRecord(t *testing.T) {
	creds := &fakeCreds{}
	m := newManager(t, creds)

	require.False(t, m.Restore(context.Background()))
	assert.Zero(t, creds.verifyCalls, "absent record must not hit the store")
}

func TestRestore_StaleRecordIsCleared(t *testing.T) {
	creds := &fakeCreds{secrets: map[string]string{"a@b.com": "p"}}
	m := newManager(t, creds)
	ctx := context.Background()

	require.NoError(t, m.record.Write("a@b.com", "revoked"))
	require.False(t, m.Restore(ctx))

	_, _, ok := m.record.Read()
	require.False(t, ok, "record with failed verification must be cleared")
}

func TestRestore_StoreErrorKeepsRecord(t *testing.T) {
	creds := &fakeCreds{verifyErr: errors.New("store down")}
	m := newManager(t, creds)
	ctx := context.Background()

	require.NoError(t, m.record.Write("a@b.com", "p"))
	require.False(t, m.Restore(ctx))

	_, _, ok := m.record.Read()
	require.True(t, ok, "an unreachable store must not discard the cached record")
}

func TestLogin_WhileActiveRefreshes(t *testing.T) {
	creds := &fakeCreds{secrets: map[string]string{"a@b.com": "p", "c@d.com": "q"}}
	m := newManager(t, creds)
	ctx := context.Background()

	require.NoError(t, m.Login(ctx, "a@b.com", "p"))
	require.NoError(t, m.Login(ctx, "c@d.com", "q"))

	assert.Equal(t, "c@d.com", m.Identifier())
	id, _, ok := m.record.Read()
	require.True(t, ok)
	assert.Equal(t, "c@d.com", id, "persisted record is overwritten on re-login")
}

func TestUpdateProfile(t *testing.T) {
	creds := &fakeCreds{secrets: map[string]string{"a@b.com": "p"}}
	m := newManager(t, creds)
	ctx := context.Background()

	err := m.UpdateProfile(models.Profile{FirstName: "Ana"})
	require.True(t, errors.Is(err, common.ErrNoActiveSession))

	require.NoError(t, m.Login(ctx, "a@b.com", "p"))
	dob := time.Date(1994, 6, 12, 0, 0, 0, 0, time.UTC)
	require.NoError(t, m.UpdateProfile(models.Profile{FirstName: "Ana", DateOfBirth: dob}))

	assert.Equal(t, "Ana", m.FirstName())
	assert.True(t, dob.Equal(m.DateOfBirth()))
}

func TestLogout_DiscardsProfileData(t *testing.T) {
	creds := &fakeCreds{
		secrets:  map[string]string{"a@b.com": "p"},
		profiles: map[string]*models.Profile{"a@b.com": {FirstName: "Ana", PhoneNumber: "0700"}},
	}
	m := newManager(t, creds)
	ctx := context.Background()

	require.NoError(t, m.Login(ctx, "a@b.com", "p"))
	m.Logout(ctx)

	assert.Nil(t, m.Current())
	assert.Equal(t, Unknown, m.FirstName())
	assert.Equal(t, Unknown, m.PhoneNumber())
	assert.Equal(t, Unknown, m.Secret())
}

func TestValidateRegistration(t *testing.T) {
	m := newManager(t, &fakeCreds{})

	tests := []struct {
		name                        string
		email, secret, confirmation string
		want                        bool
	}{
		{"valid", "a@b.com", "p", "p", true},
		{"bad email shape", "bad-email", "p", "p", false},
		{"mismatched confirmation", "a@b.com", "p", "q", false},
		{"empty email", "", "p", "p", false},
		{"empty secret", "a@b.com", "", "", false},
		{"domain without dot", "a@bcom", "p", "p", false},
		{"missing local part", "@b.com", "p", "p", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.ValidateRegistration(tt.email, tt.secret, tt.confirmation))
		})
	}
}
