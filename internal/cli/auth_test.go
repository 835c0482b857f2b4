package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcorbu/shelterdesk/internal/common"
	"github.com/mcorbu/shelterdesk/internal/credstore"
	"github.com/mcorbu/shelterdesk/internal/logging"
	"github.com/mcorbu/shelterdesk/internal/models"
	"github.com/mcorbu/shelterdesk/internal/session"
)

// fakeCredRepo keeps credentials and profiles in maps.
type fakeCredRepo struct {
	creds    map[string]models.Credential
	profiles map[string]models.Profile
}

func newFakeCredRepo() *fakeCredRepo {
	return &fakeCredRepo{creds: map[string]models.Credential{}, profiles: map[string]models.Profile{}}
}

func (f *fakeCredRepo) FindCredential(ctx context.Context, email string) (*models.Credential, error) {
	c, ok := f.creds[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &c, nil
}

func (f *fakeCredRepo) InsertCredential(ctx context.Context, cred *models.Credential) error {
	f.creds[cred.Email] = *cred
	return nil
}

func (f *fakeCredRepo) FindProfile(ctx context.Context, email string) (*models.Profile, error) {
	p, ok := f.profiles[email]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeCredRepo) UpdateProfile(ctx context.Context, email string, profile *models.Profile) error {
	f.profiles[email] = *profile
	return nil
}

func stubInputs(t *testing.T, text string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return text, nil }
	getPassword = func(_ string, _ io.Writer) ([]byte, error) { return append([]byte(nil), password...), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func newTestApp(t *testing.T) (*App, *bytes.Buffer, *fakeCredRepo) {
	t.Helper()
	repo := newFakeCredRepo()
	log := logging.NewDiscard()
	creds := credstore.NewService(repo, log)
	sessions := session.NewManager(creds, filepath.Join(t.TempDir(), "session.txt"), log)

	var out bytes.Buffer
	app := &App{sessions: sessions, creds: creds, log: log, out: &out}
	return app, &out, repo
}

func TestRegisterThenLogin(t *testing.T) {
	app, out, repo := newTestApp(t)
	ctx := context.Background()

	stubInputs(t, "ana@example.com", []byte("secret"))

	require.NoError(t, app.Register(ctx))
	require.Contains(t, out.String(), "Account created")
	require.Contains(t, repo.creds, "ana@example.com")

	require.NoError(t, app.Login(ctx))
	require.True(t, app.isLoggedIn())
}

func TestRegister_DuplicateEmail(t *testing.T) {
	app, out, _ := newTestApp(t)
	ctx := context.Background()

	stubInputs(t, "ana@example.com", []byte("secret"))

	require.NoError(t, app.Register(ctx))
	require.NoError(t, app.Register(ctx))
	require.Contains(t, out.String(), "already exists")
}

func TestRegister_InvalidEmailShape(t *testing.T) {
	app, out, repo := newTestApp(t)

	stubInputs(t, "not-an-email", []byte("secret"))

	require.NoError(t, app.Register(context.Background()))
	require.Contains(t, out.String(), "Registration rejected")
	require.Empty(t, repo.creds)
}

func TestLogin_WrongPassword(t *testing.T) {
	app, out, _ := newTestApp(t)
	ctx := context.Background()

	stubInputs(t, "ana@example.com", []byte("secret"))
	require.NoError(t, app.Register(ctx))

	stubInputs(t, "ana@example.com", []byte("wrong"))
	require.NoError(t, app.Login(ctx))

	require.Contains(t, out.String(), "Invalid email or password")
	require.False(t, app.isLoggedIn())
}

func TestLogout(t *testing.T) {
	app, out, _ := newTestApp(t)
	ctx := context.Background()

	stubInputs(t, "ana@example.com", []byte("secret"))
	require.NoError(t, app.Register(ctx))
	require.NoError(t, app.Login(ctx))

	require.NoError(t, app.Logout(ctx))
	require.False(t, app.isLoggedIn())
	require.Contains(t, out.String(), "Logged out")
}
