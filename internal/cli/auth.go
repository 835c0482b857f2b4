package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mcorbu/shelterdesk/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an email and a password with confirmation, validates
// the trio, and creates the account. The new account is not logged in
// automatically.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.Wipe(password)

	confirmation, err := getPassword("Repeat password", a.out)
	if err != nil {
		return err
	}
	defer common.Wipe(confirmation)

	if !a.sessions.ValidateRegistration(email, string(password), string(confirmation)) {
		fmt.Fprintln(a.out, "Registration rejected: check the email shape and that both passwords match.")
		return nil
	}

	if err := a.creds.Register(ctx, email, string(password)); err != nil {
		if errors.Is(err, common.ErrDuplicateIdentifier) {
			fmt.Fprintln(a.out, "An account with this email already exists.")
			return nil
		}
		return err
	}

	fmt.Fprintln(a.out, "Account created. Use 'login' to sign in.")
	return nil
}

// Login prompts for credentials and authenticates through the session
// manager, which persists the session record on success.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.Wipe(password)

	if err := a.sessions.Login(ctx, email, string(password)); err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			fmt.Fprintln(a.out, "Invalid email or password.")
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", a.sessions.FirstName())
	return nil
}

// Logout clears the persisted record and drops the in-memory session.
func (a *App) Logout(ctx context.Context) error {
	a.sessions.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
