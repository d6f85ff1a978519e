package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmikhr/stylecart/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an email and password and attempts to create a new
// account. Registration never establishes a session; the user logs in
// afterwards. The password buffer is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Register(ctx, email, password); err != nil {
		return err
	}

	fmt.Println("Registered! Now login.")
	return nil
}

// Login prompts for credentials and authenticates. On success the session
// manager has already fetched the identity with the freshly issued token.
// The password buffer is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, password); err != nil {
		return err
	}

	fmt.Printf("Logged in as %s\n", a.session.Identity().Email)
	return nil
}

// Logout clears the session and everything that depends on it.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.tearDownSession()
	fmt.Println("Logged out")
	return nil
}

// Me refreshes and prints the current identity. A failed fetch is treated
// as auth expiry: the session manager tore itself down, and the dependent
// cart and order history are cleared here.
func (a *App) Me(ctx context.Context) error {
	identity, err := a.session.FetchIdentity(ctx, "")
	if err != nil {
		if errors.Is(err, common.ErrAuthExpired) {
			a.tearDownSession()
		}
		return err
	}

	fmt.Printf("Email: %s\nRole:  %s\n", identity.Email, identity.Role)
	return nil
}
