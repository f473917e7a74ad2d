package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rzeqiri/jobportal/internal/models"
	"github.com/rzeqiri/jobportal/internal/store"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to the interactive input helpers and can be swapped
// in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// Register prompts for the sign-up fields and creates an account. A new
// session is established on success.
func (a *App) Register(ctx context.Context) error {
	fullName, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "Enter role (jobseeker/employer)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.identity.SignUp(ctx, store.SignUpParams{
		FullName: fullName,
		Email:    email,
		Password: password,
		Role:     models.Role(role),
	})
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", user.FullName))
	return nil
}

// Login prompts for credentials and signs in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.identity.SignIn(ctx, email, password)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Signed in as %s (%s)", user.FullName, a.identity.RoleOf(user)))
	return nil
}

// Logout destroys the session. Safe to call when not signed in.
func (a *App) Logout(ctx context.Context) error {
	if err := a.identity.SignOut(ctx); err != nil {
		return err
	}
	printlnFn("Signed out")
	return nil
}

// WhoAmI prints the current user and derived role.
func (a *App) WhoAmI(ctx context.Context) error {
	user := a.identity.CurrentUser(ctx)
	if user == nil {
		printlnFn("Not signed in")
		return nil
	}
	printlnFn(fmt.Sprintf("%s <%s> role=%s", user.FullName, user.Email, a.identity.RoleOf(user)))
	return nil
}

// RequestReset asks for an email and issues a reset token. The user-facing
// message never reveals whether the account exists; the token itself goes
// to the log, standing in for email delivery.
func (a *App) RequestReset(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter account email", os.Stdout)
	if err != nil {
		return err
	}
	if _, err := a.resets.Request(ctx, email); err != nil && !errors.Is(err, store.ErrValidation) {
		return err
	}
	printlnFn(store.GenericResetMessage)
	return nil
}

// ResetPassword redeems a reset token and sets a new password.
func (a *App) ResetPassword(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter reset token", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.resets.Reset(ctx, token, password); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Password reset successfully")
	return nil
}
