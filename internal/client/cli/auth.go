package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/bookswap/internal/client/api"
)

func (a *App) login(ctx context.Context, _ []string) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		switch {
		case errors.Is(err, api.ErrUnavailable):
			printlnFn("Server unavailable, try again later.")
		case errors.Is(err, api.ErrUnauthorized):
			printlnFn("Wrong email or password.")
		default:
			return err
		}
		return nil
	}
	printlnFn("Logged in.")
	return nil
}

func (a *App) register(ctx context.Context, _ []string) error {
	username, err := GetSimpleText(a.reader, "Pick a username", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.session.Register(ctx, username, email, string(password)); err != nil {
		return err
	}
	printlnFn("Account created, you are signed in. Run 'onboard' to set up your profile.")
	return nil
}

func (a *App) logout(ctx context.Context, _ []string) error {
	a.session.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}

func (a *App) whoami(_ context.Context, _ []string) error {
	claims, ok := a.session.TokenClaims()
	if !ok {
		printlnFn("Not signed in.")
		return nil
	}
	printlnFn("Signed in as:", claims.Subject)
	if !claims.ExpiresAt.IsZero() {
		printlnFn("Token expires:", claims.ExpiresAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}
