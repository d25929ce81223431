package main

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var whoamiCommand = &cli.Command{
	Name:   "whoami",
	Usage:  "Show the currently signed-in user",
	Action: whoami,
}

func whoami(c *cli.Context) error {
	manager, err := getSessionManager(c)
	if err != nil {
		return err
	}
	state := manager.State()
	if !state.Authenticated || state.User == nil {
		return errors.New(
			"you are not logged in; please use `assetgrid login` to continue",
		)
	}

	table := uitable.New()
	table.AddRow("NAME", state.User.Name)
	table.AddRow("EMAIL", state.User.Email)
	if state.User.Role != "" {
		table.AddRow("ROLE", state.User.Role)
	}
	// When the access token is a JWT we can show a little more about it.
	// Verification is the server's job; this is display only.
	if claims := decodeTokenClaims(state.AccessToken); claims != nil {
		if sub, err := claims.GetSubject(); err == nil && sub != "" {
			table.AddRow("TOKEN SUBJECT", sub)
		}
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			table.AddRow("TOKEN EXPIRES", exp.Time)
		}
	} else if !state.ExpiresAt.IsZero() {
		table.AddRow("TOKEN EXPIRES", state.ExpiresAt)
	}
	fmt.Println(table)

	return nil
}

func decodeTokenClaims(token string) jwt.MapClaims {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	return claims
}
