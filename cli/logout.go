package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var logoutCommand = &cli.Command{
	Name:   "logout",
	Usage:  "Log out of AssetGrid",
	Action: logout,
}

func logout(c *cli.Context) error {
	if c.Args().Len() != 0 {
		return errors.New("logout requires no arguments")
	}

	manager, err := getSessionManager(c)
	if err != nil {
		return err
	}

	// Even if the refresh token can't be invalidated server-side, local
	// session state is always destroyed.
	manager.Logout(c.Context)

	fmt.Println("Logout was successful.")

	return nil
}
