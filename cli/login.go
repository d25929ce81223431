package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var loginCommand = &cli.Command{
	Name:  "login",
	Usage: "Log in to AssetGrid",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    flagServer,
			Aliases: []string{"s"},
			Usage: "Log in to the API server at the specified address; " +
				"defaults to the previously used address",
		},
		&cli.StringFlag{
			Name:    flagUsername,
			Aliases: []string{"u"},
			Usage:   "Log in as the specified user; prompted for if not set",
		},
		&cli.StringFlag{
			Name:    flagPassword,
			Aliases: []string{"p"},
			Usage: "Log in with the specified password; prompted for if not " +
				"set (recommended)",
		},
	},
	Action: login,
}

func login(c *cli.Context) error {
	apiAddress := c.String(flagServer)
	if apiAddress == "" {
		existing, err := getConfig()
		if err != nil {
			return err
		}
		apiAddress = existing.APIAddress
	}

	username := c.String(flagUsername)
	if username == "" {
		if err := survey.AskOne(
			&survey.Input{Message: "Username"},
			&username,
			survey.WithValidator(survey.Required),
		); err != nil {
			return err
		}
	}
	password := c.String(flagPassword)
	if password == "" {
		if err := survey.AskOne(
			&survey.Password{Message: "Password"},
			&password,
			survey.WithValidator(survey.Required),
		); err != nil {
			return err
		}
	}

	if err := saveConfig(&config{APIAddress: apiAddress}); err != nil {
		return errors.Wrap(err, "error persisting configuration")
	}

	manager, err := newSessionManager(c, apiAddress)
	if err != nil {
		return err
	}
	if err := manager.Login(c.Context, username, password); err != nil {
		return err
	}

	fmt.Println("Login was successful.")

	return nil
}
