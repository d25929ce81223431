package main

import (
	"fmt"
	"strings"

	"github.com/assetgrid/assetgrid/sdk/api"
	"github.com/assetgrid/assetgrid/sdk/meta"
	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var userCommand = &cli.Command{
	Name:  "user",
	Usage: "Manage users",
	Subcommands: []*cli.Command{
		{
			Name:  "get",
			Usage: "Retrieve a user",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagID,
					Aliases:  []string{"i"},
					Usage:    "Retrieve the specified user (required)",
					Required: true,
				},
				cliFlagOutput,
			},
			Action: userGet,
		},
		{
			Name:  "list",
			Usage: "Retrieve many users",
			Flags: []cli.Flag{
				cliFlagOutput,
			},
			Action: userList,
		},
		{
			Name:  "lock",
			Usage: "Lock a user out of AssetGrid",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagID,
					Aliases:  []string{"i"},
					Usage:    "Lock the specified user (required)",
					Required: true,
				},
			},
			Action: userLock,
		},
		{
			Name:  "unlock",
			Usage: "Restore a user's access to AssetGrid",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagID,
					Aliases:  []string{"i"},
					Usage:    "Unlock the specified user (required)",
					Required: true,
				},
			},
			Action: userUnlock,
		},
	},
}

func userGet(c *cli.Context) error {
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, _, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting assetgrid client")
	}

	user, err := client.Users().Get(c.Context, c.String(flagID))
	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "NAME", "EMAIL", "ROLE", "LOCKED?")
		table.AddRow(user.ID, user.Name, user.Email, user.Role, user.Locked != nil)
		fmt.Println(table)
	default:
		formatted, err := formatObject(output, user)
		if err != nil {
			return err
		}
		fmt.Println(formatted)
	}

	return nil
}

func userList(c *cli.Context) error {
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, _, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting assetgrid client")
	}

	opts := meta.ListOptions{}

	for {
		users, err := client.Users().List(c.Context, api.UsersSelector{}, opts)
		if err != nil {
			return err
		}

		if len(users.Items) == 0 {
			fmt.Println("No users found.")
			return nil
		}

		switch strings.ToLower(output) {
		case "table":
			table := uitable.New()
			table.AddRow("ID", "NAME", "EMAIL", "ROLE", "LOCKED?")
			for _, user := range users.Items {
				table.AddRow(
					user.ID,
					user.Name,
					user.Email,
					user.Role,
					user.Locked != nil,
				)
			}
			fmt.Println(table)
		default:
			formatted, err := formatObject(output, users)
			if err != nil {
				return err
			}
			fmt.Println(formatted)
		}

		if users.Continue == "" {
			break
		}
		opts.Continue = users.Continue
	}

	return nil
}

func userLock(c *cli.Context) error {
	client, _, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting assetgrid client")
	}

	id := c.String(flagID)
	if err := client.Users().Lock(c.Context, id); err != nil {
		return err
	}

	fmt.Printf("Locked user %q.\n", id)

	return nil
}

func userUnlock(c *cli.Context) error {
	client, _, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting assetgrid client")
	}

	id := c.String(flagID)
	if err := client.Users().Unlock(c.Context, id); err != nil {
		return err
	}

	fmt.Printf("Unlocked user %q.\n", id)

	return nil
}
