package main

import (
	"fmt"
	"time"

	"github.com/gosuri/uitable"
	"github.com/urfave/cli/v2"
)

var sessionCommand = &cli.Command{
	Name:  "session",
	Usage: "Inspect the local session",
	Subcommands: []*cli.Command{
		{
			Name:   "status",
			Usage:  "Show the state of the persisted session",
			Action: sessionStatus,
		},
	},
}

func sessionStatus(c *cli.Context) error {
	manager, err := getSessionManager(c)
	if err != nil {
		return err
	}
	state := manager.State()

	table := uitable.New()
	table.AddRow("AUTHENTICATED", state.Authenticated)
	table.AddRow("ACCESS TOKEN", state.AccessToken != "")
	table.AddRow("REFRESH TOKEN", state.RefreshToken != "")
	if state.User != nil {
		table.AddRow("USER", state.User.Email)
	}
	if !state.ExpiresAt.IsZero() {
		table.AddRow("EXPIRES AT", state.ExpiresAt)
		if remaining := time.Until(state.ExpiresAt); remaining > 0 {
			table.AddRow("EXPIRES IN", remaining.Round(time.Second))
		} else {
			table.AddRow("EXPIRES IN", "expired")
		}
	}
	if state.Error != "" {
		table.AddRow("LAST ERROR", state.Error)
	}
	fmt.Println(table)

	return nil
}
