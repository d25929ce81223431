package main

import (
	"fmt"
	"strings"

	"github.com/assetgrid/assetgrid/sdk"
	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var privacyCommand = &cli.Command{
	Name:  "privacy",
	Usage: "Manage your privacy choices",
	Subcommands: []*cli.Command{
		{
			Name:  "get",
			Usage: "Retrieve your consent settings",
			Flags: []cli.Flag{
				cliFlagOutput,
			},
			Action: privacyGet,
		},
		{
			Name:  "set",
			Usage: "Replace your consent settings",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  flagAnalytics,
					Usage: "Consent to product analytics",
				},
				&cli.BoolFlag{
					Name:  flagMarketing,
					Usage: "Consent to marketing communications",
				},
			},
			Action: privacySet,
		},
	},
}

func privacyGet(c *cli.Context) error {
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, _, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting assetgrid client")
	}

	consent, err := client.Privacy().GetConsent(c.Context)
	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ANALYTICS", "MARKETING", "UPDATED AT")
		table.AddRow(consent.Analytics, consent.Marketing, consent.UpdatedAt)
		fmt.Println(table)
	default:
		formatted, err := formatObject(output, consent)
		if err != nil {
			return err
		}
		fmt.Println(formatted)
	}

	return nil
}

func privacySet(c *cli.Context) error {
	client, _, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting assetgrid client")
	}

	consent := sdk.ConsentSettings{
		Analytics: c.Bool(flagAnalytics),
		Marketing: c.Bool(flagMarketing),
	}

	if _, err := client.Privacy().UpdateConsent(c.Context, consent); err != nil {
		return err
	}

	fmt.Println("Updated consent settings.")

	return nil
}
