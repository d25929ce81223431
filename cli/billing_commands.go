package main

import (
	"fmt"
	"strings"

	"github.com/assetgrid/assetgrid/sdk/meta"
	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var billingCommand = &cli.Command{
	Name:  "billing",
	Usage: "Inspect the organization's subscription and invoices",
	Subcommands: []*cli.Command{
		{
			Name:  "subscription",
			Usage: "Retrieve the organization's subscription",
			Flags: []cli.Flag{
				cliFlagOutput,
			},
			Action: billingSubscription,
		},
		{
			Name:  "invoices",
			Usage: "Retrieve the organization's invoices",
			Flags: []cli.Flag{
				cliFlagOutput,
			},
			Action: billingInvoices,
		},
	},
}

func billingSubscription(c *cli.Context) error {
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, _, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting assetgrid client")
	}

	subscription, err := client.Billing().GetSubscription(c.Context)
	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("PLAN", "STATUS", "SEATS", "RENEWS AT")
		table.AddRow(
			subscription.Plan,
			subscription.Status,
			subscription.Seats,
			subscription.RenewsAt,
		)
		fmt.Println(table)
	default:
		formatted, err := formatObject(output, subscription)
		if err != nil {
			return err
		}
		fmt.Println(formatted)
	}

	return nil
}

func billingInvoices(c *cli.Context) error {
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
		invoices, err := client.Billing().ListInvoices(c.Context, opts)
		if err != nil {
			return err
		}

		if len(invoices.Items) == 0 {
			fmt.Println("No invoices found.")
			return nil
		}

		switch strings.ToLower(output) {
		case "table":
			table := uitable.New()
			table.AddRow("NUMBER", "AMOUNT", "CURRENCY", "ISSUED AT", "PAID?")
			for _, invoice := range invoices.Items {
				table.AddRow(
					invoice.Number,
					invoice.Amount,
					invoice.Currency,
					invoice.IssuedAt,
					invoice.PaidAt != nil,
				)
			}
			fmt.Println(table)
		default:
			formatted, err := formatObject(output, invoices)
			if err != nil {
				return err
			}
			fmt.Println(formatted)
		}

		if invoices.Continue == "" {
			break
		}
		opts.Continue = invoices.Continue
	}

	return nil
}
