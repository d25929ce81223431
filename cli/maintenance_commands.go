package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/assetgrid/assetgrid/sdk"
	"github.com/assetgrid/assetgrid/sdk/api"
	"github.com/assetgrid/assetgrid/sdk/meta"
	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var maintenanceCommand = &cli.Command{
	Name:  "maintenance",
	Usage: "Manage asset maintenance records",
	Subcommands: []*cli.Command{
		{
			Name:  "create",
			Usage: "Schedule maintenance against an asset",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagAsset,
					Aliases:  []string{"a"},
					Usage:    "Schedule against the specified asset (required)",
					Required: true,
				},
				&cli.StringFlag{
					Name:     flagTitle,
					Aliases:  []string{"t"},
					Usage:    "A short summary of the work (required)",
					Required: true,
				},
				&cli.StringFlag{
					Name:  "description",
					Usage: "A longer description of the work",
				},
				&cli.TimestampFlag{
					Name:   "scheduled-for",
					Usage:  "When the work is planned to happen (RFC3339)",
					Layout: time.RFC3339,
				},
			},
			Action: maintenanceCreate,
		},
		{
			Name:  "list",
			Usage: "Retrieve an asset's maintenance records",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagAsset,
					Aliases:  []string{"a"},
					Usage:    "List records for the specified asset (required)",
					Required: true,
				},
				&cli.StringFlag{
					Name:  flagStatus,
					Usage: "Only list records with the specified status",
				},
				cliFlagOutput,
			},
			Action: maintenanceList,
		},
		{
			Name:  "complete",
			Usage: "Mark a maintenance record as completed",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagID,
					Aliases:  []string{"i"},
					Usage:    "Complete the specified record (required)",
					Required: true,
				},
			},
			Action: maintenanceComplete,
		},
		{
			Name:  "delete",
			Usage: "Delete a maintenance record",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagID,
					Aliases:  []string{"i"},
					Usage:    "Delete the specified record (required)",
					Required: true,
				},
			},
			Action: maintenanceDelete,
		},
	},
}

func maintenanceCreate(c *cli.Context) error {
	client, _, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting assetgrid client")
	}

	record := sdk.MaintenanceRecord{
		Title:        c.String(flagTitle),
		Description:  c.String("description"),
		ScheduledFor: c.Timestamp("scheduled-for"),
	}

	created, err := client.Maintenance().Create(
		c.Context,
		c.String(flagAsset),
		record,
	)
	if err != nil {
		return err
	}

	fmt.Printf("Created maintenance record %q.\n", created.ID)

	return nil
}

func maintenanceList(c *cli.Context) error {
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, _, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting assetgrid client")
	}

	selector := api.MaintenanceSelector{
		Status: sdk.MaintenanceStatus(strings.ToUpper(c.String(flagStatus))),
	}
	opts := meta.ListOptions{}

	for {
		records, err := client.Maintenance().List(
			c.Context,
			c.String(flagAsset),
			selector,
			opts,
		)
		if err != nil {
			return err
		}

		if len(records.Items) == 0 {
			fmt.Println("No maintenance records found.")
			return nil
		}

		switch strings.ToLower(output) {
		case "table":
			table := uitable.New()
			table.AddRow("ID", "TITLE", "STATUS", "SCHEDULED FOR", "COMPLETED AT")
			for _, record := range records.Items {
				table.AddRow(
					record.ID,
					record.Title,
					record.Status,
					record.ScheduledFor,
					record.CompletedAt,
				)
			}
			fmt.Println(table)
		default:
			formatted, err := formatObject(output, records)
			if err != nil {
				return err
			}
			fmt.Println(formatted)
		}

		if records.Continue == "" {
			break
		}
		opts.Continue = records.Continue
	}

	return nil
}

func maintenanceComplete(c *cli.Context) error {
	client, _, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting assetgrid client")
	}

	record, err := client.Maintenance().Complete(c.Context, c.String(flagID))
	if err != nil {
		return err
	}

	fmt.Printf("Completed maintenance record %q.\n", record.ID)

	return nil
}

func maintenanceDelete(c *cli.Context) error {
	client, _, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting assetgrid client")
	}

	id := c.String(flagID)
	if err := client.Maintenance().Delete(c.Context, id); err != nil {
		return err
	}

	fmt.Printf("Deleted maintenance record %q.\n", id)

	return nil
}
