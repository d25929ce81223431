package main

import (
	"fmt"
	"strings"

	"github.com/assetgrid/assetgrid/sdk"
	"github.com/assetgrid/assetgrid/sdk/api"
	"github.com/assetgrid/assetgrid/sdk/meta"
	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var assetCommand = &cli.Command{
	Name:  "asset",
	Usage: "Manage assets",
	Subcommands: []*cli.Command{
		{
			Name: "create",
			Usage: "Create an asset from a JSON or YAML definition file " +
				"(one argument)",
			Action: assetCreate,
		},
		{
			Name:  "get",
			Usage: "Retrieve an asset",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagID,
					Aliases:  []string{"i"},
					Usage:    "Retrieve the specified asset (required)",
					Required: true,
				},
				cliFlagOutput,
			},
			Action: assetGet,
		},
		{
			Name:  "list",
			Usage: "Retrieve many assets",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    flagCategory,
					Aliases: []string{"c"},
					Usage:   "Only list assets in the specified category",
				},
				&cli.StringFlag{
					Name:  flagStatus,
					Usage: "Only list assets with the specified status",
				},
				cliFlagOutput,
			},
			Action: assetList,
		},
		{
			Name: "update",
			Usage: "Update an asset from a JSON or YAML definition file " +
				"(one argument)",
			Action: assetUpdate,
		},
		{
			Name:  "delete",
			Usage: "Delete an asset",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagID,
					Aliases:  []string{"i"},
					Usage:    "Delete the specified asset (required)",
					Required: true,
				},
			},
			Action: assetDelete,
		},
	},
}

func assetCreate(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return errors.New(
			"asset create requires one argument-- a path to a file containing " +
				"an asset definition",
		)
	}

	asset := sdk.Asset{}
	if err := readDefinitionFile(c.Args().Get(0), assetSchema, &asset); err != nil {
		return err
	}

	client, _, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting assetgrid client")
	}

	created, err := client.Assets().Create(c.Context, asset)
	if err != nil {
		return err
	}

	fmt.Printf("Created asset %q.\n", created.ID)

	return nil
}

func assetGet(c *cli.Context) error {
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, _, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting assetgrid client")
	}

	asset, err := client.Assets().Get(c.Context, c.String(flagID))
	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "NAME", "TAG", "CATEGORY", "STATUS", "ASSIGNED TO")
		table.AddRow(
			asset.ID,
			asset.Name,
			asset.Tag,
			asset.CategoryID,
			asset.Status,
			asset.AssignedTo,
		)
		fmt.Println(table)
	default:
		formatted, err := formatObject(output, asset)
		if err != nil {
			return err
		}
		fmt.Println(formatted)
	}

	return nil
}

func assetList(c *cli.Context) error {
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, _, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting assetgrid client")
	}

	selector := api.AssetsSelector{
		CategoryID: c.String(flagCategory),
		Status:     sdk.AssetStatus(strings.ToUpper(c.String(flagStatus))),
	}
	opts := meta.ListOptions{}

	for {
		assets, err := client.Assets().List(c.Context, selector, opts)
		if err != nil {
			return err
		}

		if len(assets.Items) == 0 {
			fmt.Println("No assets found.")
			return nil
		}

		switch strings.ToLower(output) {
		case "table":
			table := uitable.New()
			table.AddRow("ID", "NAME", "TAG", "CATEGORY", "STATUS", "ASSIGNED TO")
			for _, asset := range assets.Items {
				table.AddRow(
					asset.ID,
					asset.Name,
					asset.Tag,
					asset.CategoryID,
					asset.Status,
					asset.AssignedTo,
				)
			}
			fmt.Println(table)
		default:
			formatted, err := formatObject(output, assets)
			if err != nil {
				return err
			}
			fmt.Println(formatted)
		}

		if assets.Continue == "" {
			break
		}
		opts.Continue = assets.Continue
	}

	return nil
}

func assetUpdate(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return errors.New(
			"asset update requires one argument-- a path to a file containing " +
				"an asset definition",
		)
	}

	asset := sdk.Asset{}
	if err := readDefinitionFile(c.Args().Get(0), assetSchema, &asset); err != nil {
		return err
	}
	if asset.ID == "" {
		return errors.New("the asset definition does not specify metadata.id")
	}

	client, _, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting assetgrid client")
	}

	updated, err := client.Assets().Update(c.Context, asset)
	if err != nil {
		return err
	}

	fmt.Printf("Updated asset %q.\n", updated.ID)

	return nil
}

func assetDelete(c *cli.Context) error {
	client, _, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting assetgrid client")
	}

	id := c.String(flagID)
	if err := client.Assets().Delete(c.Context, id); err != nil {
		return err
	}

	fmt.Printf("Deleted asset %q.\n", id)

	return nil
}
