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

var categoryCommand = &cli.Command{
	Name:  "category",
	Usage: "Manage asset categories",
	Subcommands: []*cli.Command{
		{
			Name: "create",
			Usage: "Create a category from a JSON or YAML definition file " +
				"(one argument)",
			Action: categoryCreate,
		},
		{
			Name:  "get",
			Usage: "Retrieve a category",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagID,
					Aliases:  []string{"i"},
					Usage:    "Retrieve the specified category (required)",
					Required: true,
				},
				cliFlagOutput,
			},
			Action: categoryGet,
		},
		{
			Name:  "list",
			Usage: "Retrieve many categories",
			Flags: []cli.Flag{
				cliFlagOutput,
			},
			Action: categoryList,
		},
		{
			Name:  "delete",
			Usage: "Delete a category",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagID,
					Aliases:  []string{"i"},
					Usage:    "Delete the specified category (required)",
					Required: true,
				},
			},
			Action: categoryDelete,
		},
	},
}

func categoryCreate(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return errors.New(
			"category create requires one argument-- a path to a file " +
				"containing a category definition",
		)
	}

	category := sdk.Category{}
	if err := readDefinitionFile(
		c.Args().Get(0),
		categorySchema,
		&category,
	); err != nil {
		return err
	}

	client, _, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting assetgrid client")
	}

	created, err := client.Categories().Create(c.Context, category)
	if err != nil {
		return err
	}

	fmt.Printf("Created category %q.\n", created.ID)

	return nil
}

func categoryGet(c *cli.Context) error {
	output := c.String(flagOutput)
	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, _, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting assetgrid client")
	}

	category, err := client.Categories().Get(c.Context, c.String(flagID))
	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "NAME", "DESCRIPTION")
		table.AddRow(category.ID, category.Name, category.Description)
		fmt.Println(table)
	default:
		formatted, err := formatObject(output, category)
		if err != nil {
			return err
		}
		fmt.Println(formatted)
	}

	return nil
}

func categoryList(c *cli.Context) error {
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
		categories, err := client.Categories().List(
			c.Context,
			api.CategoriesSelector{},
			opts,
		)
		if err != nil {
			return err
		}

		if len(categories.Items) == 0 {
			fmt.Println("No categories found.")
			return nil
		}

		switch strings.ToLower(output) {
		case "table":
			table := uitable.New()
			table.AddRow("ID", "NAME", "DESCRIPTION")
			for _, category := range categories.Items {
				table.AddRow(category.ID, category.Name, category.Description)
			}
			fmt.Println(table)
		default:
			formatted, err := formatObject(output, categories)
			if err != nil {
				return err
			}
			fmt.Println(formatted)
		}

		if categories.Continue == "" {
			break
		}
		opts.Continue = categories.Continue
	}

	return nil
}

func categoryDelete(c *cli.Context) error {
	client, _, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting assetgrid client")
	}

	id := c.String(flagID)
	if err := client.Categories().Delete(c.Context, id); err != nil {
		return err
	}

	fmt.Printf("Deleted category %q.\n", id)

	return nil
}
