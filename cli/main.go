package main

import (
	stderrors "errors"
	"fmt"
	"net/url"
	"os"

	"github.com/assetgrid/assetgrid/internal/signals"
	"github.com/assetgrid/assetgrid/internal/version"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	// A .env file, when present, supplements the real environment. Useful in
	// development; harmless otherwise.
	godotenv.Load() // nolint: errcheck

	app := cli.NewApp()
	app.Name = "assetgrid"
	app.Usage = "Manage IT assets from the command line"
	app.Version = fmt.Sprintf(
		"%s -- commit %s",
		version.Version(),
		version.Commit(),
	)
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    flagInsecure,
			Aliases: []string{"k"},
			Usage:   "Allow insecure API server connections when using TLS",
		},
	}
	app.Commands = []*cli.Command{
		assetCommand,
		billingCommand,
		categoryCommand,
		loginCommand,
		logoutCommand,
		maintenanceCommand,
		privacyCommand,
		sessionCommand,
		userCommand,
		whoamiCommand,
	}
	fmt.Println()
	if err := app.RunContext(signals.Context(), os.Args); err != nil {
		fmt.Printf("\n%s\n\n", friendlyError(err))
		os.Exit(1)
	}
	fmt.Println()
}

// friendlyError turns connectivity trouble into a message a person can act
// on; anything else passes through untouched.
func friendlyError(err error) error {
	var urlErr *url.Error
	if stderrors.As(err, &urlErr) {
		return stderrors.New(
			"could not reach the AssetGrid API; check your connection and try again",
		)
	}
	return err
}
