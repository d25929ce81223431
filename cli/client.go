package main

import (
	"crypto/tls"
	"net/http"
	"os"

	"github.com/assetgrid/assetgrid/sdk/api"
	"github.com/assetgrid/assetgrid/sdk/session"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// getSessionManager assembles the session manager against the configured API
// address and hydrates it from disk. The auth endpoints client deliberately
// uses an undecorated HTTP client-- the manager itself is what mints and
// retires credentials.
func getSessionManager(c *cli.Context) (*session.Manager, error) {
	config, err := getConfig()
	if err != nil {
		return nil, errors.Wrap(err, "error retrieving configuration")
	}
	return newSessionManager(c, config.APIAddress)
}

func newSessionManager(
	c *cli.Context,
	apiAddress string,
) (*session.Manager, error) {
	assetgridHome, err := getAssetgridHome()
	if err != nil {
		return nil, errors.Wrap(err, "error finding assetgrid home")
	}
	logger, err := getLogger()
	if err != nil {
		return nil, err
	}
	manager := session.NewManager(
		session.ManagerConfig{
			Endpoints: api.NewSessionsClient(
				apiAddress,
				&http.Client{Transport: baseTransport(c.Bool(flagInsecure))},
			),
			Store:  session.NewFileStore(assetgridHome),
			Logger: &logger,
		},
	)
	if err := manager.Init(c.Context); err != nil {
		return nil, errors.Wrap(err, "error restoring session")
	}
	return manager, nil
}

// getClient returns an API client whose every request carries the session's
// bearer token and correlation id, with silent refresh-and-retry on
// authorization failures.
func getClient(c *cli.Context) (api.Client, *session.Manager, error) {
	config, err := getConfig()
	if err != nil {
		return nil, nil, errors.Wrap(err, "error retrieving configuration")
	}
	manager, err := newSessionManager(c, config.APIAddress)
	if err != nil {
		return nil, nil, err
	}
	logger, err := getLogger()
	if err != nil {
		return nil, nil, err
	}
	httpClient := &http.Client{
		Transport: session.NewTransport(
			session.TransportConfig{
				Manager: manager,
				Base:    baseTransport(c.Bool(flagInsecure)),
				Logger:  &logger,
			},
		),
	}
	return api.NewClient(config.APIAddress, httpClient), manager, nil
}

func baseTransport(allowInsecure bool) http.RoundTripper {
	return &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: allowInsecure, // nolint: gosec
		},
	}
}

func getLogger() (zerolog.Logger, error) {
	env, err := getEnvOverrides()
	if err != nil {
		return zerolog.Nop(), err
	}
	level, err := zerolog.ParseLevel(env.LogLevel)
	if err != nil {
		return zerolog.Nop(), errors.Wrapf(
			err,
			"unknown log level %q",
			env.LogLevel,
		)
	}
	return zerolog.New(
		zerolog.ConsoleWriter{Out: os.Stderr},
	).Level(level).With().Timestamp().Logger(), nil
}
