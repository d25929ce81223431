package main

import (
	"encoding/json"
	"os"
	"path"

	"github.com/assetgrid/assetgrid/internal/file"
	"github.com/kelseyhightower/envconfig"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

type config struct {
	APIAddress string `json:"apiAddress"`
}

// envOverrides are read from the environment (or a .env file) and take
// precedence over the config file.
type envOverrides struct {
	APIAddress string `envconfig:"API_ADDRESS"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"warn"`
}

func getEnvOverrides() (envOverrides, error) {
	env := envOverrides{}
	if err := envconfig.Process("assetgrid", &env); err != nil {
		return env, errors.Wrap(err, "error reading environment overrides")
	}
	return env, nil
}

func getConfig() (*config, error) {
	env, err := getEnvOverrides()
	if err != nil {
		return nil, err
	}

	assetgridHome, err := getAssetgridHome()
	if err != nil {
		return nil, errors.Wrapf(err, "error finding assetgrid home")
	}
	assetgridConfigFile := path.Join(assetgridHome, "config")

	config := &config{}
	if file.Exists(assetgridConfigFile) {
		configBytes, err := os.ReadFile(assetgridConfigFile)
		if err != nil {
			return nil, errors.Wrapf(
				err,
				"error reading assetgrid config file at %s",
				assetgridConfigFile,
			)
		}
		if err := json.Unmarshal(configBytes, config); err != nil {
			return nil, errors.Wrapf(
				err,
				"error parsing assetgrid config file at %s",
				assetgridConfigFile,
			)
		}
	}

	if env.APIAddress != "" {
		config.APIAddress = env.APIAddress
	}
	if config.APIAddress == "" {
		return nil, errors.Errorf(
			"no API address is configured; please use `assetgrid login -s "+
				"<address>` to continue (looked in %s and $ASSETGRID_API_ADDRESS)",
			assetgridConfigFile,
		)
	}

	return config, nil
}

func saveConfig(config *config) error {
	assetgridHome, err := getAssetgridHome()
	if err != nil {
		return errors.Wrapf(err, "error finding assetgrid home")
	}
	if _, err := os.Stat(assetgridHome); err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrapf(
				err,
				"error checking for existence of assetgrid home at %s",
				assetgridHome,
			)
		}
		// The directory doesn't exist-- create it
		if err := os.MkdirAll(assetgridHome, 0755); err != nil {
			return errors.Wrapf(
				err,
				"error creating assetgrid home at %s",
				assetgridHome,
			)
		}
	}
	assetgridConfigFile := path.Join(assetgridHome, "config")

	configBytes, err := json.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "error marshaling config")
	}
	if err :=
		os.WriteFile(assetgridConfigFile, configBytes, 0644); err != nil {
		return errors.Wrapf(err, "error writing to %s", assetgridConfigFile)
	}
	return nil
}

func getAssetgridHome() (string, error) {
	homeDir, err := homedir.Dir()
	if err != nil {
		return "", errors.Wrap(err, "error locating user's home directory")
	}

	return path.Join(homeDir, ".assetgrid"), nil
}
