package main

import "github.com/urfave/cli/v2"

const (
	flagAnalytics = "analytics"
	flagAsset     = "asset"
	flagCategory  = "category"
	flagID        = "id"
	flagInsecure  = "insecure"
	flagMarketing = "marketing"
	flagOutput    = "output"
	flagPassword  = "password"
	flagServer    = "server"
	flagStatus    = "status"
	flagTitle     = "title"
	flagUsername  = "username"
)

var cliFlagOutput = &cli.StringFlag{
	Name:    flagOutput,
	Aliases: []string{"o"},
	Usage:   "Return output in another format. Supported formats: table, json, yaml",
	Value:   "table",
}
