package api

import (
	"strconv"

	"github.com/assetgrid/assetgrid/sdk/meta"
)

// appendListQueryParams returns the given map[string]string with key/value
// pairs representing the provided ListOptions added to it.
func appendListQueryParams(
	queryParams map[string]string,
	opts meta.ListOptions,
) map[string]string {
	if queryParams == nil {
		queryParams = map[string]string{}
	}
	if opts.Continue != "" {
		queryParams["continue"] = opts.Continue
	}
	if opts.Limit != 0 {
		queryParams["limit"] = strconv.FormatInt(opts.Limit, 10)
	}
	return queryParams
}
