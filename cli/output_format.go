package main

import (
	"encoding/json"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
)

func validateOutputFormat(outputFormat string) error {
	switch strings.ToLower(outputFormat) {
	case "table":
	case "json":
	case "yaml":
	default:
		return errors.Errorf("unknown output format %q", outputFormat)
	}
	return nil
}

// formatObject renders obj as indented JSON or YAML.
func formatObject(outputFormat string, obj interface{}) (string, error) {
	switch strings.ToLower(outputFormat) {
	case "json":
		jsonBytes, err := json.MarshalIndent(obj, "", "  ")
		if err != nil {
			return "", errors.Wrap(err, "error formatting output")
		}
		return string(jsonBytes), nil
	case "yaml":
		yamlBytes, err := yaml.Marshal(obj)
		if err != nil {
			return "", errors.Wrap(err, "error formatting output")
		}
		return string(yamlBytes), nil
	}
	return "", errors.Errorf("unknown output format %q", outputFormat)
}
