package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

// readDefinitionFile reads a JSON or YAML resource definition, validates it
// against the given schema, and unmarshals it into obj. Validating locally
// keeps obvious mistakes from ever leaving the workstation.
func readDefinitionFile(filename, schema string, obj interface{}) error {
	defBytes, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "error reading definition file %s", filename)
	}
	if strings.HasSuffix(filename, ".yaml") ||
		strings.HasSuffix(filename, ".yml") {
		if defBytes, err = yaml.YAMLToJSON(defBytes); err != nil {
			return errors.Wrapf(
				err,
				"error converting definition file %s to JSON",
				filename,
			)
		}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(defBytes),
	)
	if err != nil {
		return errors.Wrapf(err, "error validating definition file %s", filename)
	}
	if !result.Valid() {
		msg := fmt.Sprintf("definition file %s is invalid:", filename)
		for i, verr := range result.Errors() {
			msg = fmt.Sprintf("%s\n  %d. %s", msg, i+1, verr)
		}
		return errors.New(msg)
	}

	if err := json.Unmarshal(defBytes, obj); err != nil {
		return errors.Wrapf(err, "error unmarshaling definition file %s", filename)
	}
	return nil
}
