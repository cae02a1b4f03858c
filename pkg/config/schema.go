package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema.json
var configSchemaJSON string

const configSchemaURL = "https://github.com/githubnext/boomi-validate/config.schema.json"

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(configSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse config schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(configSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("failed to add config schema: %w", err)
	}
	return compiler.Compile(configSchemaURL)
})

// validateWithSchema checks raw YAML content against the config schema.
// Empty documents are valid.
func validateWithSchema(content []byte) error {
	jsonContent, err := yaml.YAMLToJSON(content)
	if err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(bytes.TrimSpace(jsonContent)) == 0 {
		return nil
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonContent))
	if err != nil {
		return fmt.Errorf("failed to decode configuration: %w", err)
	}
	if instance == nil {
		return nil
	}

	schema, err := compiledSchema()
	if err != nil {
		return err
	}

	if err := schema.Validate(instance); err != nil {
		configLog.Printf("Schema validation failed: %v", err)
		return fmt.Errorf("configuration does not match schema: %w", err)
	}
	return nil
}
