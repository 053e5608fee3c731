// Package schema generates JSON Schema for the hookwire wire contract and
// config file.
package schema

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/invopop/jsonschema"

	"github.com/smykla-skalski/hookwire/pkg/config"
	"github.com/smykla-skalski/hookwire/pkg/hook"
)

const (
	schemaURI = "https://json-schema.org/draft/2020-12/schema"

	// ConfigFilename is the output file for the config schema.
	ConfigFilename = "hookwire.config.schema.json"

	// ResponseFilename is the output file for the response wire schema.
	ResponseFilename = "hookwire.response.schema.json"
)

// GenerateConfig produces a JSON Schema for the hookwire config file.
func GenerateConfig() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
	}

	s := r.Reflect(&config.Config{})
	s.Version = schemaURI
	s.Title = "hookwire configuration"

	return s
}

// GenerateResponse produces a JSON Schema for the hook response wire form.
// External wire names (continue, stopReason, suppressOutput) come straight
// from the struct tags.
func GenerateResponse() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
	}

	s := r.Reflect(&hook.Response{})
	s.Version = schemaURI
	s.Title = "hookwire response"

	return s
}

// MarshalSchema renders a schema as JSON bytes with a trailing newline.
// When indent is true, the output is pretty-printed.
func MarshalSchema(s *jsonschema.Schema, indent bool) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	if indent {
		data, err = json.MarshalIndent(s, "", "  ")
	} else {
		data, err = json.Marshal(s)
	}

	if err != nil {
		return nil, errors.Wrap(err, "marshaling schema to JSON")
	}

	return append(data, '\n'), nil
}
