// Command schema-gen writes the JSON Schema files to schema/.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/smykla-skalski/hookwire/internal/schema"
)

const filePerms = 0o644

func main() {
	outDir := "schema"
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}

	outputs := []struct {
		filename string
		schema   *jsonschema.Schema
	}{
		{schema.ConfigFilename, schema.GenerateConfig()},
		{schema.ResponseFilename, schema.GenerateResponse()},
	}

	for _, out := range outputs {
		data, err := schema.MarshalSchema(out.schema, true)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		outPath := filepath.Clean(filepath.Join(outDir, out.filename))

		//nolint:gosec // dev tool, outDir from CLI arg
		if err := os.WriteFile(outPath, data, filePerms); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(outPath)
	}
}
