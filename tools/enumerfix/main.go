// Package main rewrites enumer-generated files to report errors through
// cockroachdb/errors instead of fmt.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

const filePermissions = 0o644

const errorsImport = `"github.com/cockroachdb/errors"`

// ErrUsage indicates incorrect usage of the tool.
var ErrUsage = errors.New("usage: enumerfix <file>")

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}

	filename := args[1]

	//nolint:gosec // G304: File path from CLI argument is expected
	content, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrap(err, "reading file")
	}

	if err := os.WriteFile(filename, fix(content), filePermissions); err != nil {
		return errors.Wrap(err, "writing file")
	}

	return nil
}

// fix replaces fmt error construction with errors.Newf and adjusts the
// import block. fmt stays imported only while something still uses it.
func fix(content []byte) []byte {
	result := strings.ReplaceAll(string(content), "fmt.Errorf", "errors.Newf")

	if !strings.Contains(result, "errors.Newf") || strings.Contains(result, errorsImport) {
		return []byte(result)
	}

	if strings.Contains(result, "fmt.") {
		result = strings.Replace(result, "\t\"fmt\"", "\t\"fmt\"\n\n\t"+errorsImport, 1)
	} else {
		result = strings.Replace(result, "\t\"fmt\"", "\t"+errorsImport, 1)
	}

	return []byte(result)
}
