// Package tfscan extracts variable names from Terraform variable-declaration
// files. It is deliberately not an HCL parser: a variable name is the first
// quoted token on any line that starts with the literal "variable" keyword,
// which is all the generated-module layout needs.
package tfscan

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Variables reads the named variable-declaration file under the module
// directory and returns the declared variable names in file order. Read
// failures are surfaced as-is; a declaration line without a quoted name is an
// error.
func Variables(fsys afero.Fs, moduleDir, fileName string) ([]string, error) {
	path := filepath.Join(moduleDir, fileName)
	content, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}

	var names []string
	for i, line := range strings.Split(string(content), "\n") {
		if !strings.HasPrefix(line, "variable") {
			continue
		}
		parts := strings.Split(line, `"`)
		if len(parts) < 2 {
			return nil, fmt.Errorf("%s:%d: variable declaration without a quoted name", path, i+1)
		}
		names = append(names, strings.TrimSpace(parts[1]))
	}
	return names, nil
}
