// Package loader handles register description file loading.
package loader

import (
	"fmt"
	"os"

	"github.com/retroenv/regview/internal/ast"
	"github.com/retroenv/regview/internal/parser"
)

// Loader handles loading register description files from disk.
type Loader struct{}

// New creates a new register file loader.
func New() *Loader {
	return &Loader{}
}

// Load reads and parses all files in the given order and returns their
// statements concatenated. Registers of later files therefore replace
// registers of the same name in earlier files.
func (l *Loader) Load(files []string) ([]ast.Statement, error) {
	var statements []ast.Statement

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading register file %s: %w", file, err)
		}

		parsed, err := parser.Parse(file, data)
		if err != nil {
			return nil, fmt.Errorf("parsing register file: %w", err)
		}
		statements = append(statements, parsed...)
	}

	return statements, nil
}
