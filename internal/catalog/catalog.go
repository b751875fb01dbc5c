// Package catalog provides the ordered register catalog that supports
// case insensitive exact and prefix lookups.
package catalog

import (
	"slices"
	"strings"

	"github.com/retroenv/regview/internal/ast"
	"github.com/retroenv/regview/internal/register"
	"github.com/retroenv/retrogolib/log"
)

// Catalog maps case folded register names to their descriptors.
// It is filled once by Build and only read afterwards, sharing it between
// sessions needs no locking.
type Catalog struct {
	keys  []string // sorted
	items map[string]*register.Descriptor
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		items: make(map[string]*register.Descriptor),
	}
}

// Build normalizes all register statements and inserts the valid ones into
// a new catalog. Comments are ignored. Registers that fail validation are
// skipped, the returned count reports how many were skipped.
func Build(logger *log.Logger, statements []ast.Statement) (*Catalog, int) {
	c := New()
	skipped := 0

	for _, stmt := range statements {
		reg, ok := stmt.(*ast.Register)
		if !ok {
			continue
		}

		desc, err := register.Normalize(reg)
		if err != nil {
			skipped++
			logger.Debug("Skipping register",
				log.String("name", reg.Name),
				log.Int("line", reg.Line),
				log.Err(err))
			continue
		}

		if c.Insert(desc) {
			logger.Warn("Register redefined, replacing previous definition",
				log.String("name", reg.Name),
				log.Int("line", reg.Line))
		}
	}

	return c, skipped
}

// Insert adds the descriptor under its case folded name. An existing entry
// with the same key is replaced, in that case true is returned.
func (c *Catalog) Insert(desc *register.Descriptor) bool {
	key := fold(desc.Name)

	_, exists := c.items[key]
	c.items[key] = desc
	if exists {
		return true
	}

	idx, _ := slices.BinarySearch(c.keys, key)
	c.keys = slices.Insert(c.keys, idx, key)
	return false
}

// Lookup returns the descriptor with the given name, ignoring case.
func (c *Catalog) Lookup(name string) (*register.Descriptor, bool) {
	desc, ok := c.items[fold(name)]
	return desc, ok
}

// QueryPrefix returns all descriptors whose case folded name starts with
// the given prefix, ordered by name.
func (c *Catalog) QueryPrefix(prefix string) []*register.Descriptor {
	prefix = fold(prefix)

	start, _ := slices.BinarySearch(c.keys, prefix)

	var result []*register.Descriptor
	for _, key := range c.keys[start:] {
		if !strings.HasPrefix(key, prefix) {
			break
		}
		result = append(result, c.items[key])
	}
	return result
}

// Len returns the number of registers in the catalog.
func (c *Catalog) Len() int {
	return len(c.keys)
}

// Names returns the case folded names of all registers in order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.keys)
}

// Descriptors returns all descriptors ordered by name.
func (c *Catalog) Descriptors() []*register.Descriptor {
	result := make([]*register.Descriptor, 0, len(c.keys))
	for _, key := range c.keys {
		result = append(result, c.items[key])
	}
	return result
}

func fold(name string) string {
	return strings.ToLower(name)
}
