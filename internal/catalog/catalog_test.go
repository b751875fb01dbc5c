package catalog

import (
	"testing"

	"github.com/retroenv/regview/internal/ast"
	"github.com/retroenv/regview/internal/register"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func newRegister(name string, bits uint32, fields ...ast.Bitfield) *ast.Register {
	return &ast.Register{Name: name, Bits: bits, Fields: fields}
}

func names(descs []*register.Descriptor) []string {
	result := make([]string, 0, len(descs))
	for _, desc := range descs {
		result = append(result, desc.Name)
	}
	return result
}

func TestBuild(t *testing.T) {
	logger := log.NewTestLogger(t)

	statements := []ast.Statement{
		&ast.Comment{Line: 1},
		newRegister("SCTLR_EL2", 64),
		newRegister("SCTLR_EL1", 64),
		newRegister("BAD", 32, ast.Bitfield{From: 40, To: 40, Name: "X"}),
		&ast.Comment{Line: 5},
		newRegister("TTBR0_EL1", 64, ast.Bitfield{From: 48, To: 63, Name: "ASID"}),
	}

	c, skipped := Build(logger, statements)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"sctlr_el1", "sctlr_el2", "ttbr0_el1"}, c.Names())

	_, ok := c.Lookup("bad")
	assert.False(t, ok)
}

func TestBuildSkipCounter(t *testing.T) {
	logger := log.NewTestLogger(t)

	statements := []ast.Statement{
		newRegister("A", 32, ast.Bitfield{From: 8, To: 15}, ast.Bitfield{From: 0, To: 10}),
		newRegister("B", 32, ast.Bitfield{From: 40, To: 40}),
		newRegister("C", 0),
		newRegister("D", 32),
	}

	c, skipped := Build(logger, statements)
	assert.Equal(t, 3, skipped)
	assert.Equal(t, 1, c.Len())
}

func TestBuildDuplicateLastWins(t *testing.T) {
	logger := log.NewTestLogger(t)

	statements := []ast.Statement{
		newRegister("REG", 32),
		newRegister("reg", 16),
	}

	c, skipped := Build(logger, statements)
	assert.Equal(t, 0, skipped)
	assert.Equal(t, 1, c.Len())

	desc, ok := c.Lookup("REG")
	assert.True(t, ok)
	assert.Equal(t, "reg", desc.Name)
	assert.Equal(t, uint32(16), desc.Bits)
}

func TestQueryPrefix(t *testing.T) {
	c := New()
	for _, name := range []string{"SCTLR_EL2", "SCTLR_EL1", "SCR_EL3", "TTBR0_EL1", "SP"} {
		assert.False(t, c.Insert(&register.Descriptor{Name: name, Bits: 64}))
	}

	tests := []struct {
		prefix string
		want   []string
	}{
		{prefix: "sctlr", want: []string{"SCTLR_EL1", "SCTLR_EL2"}},
		{prefix: "SCTLR", want: []string{"SCTLR_EL1", "SCTLR_EL2"}},
		{prefix: "sc", want: []string{"SCR_EL3", "SCTLR_EL1", "SCTLR_EL2"}},
		{prefix: "s", want: []string{"SCR_EL3", "SCTLR_EL1", "SCTLR_EL2", "SP"}},
		{prefix: "sctlr_el1", want: []string{"SCTLR_EL1"}},
		{prefix: "ttbr", want: []string{"TTBR0_EL1"}},
		{prefix: "x", want: []string{}},
		{prefix: "zzz", want: []string{}},
		{prefix: "", want: []string{"SCR_EL3", "SCTLR_EL1", "SCTLR_EL2", "SP", "TTBR0_EL1"}},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			assert.Equal(t, tt.want, names(c.QueryPrefix(tt.prefix)))
		})
	}
}

func TestLookupAgreesWithPrefix(t *testing.T) {
	logger := log.NewTestLogger(t)
	statements := []ast.Statement{
		newRegister("SCTLR_EL1", 64),
		newRegister("SCTLR_EL12", 64),
		newRegister("TCR_EL1", 64),
		newRegister("MAIR_EL1", 64),
	}
	c, _ := Build(logger, statements)

	for _, name := range c.Names() {
		exact, ok := c.Lookup(name)
		assert.True(t, ok)

		matches := c.QueryPrefix(name)
		if len(matches) == 1 {
			assert.True(t, matches[0] == exact, "prefix and exact lookup disagree for %s", name)
		}
	}
}

func TestDescriptors(t *testing.T) {
	c := New()
	c.Insert(&register.Descriptor{Name: "B", Bits: 8})
	c.Insert(&register.Descriptor{Name: "A", Bits: 8})

	assert.Equal(t, []string{"A", "B"}, names(c.Descriptors()))

	// names are returned as a copy
	keys := c.Names()
	keys[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, c.Names())
}
