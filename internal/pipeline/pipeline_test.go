package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/regview/internal/detector"
	"github.com/retroenv/regview/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

const testRegisters = `// test registers
__register 64 { 2:2 C, 0:0 M } SCTLR_EL1;
__register 64 { 0:0 M } SCTLR_EL2;
__register 32 { 31:0 A, 7:0 B } BROKEN;
array [0..3] of __register 32 { 3:0 TC } Tcr_el1;
`

func createTempFile(t *testing.T, data string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "regs.asl")
	err := os.WriteFile(name, []byte(data), 0o600)
	assert.NoError(t, err)
	return name
}

func newTestPipeline(t *testing.T, file string) *Pipeline {
	t.Helper()
	logger := log.NewTestLogger(t)
	lookup := func(name string, defaultValue ...string) string {
		if name == detector.FileVariable {
			return file
		}
		return ""
	}
	return NewWithDetector(logger, detector.NewWithLookup(logger, lookup))
}

func TestNew(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	assert.NotNil(t, p)
	assert.NotNil(t, p.logger)
	assert.NotNil(t, p.detector)
	assert.NotNil(t, p.loader)
}

func TestLoadCatalog(t *testing.T) {
	p := newTestPipeline(t, createTempFile(t, testRegisters))

	cat, err := p.LoadCatalog(options.Program{})
	assert.NoError(t, err)
	assert.Equal(t, []string{"sctlr_el1", "sctlr_el2", "tcr_el1"}, cat.Names())
}

func TestExecuteList(t *testing.T) {
	p := newTestPipeline(t, createTempFile(t, testRegisters))

	var out bytes.Buffer
	opts := options.Program{Flags: options.Flags{List: true}}
	err := p.Execute(context.Background(), opts, IO{Out: &out})
	assert.NoError(t, err)
	assert.Equal(t, "SCTLR_EL1\nSCTLR_EL2\nTcr_el1\n", out.String())
}

func TestExecuteDump(t *testing.T) {
	p := newTestPipeline(t, createTempFile(t, testRegisters))

	var out bytes.Buffer
	opts := options.Program{Flags: options.Flags{Dump: true}}
	err := p.Execute(context.Background(), opts, IO{Out: &out})
	assert.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, `Name: (string) (len=9) "SCTLR_EL1"`)
	assert.Contains(t, output, `Name: (string) (len=7) "Tcr_el1"`)
	assert.False(t, strings.Contains(output, "BROKEN"))
}

func TestExecuteSession(t *testing.T) {
	p := newTestPipeline(t, createTempFile(t, testRegisters))

	var out bytes.Buffer
	stream := IO{
		In:  strings.NewReader("sctlr\n0\n5\n"),
		Out: &out,
	}
	err := p.Execute(context.Background(), options.Program{}, stream)
	assert.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "0) SCTLR_EL1\n1) SCTLR_EL2\n")
	assert.Contains(t, output, "SCTLR_EL1 = 0x5\n")
	assert.False(t, strings.Contains(output, "> "))
}

func TestExecuteErrors(t *testing.T) {
	tests := []struct {
		name        string
		opts        options.Program
		errContains string
	}{
		{
			name:        "missing file",
			opts:        options.Program{Parameters: options.Parameters{Input: "missing.asl"}},
			errContains: "loading registers: reading register file missing.asl",
		},
		{
			name:        "batch without matches",
			opts:        options.Program{Parameters: options.Parameters{Batch: filepath.Join(t.TempDir(), "*.asl")}},
			errContains: "detecting register files",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPipeline(t, "")
			err := p.Execute(context.Background(), tt.opts, IO{Out: &bytes.Buffer{}})
			assert.ErrorContains(t, err, tt.errContains)
		})
	}
}
