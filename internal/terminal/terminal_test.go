package terminal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestIsTerminal(t *testing.T) {
	t.Run("nil file", func(t *testing.T) {
		assert.False(t, IsTerminal(nil))
	})

	t.Run("regular file", func(t *testing.T) {
		f, err := os.Create(filepath.Join(t.TempDir(), "regs.asl"))
		assert.NoError(t, err)
		defer func() { _ = f.Close() }()

		assert.False(t, IsTerminal(f))
	})

	t.Run("pipe", func(t *testing.T) {
		r, w, err := os.Pipe()
		assert.NoError(t, err)
		defer func() {
			_ = r.Close()
			_ = w.Close()
		}()

		assert.False(t, IsTerminal(r))
	})
}
