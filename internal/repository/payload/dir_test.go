package payload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirLoad(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "trades.json"), []byte(`[]`), 0o600))

	d := NewDir(root)

	raw, err := d.Load("trades")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(raw))

	_, err = d.Load("standings")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "standings")
}

func TestDirRejectsPaths(t *testing.T) {
	d := NewDir(t.TempDir())

	for _, name := range []string{"", "../secret", "a/b", `a\b`} {
		_, err := d.Load(name)
		require.Error(t, err, name)
		assert.NotErrorIs(t, err, ErrNotFound, name)
	}
}
