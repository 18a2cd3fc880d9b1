package file

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenarios.yaml")

	assert.False(t, Exists(path))
	require.NoError(t, os.WriteFile(path, []byte("region: us-east-1\n"), 0o644))
	assert.True(t, Exists(path))
	assert.True(t, Exists(dir))
}

func TestAbs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenarios.yaml")

	_, err := Abs(path)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	require.NoError(t, os.WriteFile(path, nil, 0o644))
	got, err := Abs(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
}
