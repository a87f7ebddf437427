package shellfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadShell(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(path, []byte("<html></html>"), 0o644))

	loader := &Loader{Path: path}
	shell, err := loader.LoadShell(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", shell)
}

func TestLoader_LoadShell_MissingFile(t *testing.T) {
	loader := &Loader{Path: filepath.Join(t.TempDir(), "missing.html")}
	_, err := loader.LoadShell(context.Background())
	require.Error(t, err)
}

func TestLoader_LoadShell_RereadsOnEveryCall(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	loader := &Loader{Path: path}
	first, err := loader.LoadShell(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v1", first)

	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o644))
	second, err := loader.LoadShell(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v2", second)
}
