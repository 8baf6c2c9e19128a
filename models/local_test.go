package models_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"video-sharing/models"
)

func TestRemoveTempFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.mp4")
	b := filepath.Join(dir, "b.png")
	require.NoError(t, os.WriteFile(a, []byte("a"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte("b"), 0o600))

	local := models.NewLocal()
	local.AddTempFile(a)
	local.AddTempFile(b)
	local.AddTempFile(filepath.Join(dir, "never-created"))

	require.Empty(t, local.RemoveTempFiles())
	require.NoFileExists(t, a)
	require.NoFileExists(t, b)
	require.Empty(t, local.TempFiles())

	// a second release is a no-op even if new files were registered
	c := filepath.Join(dir, "c")
	require.NoError(t, os.WriteFile(c, []byte("c"), 0o600))
	local.AddTempFile(c)
	require.Empty(t, local.RemoveTempFiles())
	require.FileExists(t, c)
}

func TestViewer(t *testing.T) {
	local := models.NewLocal()
	require.Nil(t, local.Viewer())

	id := uuid.New()
	local.Authenticate(id)
	require.NotNil(t, local.Viewer())
	require.Equal(t, id, *local.Viewer())
}
