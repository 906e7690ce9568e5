package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ReadsTemplate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "KdYBmq7K.txt"), []byte("Analyze {webhook_data}"), 0o600))

	content, err := NewDirSource(dir).Load("KdYBmq7K.txt")
	require.NoError(t, err)
	assert.Equal(t, "Analyze {webhook_data}", content)
}

func TestLoad_Missing(t *testing.T) {
	_, err := NewDirSource(t.TempDir()).Load("nope.txt")
	assert.Error(t, err)
}

func TestLoad_ReferenceConfinedToDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "passwd"), []byte("inside"), 0o600))

	content, err := NewDirSource(dir).Load("../../etc/passwd")
	require.NoError(t, err)
	assert.Equal(t, "inside", content)
}
