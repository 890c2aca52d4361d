package backup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawnote/internal/localdb"
)

func TestCodec_FileRoundTrip(t *testing.T) {
	c, err := NewCodec()
	require.NoError(t, err)
	defer c.Close()

	snap := localdb.Snapshot{
		Version:    localdb.SnapshotVersion,
		ExportedAt: 1709283600000,
		Values: map[string]string{
			localdb.KeyPets:         `[{"id":"pet_1","name":"Rex"}]`,
			localdb.KeyCurrentPetID: "pet_1",
		},
	}

	path := filepath.Join(t.TempDir(), "pawnote.bak")
	require.NoError(t, c.WriteFile(path, snap))

	got, err := c.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, snap, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must be renamed away")
}

func TestCodec_RejectsGarbage(t *testing.T) {
	c, err := NewCodec()
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Decode([]byte("not zstd"))
	assert.Error(t, err)
}

func TestCodec_EmptyPath(t *testing.T) {
	c, err := NewCodec()
	require.NoError(t, err)
	defer c.Close()

	assert.ErrorIs(t, c.WriteFile("", localdb.Snapshot{}), ErrEmptyPath)
	_, err = c.ReadFile("")
	assert.ErrorIs(t, err, ErrEmptyPath)
}
