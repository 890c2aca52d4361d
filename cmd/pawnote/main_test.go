package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawnote/internal/adapters/storage/sqlite"
	"pawnote/internal/localdb"
)

// setupSQLite apunta la config a un archivo sqlite nuevo y devuelve su path.
func setupSQLite(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdirForTest(t, dir)

	path := filepath.Join(dir, "pawnote.db")
	t.Setenv("PAWNOTE_STORAGE_DRIVER", "sqlite")
	t.Setenv("PAWNOTE_STORAGE_PATH", path)
	t.Setenv("PAWNOTE_LOG_LEVEL", "error")
	return path
}

func seed(t *testing.T, path string, values map[string]string) {
	t.Helper()
	s, err := sqlite.Open(path)
	require.NoError(t, err)
	defer s.Close()
	for k, v := range values {
		require.NoError(t, s.Set(context.Background(), k, v))
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := execute(context.Background(), args, &out, &errOut)
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "pawnote dev\n", out)
}

func TestMigrateThenPets(t *testing.T) {
	path := setupSQLite(t)
	seed(t, path, map[string]string{
		localdb.LegacyKeyPet:   `{"name":"Rex","birth_date":"2020-01-01"}`,
		localdb.LegacyKeyPetID: "legacy-1",
	})

	out, err := run(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "migrated legacy pet legacy-1")

	out, err = run(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing to migrate")

	out, err = run(t, "pets")
	require.NoError(t, err)
	assert.Contains(t, out, "*")
	assert.Contains(t, out, "legacy-1")
	assert.Contains(t, out, "Rex")
}

func TestUse(t *testing.T) {
	path := setupSQLite(t)
	seed(t, path, map[string]string{
		localdb.KeyPets: `[{"id":"pet_a","name":"A","birth_date":"2020-01-01","pet_type":"dog","created_at":1,"updated_at":1},
			{"id":"pet_b","name":"B","birth_date":"2021-01-01","pet_type":"cat","created_at":1,"updated_at":1}]`,
		localdb.KeyCurrentPetID: "pet_a",
	})

	_, err := run(t, "use", "pet_missing")
	assert.Error(t, err)

	out, err := run(t, "use", "pet_b")
	require.NoError(t, err)
	assert.Contains(t, out, "current pet: B (pet_b)")

	out, err = run(t, "--json", "doctor")
	require.NoError(t, err)
	assert.Contains(t, out, `"current_pet_id": "pet_b"`)
}

func TestDoctor_ReportsCorruptCollection(t *testing.T) {
	path := setupSQLite(t)
	seed(t, path, map[string]string{localdb.KeyReminders: "{not json"})

	out, err := run(t, "doctor")
	assert.ErrorIs(t, err, errUnhealthy)
	assert.Contains(t, out, "corrupt")
}

func TestExportImport(t *testing.T) {
	path := setupSQLite(t)
	seed(t, path, map[string]string{
		localdb.KeyPets:         `[{"id":"pet_a","name":"A","birth_date":"2020-01-01","pet_type":"dog","created_at":1,"updated_at":1}]`,
		localdb.KeyCurrentPetID: "pet_a",
	})
	file := filepath.Join(t.TempDir(), "backup.zst")

	_, err := run(t, "export", file)
	require.NoError(t, err)

	// pisar la base y restaurar
	seed(t, path, map[string]string{localdb.KeyPets: `[]`})
	out, err := run(t, "import", file)
	require.NoError(t, err)
	assert.Contains(t, out, "restored")

	out, err = run(t, "pets")
	require.NoError(t, err)
	assert.Contains(t, out, "pet_a")
}

func TestPull(t *testing.T) {
	setupSQLite(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/pets/remote-1", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":"remote-1","name":"Milo","birth_date":"2021-02-03","pet_type":"dog"}`))
	})
	empty := func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte(`[]`)) }
	mux.HandleFunc("/api/reminders", empty)
	mux.HandleFunc("/api/checklists", empty)
	mux.HandleFunc("/api/vet-visits", empty)
	srv := httptest.NewServer(mux)
	defer srv.Close()
	t.Setenv("PAWNOTE_REMOTE_BASE_URL", srv.URL)

	_, err := run(t, "pull")
	assert.Error(t, err, "--pet-id is required")

	out, err := run(t, "pull", "--pet-id", "remote-1")
	require.NoError(t, err)
	assert.Contains(t, out, "pet remote-1 (new=true)")

	out, err = run(t, "pets")
	require.NoError(t, err)
	assert.Contains(t, out, "Milo")
}

// chdirForTest mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
