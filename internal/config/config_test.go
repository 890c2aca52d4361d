package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App:     App{Name: "pawnote"},
		HTTP:    HTTP{Addr: ":8080", ReadTimeout: 5 * time.Second, WriteTimeout: 10 * time.Second},
		Storage: Storage{Driver: DriverMemory},
		Cache:   Cache{SizeMB: 4},
		Log:     Log{Level: "info", Format: "text"},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_UnknownDriver(t *testing.T) {
	c := validConfig()
	c.Storage.Driver = "mongo"
	assert.Error(t, c.Validate())
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	c := validConfig()
	c.Log.Level = "verbose"
	assert.Error(t, c.Validate())
}

func TestValidate_DriverRequirements(t *testing.T) {
	c := validConfig()
	c.Storage.Driver = DriverSQLite
	assert.ErrorIs(t, c.Validate(), ErrMissingPath)

	c.Storage.Path = "/tmp/pawnote.db"
	assert.NoError(t, c.Validate())

	c.Storage.Driver = DriverPostgres
	assert.ErrorIs(t, c.Validate(), ErrMissingDSN)
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	chdirForTest(t, t.TempDir())

	conf, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, conf.Storage.Driver)
	assert.Equal(t, ":8080", conf.HTTP.Addr)
	assert.Equal(t, 5*time.Second, conf.HTTP.ReadTimeout)
	assert.Empty(t, conf.Path)
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	chdirForTest(t, dir)

	path := filepath.Join(dir, "pawnote.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
storage:
  driver: sqlite
  path: ./data/pawnote.db
http:
  addr: ":9090"
log:
  level: debug
`), 0o644))

	t.Setenv("PAWNOTE_HTTP_ADDR", ":7070")
	t.Setenv("LOG_FORMAT", "json")

	conf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, conf.Storage.Driver)
	assert.Equal(t, "./data/pawnote.db", conf.Storage.Path)
	assert.Equal(t, ":7070", conf.HTTP.Addr)
	assert.Equal(t, "debug", conf.Log.Level)
	assert.Equal(t, "json", conf.Log.Format)
	assert.Equal(t, path, conf.Path)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
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
