package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chaisql/rwf"
	"github.com/chaisql/rwf/internal/config"
	"github.com/chaisql/rwf/internal/testutil/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		data string
		want config.Config
	}{
		{"empty", "", config.Default()},
		{"all keys", `
major_version = 14
minor_version = 1
store_path = " /var/lib/rwf "
log_level = "debug"
workers = 8
`, config.Config{
			MajorVersion: rwf.MajorVersion,
			MinorVersion: 1,
			StorePath:    "/var/lib/rwf",
			LogLevel:     "debug",
			Workers:      8,
		}},
		{"partial", `workers = 1`, func() config.Config {
			c := config.Default()
			c.Workers = 1
			return c
		}()},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := config.Parse(test.data)
			assert.NoError(t, err)
			require.Equal(t, test.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", `workers = `},
		{"unknown key", `threads = 2`},
		{"wrong type", `workers = "two"`},
		{"no workers", `workers = 0`},
		{"empty store", `store_path = "  "`},
		{"minor version", `minor_version = -1`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := config.Parse(test.data)
			assert.Error(t, err)
		})
	}

	_, err := config.Parse(`major_version = 15`)
	assert.ErrorIs(t, err, rwf.ErrVersionNotSupported)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rwf.toml")
	err := os.WriteFile(path, []byte("log_level = \"warn\"\n"), 0o600)
	assert.NoError(t, err)

	cfg, err := config.Load(path)
	assert.NoError(t, err)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, config.Default().StorePath, cfg.StorePath)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
