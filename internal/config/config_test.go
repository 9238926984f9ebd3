package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"REGISTER_CONFIG", "CATALOG_FILE", "COUNTER_FILE", "RECEIPT_DIR", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "inventory.txt", cfg.CatalogFile)
	assert.Equal(t, "transaction_counter.txt", cfg.CounterFile)
	assert.Equal(t, ".", cfg.ReceiptDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadYAMLFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "register.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog_file: /data/inv.txt\nlog_level: debug\n"), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/inv.txt", cfg.CatalogFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	// fields absent from the file keep their defaults
	assert.Equal(t, "transaction_counter.txt", cfg.CounterFile)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "register.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog_file: from-file.txt\n"), 0o644))
	t.Setenv("CATALOG_FILE", "from-env.txt")
	t.Setenv("RECEIPT_DIR", "/receipts")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env.txt", cfg.CatalogFile)
	assert.Equal(t, "/receipts", cfg.ReceiptDir)
}

func TestLoadBadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "register.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog_file: [unclosed\n"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}
