package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseJSON_OverlaysPresentFields(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"base_url":"http://json.test","request_timeout_seconds":5}`), 0o600))

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"cli", "-c", file}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)

	require.Equal(t, "http://json.test", cfg.BaseURL)
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
	// Field absent from the file keeps its default.
	require.Equal(t, "stylecart.db", cfg.DatabasePath)
}

func TestParseJSON_NoFlagIsNoop(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"cli"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)

	require.Equal(t, "http://127.0.0.1:8004", cfg.BaseURL)
}
