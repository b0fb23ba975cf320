package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveAPIBaseURL(t *testing.T) {
	require.Equal(t, "https://cfg.example", resolveAPIBaseURL(" https://cfg.example ", "https://env.example"))
	require.Equal(t, "https://env.example", resolveAPIBaseURL("", "https://env.example"))
	require.Equal(t, DefaultAPIURL, resolveAPIBaseURL("  ", ""))
}

func TestLoadFromFileMissingIsNotAnError(t *testing.T) {
	require.NoError(t, LoadFromFile(""))
	require.NoError(t, LoadFromFile(filepath.Join(t.TempDir(), "absent.yml")))
}

func TestLoadFromFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "settings.yml")
	content := "settings:\n  api:\n    base_url: http://127.0.0.1:8000\n    timeout_seconds: 5\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))

	require.NoError(t, LoadFromFile(cfgPath))
	require.Equal(t, "http://127.0.0.1:8000", APIBaseURL())
	require.Equal(t, int64(5), int64(Timeout().Seconds()))
}
