// Package config loads settings and resolves the values the client needs.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
	gconfig "github.com/Laisky/go-config/v2"
	"github.com/Laisky/zap"

	"github.com/Aftab073/Ai-search-tool/library/log"
)

const (
	// EnvAPIURL names the environment variable holding the backend base URL.
	EnvAPIURL = "AI_SEARCH_API_URL"
	// DefaultAPIURL is used when neither config nor environment set a base URL.
	DefaultAPIURL = "https://ai-search-tool-1.onrender.com"
	// DefaultTimeout bounds every request issued by the client.
	DefaultTimeout = 30 * time.Second
	// DefaultCompactWidth is the terminal width below which the TUI uses short labels.
	DefaultCompactWidth = 80

	KeyAPIBaseURL     = "settings.api.base_url"
	KeyAPITimeout     = "settings.api.timeout_seconds"
	KeyStateDBPath    = "settings.state.db_path"
	KeyUICompactWidth = "settings.ui.compact_width"
)

// LoadFromFile merges the YAML file at cfgPath into the shared config.
// An empty path or a missing file is not an error, the client runs on defaults.
func LoadFromFile(cfgPath string) error {
	cfgPath = strings.TrimSpace(cfgPath)
	if cfgPath == "" {
		return nil
	}

	if _, err := os.Stat(cfgPath); err != nil {
		if os.IsNotExist(err) {
			log.Logger.Debug("config file not found, use defaults", zap.String("config", cfgPath))
			return nil
		}
		return errors.Wrapf(err, "stat config %q", cfgPath)
	}

	gconfig.Shared.Set("cfg_dir", filepath.Dir(cfgPath))
	if err := gconfig.Shared.LoadFromFile(cfgPath); err != nil {
		return errors.Wrapf(err, "load configuration %q", cfgPath)
	}

	log.Logger.Info("load configuration", zap.String("config", cfgPath))
	return nil
}

// APIBaseURL resolves the backend base URL.
// Explicit configuration wins, then the environment, then DefaultAPIURL.
func APIBaseURL() string {
	return resolveAPIBaseURL(gconfig.Shared.GetString(KeyAPIBaseURL), os.Getenv(EnvAPIURL))
}

func resolveAPIBaseURL(configured, env string) string {
	if v := strings.TrimSpace(configured); v != "" {
		return v
	}
	if v := strings.TrimSpace(env); v != "" {
		return v
	}
	return DefaultAPIURL
}

// Timeout returns the per request timeout.
func Timeout() time.Duration {
	if secs := gconfig.Shared.GetInt(KeyAPITimeout); secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return DefaultTimeout
}

// CompactWidth returns the width threshold for the compact TUI layout.
func CompactWidth() int {
	if w := gconfig.Shared.GetInt(KeyUICompactWidth); w > 0 {
		return w
	}
	return DefaultCompactWidth
}

// StateDBPath returns the sqlite file that keeps local preferences.
func StateDBPath() (string, error) {
	if p := strings.TrimSpace(gconfig.Shared.GetString(KeyStateDBPath)); p != "" {
		return p, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "get user config dir")
	}

	return filepath.Join(dir, "aisearch", "state.db"), nil
}
