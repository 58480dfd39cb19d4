package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Environment variables recognized by the router. They override the
// config file, which overrides the defaults.
const (
	// EnvConfig names the config file to load.
	EnvConfig = "VIMRELAY_CONFIG"
	// EnvBinary overrides binary discovery with an explicit path.
	EnvBinary = "VIMRELAY_VIM"
	// EnvLogLevel overrides the log level.
	EnvLogLevel = "VIMRELAY_LOG_LEVEL"
	// EnvHook overrides the Lua hook script path.
	EnvHook = "VIMRELAY_HOOK"
	// EnvListTimeoutMS overrides the serverlist query timeout.
	EnvListTimeoutMS = "VIMRELAY_LIST_TIMEOUT_MS"
)

// ApplyEnv overlays environment overrides onto cfg. getenv is passed
// explicitly so tests can inject an environment.
func ApplyEnv(cfg *Config, getenv func(string) string) {
	if v := getenv(EnvBinary); v != "" {
		cfg.Binary = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv(EnvHook); v != "" {
		cfg.HookScript = v
	}
	if v := getenv(EnvListTimeoutMS); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.ListTimeoutMS = ms
		}
	}
}

// Path returns the config file to load: the EnvConfig override if set,
// else the first of config.toml / config.yaml under the user config
// directory that exists. Returns empty when there is nothing to load.
func Path(fs FileSystem, getenv func(string) string) string {
	if v := getenv(EnvConfig); v != "" {
		return v
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	for _, name := range []string{"config.toml", "config.yaml"} {
		p := filepath.Join(base, "vimrelay", name)
		if _, err := fs.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
