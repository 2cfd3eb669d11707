package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvConfigPath names the environment variable that points at a config file.
const EnvConfigPath = "CLIPSHRINK_CONFIG"

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./clipshrink.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "clipshrink", "config.toml")
}

// Discover finds the config file. An explicit path and $CLIPSHRINK_CONFIG
// must exist; otherwise ./clipshrink.toml and [DefaultPath] are tried in
// order. An empty result with a nil error means no file, which is fine.
func Discover(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config %s: %w", explicit, err)
		}
		return explicit, nil
	}
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("%s=%s: %w", EnvConfigPath, envPath, err)
		}
		return envPath, nil
	}
	for _, p := range []string{"./clipshrink.toml", DefaultPath()} {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}

// Load decodes the TOML file at path onto cfg. Keys absent from the file keep
// their current value. Invalid enum values (preset, color) are rejected here.
func Load(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("parsing config %s: unknown key %q", path, undecoded[0].String())
	}
	cfg.Input.Extension = NormalizeExtension(cfg.Input.Extension)
	return nil
}
