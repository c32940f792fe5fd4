// Package config resolves runtime settings from a YAML file, environment
// variables and built-in defaults, in increasing precedence: defaults, then
// file, then environment. CLI flags override on top in cmd.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variable names.
const (
	EnvDBPath     = "MOMO_DB_PATH"
	EnvDataDir    = "MOMO_DATA_DIR"
	EnvSource     = "MOMO_SOURCE"
	EnvListenAddr = "MOMO_LISTEN_ADDR"
)

// Config holds the resolved settings.
type Config struct {
	DBPath     string `yaml:"db_path"`
	DataDir    string `yaml:"data_dir"`
	Source     string `yaml:"source"`
	ListenAddr string `yaml:"listen_addr"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DBPath:     "momo_data.db",
		DataDir:    "data",
		Source:     "sms.xml",
		ListenAddr: ":8080",
	}
}

// Resolve loads settings from the YAML file at path (if it exists) over the
// defaults, then applies environment overrides. An empty path means no file
// and is not an error; a named file that cannot be read or parsed is.
func Resolve(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Fall through to env.
		case err != nil:
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDBPath); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvSource); v != "" {
		c.Source = v
	}
	if v := os.Getenv(EnvListenAddr); v != "" {
		c.ListenAddr = v
	}
}
