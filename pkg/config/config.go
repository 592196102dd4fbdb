// Package config loads the optional CLI defaults file. The engine
// itself never reads configuration; this feeds flag defaults only.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/pathpair/pkg/errors"
	"github.com/arthur-debert/pathpair/pkg/logging"
)

// ConfigFileName is the defaults file under the xdg config dir.
const ConfigFileName = "pathpair.toml"

// Config mirrors the TOML defaults file.
type Config struct {
	// DefaultExtension is used when --ext is not given.
	DefaultExtension string `toml:"default_extension"`

	// Match is a default selector pattern for directory sources.
	Match string `toml:"match"`

	// AllowInplace mirrors the --allow-inplace flag.
	AllowInplace bool `toml:"allow_inplace"`

	// Verbosity is the default log verbosity (0 = warnings only).
	Verbosity int `toml:"verbosity"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{}
}

// Path returns the location of the user defaults file.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "pathpair", ConfigFileName)
}

// Load reads the user defaults file. A missing file is not an error;
// the built-in defaults are returned.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads a defaults file from an explicit path.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, errors.ErrConfigLoad,
			"unable to read config file %q", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, errors.ErrConfigParse,
			"unable to parse config file %q", path)
	}

	logger := logging.GetLogger("config")
	logger.Debug().Str("path", path).Msg("loaded config file")

	return cfg, nil
}
