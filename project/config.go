package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"blinkc/build"
	"blinkc/common"
)

// tomlConfig represents a project as it is encoded in `blink.toml`.
type tomlConfig struct {
	Name    string      `toml:"name"`
	Options tomlOptions `toml:"options"`
}

type tomlOptions struct {
	Pretty    bool `toml:"pretty"`
	SourceMap bool `toml:"source_map"`
	Optimize  bool `toml:"optimize"`
}

// Config is a loaded project configuration.
type Config struct {
	// Name is the module name stamped into the IR; empty falls back to the
	// compiler's default.
	Name string

	Options *build.Options
}

// DefaultConfig returns the configuration used when no `blink.toml` exists.
func DefaultConfig() *Config {
	return &Config{Options: build.DefaultOptions()}
}

// LoadConfig reads `blink.toml` from the given directory.  A missing file is
// not an error and yields the default configuration.
func LoadConfig(dir string) (*Config, error) {
	buff, err := os.ReadFile(filepath.Join(dir, common.ConfigFileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}

		return nil, fmt.Errorf("error reading project file at `%s`: %s", dir, err.Error())
	}

	tomlCfg := &tomlConfig{}
	if err := toml.Unmarshal(buff, tomlCfg); err != nil {
		return nil, fmt.Errorf("error parsing project file at `%s`: %s", dir, err.Error())
	}

	return &Config{
		Name: tomlCfg.Name,
		Options: &build.Options{
			ModuleName:       tomlCfg.Name,
			IncludeSourceMap: tomlCfg.Options.SourceMap,
			PrettyPrint:      tomlCfg.Options.Pretty,
			Optimize:         tomlCfg.Options.Optimize,
		},
	}, nil
}
