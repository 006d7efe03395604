// Package config reads the optional todo.toml next to the data file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/idilsaglam/todoloop/internal/logging"
	"github.com/idilsaglam/todoloop/internal/session"
	"github.com/idilsaglam/todoloop/internal/store/jsonstore"
	"github.com/idilsaglam/todoloop/internal/ui"
)

// FileName is the config file looked up in the working directory.
const FileName = "todo.toml"

// Config holds user settings. Zero values mean "use the default".
type Config struct {
	DataFile string `toml:"data_file"`
	IDScheme string `toml:"id_scheme"`
	Theme    string `toml:"theme"`
	LogLevel string `toml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DataFile: jsonstore.DefaultFileName,
		IDScheme: string(session.IDLength),
		Theme:    ui.DefaultTheme,
		LogLevel: "info",
	}
}

// Result is a loaded config plus anything worth warning about.
type Result struct {
	Config Config
	// Found is false when the file does not exist.
	Found bool
	// Unknown lists keys in the file that no setting uses.
	Unknown []string
}

// Load reads path over the defaults. A missing file is not an error.
// On a decode or validation error the defaults are returned alongside it.
func Load(path string) (Result, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Config: Default()}, nil
		}
		return Result{Config: Default(), Found: true}, fmt.Errorf("parse %s: %w", path, err)
	}

	res := Result{Config: cfg, Found: true}
	for _, k := range md.Undecoded() {
		res.Unknown = append(res.Unknown, k.String())
	}
	if err := cfg.Validate(); err != nil {
		res.Config = Default()
		return res, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}

// Validate checks every setting and reports all problems at once.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.DataFile) == "" {
		errs = append(errs, errors.New("data_file must not be empty"))
	}
	if _, err := session.ParseIDScheme(c.IDScheme); err != nil {
		errs = append(errs, fmt.Errorf("id_scheme: %w", err))
	}
	if _, err := ui.LookupTheme(c.Theme); err != nil {
		errs = append(errs, fmt.Errorf("theme: %w", err))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	return errors.Join(errs...)
}
