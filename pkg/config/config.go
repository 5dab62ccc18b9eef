// Package config reads the unitwiz TOML configuration file.
//
// A configuration selects which forms to load, which one is the default and
// which standard units each form uses:
//
//	default_form = "gonum"
//	load = ["gonum", "gounits"]
//
//	[standards.gonum]
//	length = "nm"
//	time = "ps"
//
// Standard unit keys are dimension names (see dimension.Names) or bracket
// expressions such as "[M] [L]^2 [T]^-2".
package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/unitwiz/pkg/dimension"
	"github.com/matzehuels/unitwiz/pkg/errors"
	"github.com/matzehuels/unitwiz/pkg/forms"
	"github.com/matzehuels/unitwiz/pkg/wizard"
)

const (
	appName = "unitwiz"

	// EnvPath names the environment variable holding a config file path.
	EnvPath = "UNITWIZ_CONFIG"
)

// Config is the decoded configuration file.
type Config struct {
	DefaultForm string                       `toml:"default_form"`
	Load        []string                     `toml:"load"`
	Standards   map[string]map[string]string `toml:"standards"`
}

// Path resolves the config file location: the explicit path if set, then
// $UNITWIZ_CONFIG, then $XDG_CONFIG_HOME/unitwiz/config.toml, then
// ~/.config/unitwiz/config.toml.
func Path(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the config file at path. A missing file yields an empty
// configuration.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config %s", path)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes and validates a configuration document. Unknown keys are
// rejected.
func Parse(data string) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks form names and dimension keys without touching any
// registry.
func (c *Config) Validate() error {
	if c.DefaultForm != "" {
		if err := errors.ValidateFormName(c.DefaultForm); err != nil {
			return err
		}
	}
	for _, name := range c.Load {
		if err := errors.ValidateFormName(name); err != nil {
			return err
		}
	}
	for form, units := range c.Standards {
		if err := errors.ValidateFormName(form); err != nil {
			return err
		}
		for dim, unit := range units {
			if _, err := dimension.Parse(dim); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "standards.%s: bad dimension %q", form, dim)
			}
			if err := errors.ValidateExpression(unit); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "standards.%s.%s", form, dim)
			}
		}
	}
	return nil
}

// Apply loads the configured forms into w, sets its default form and
// installs the standard units. Without a load list every found form is
// loaded.
func (c *Config) Apply(w *wizard.Wizard) error {
	if len(c.Load) == 0 {
		if _, err := w.GetDefaultForm(); err != nil {
			return err
		}
	}
	for _, name := range c.Load {
		if err := w.LoadForm(forms.Form(name)); err != nil {
			return err
		}
	}
	if c.DefaultForm != "" {
		if err := w.SetDefaultForm(forms.Form(c.DefaultForm)); err != nil {
			return err
		}
	}

	formNames := make([]string, 0, len(c.Standards))
	for form := range c.Standards {
		formNames = append(formNames, form)
	}
	sort.Strings(formNames)
	for _, name := range formNames {
		form := forms.Form(name)
		units := c.Standards[name]
		dims := make([]string, 0, len(units))
		for d := range units {
			dims = append(dims, d)
		}
		sort.Strings(dims)
		for _, key := range dims {
			d, err := dimension.Parse(key)
			if err != nil {
				return err
			}
			u, err := w.ParseUnit(units[key], wizard.InForm(form))
			if err != nil {
				return err
			}
			if err := w.SetStandardUnit(d, u); err != nil {
				return err
			}
		}
	}
	return nil
}
