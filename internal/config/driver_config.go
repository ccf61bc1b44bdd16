package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DriverConfig is the optional .minilangc.yaml file a user may place next
// to the source they're compiling. Every field has a sensible zero-value
// default, so a missing or partially-filled file is never an error.
type DriverConfig struct {
	// Mode selects what the driver prints: "tokens", "symbols", "tac", or
	// "all" (the default when empty). The driver has no AST printout; any
	// other value, "ast" included, prints only the diagnostics section.
	Mode string `yaml:"mode"`
	// Color forces colorized output on or off, overriding the TTY
	// autodetection the driver otherwise uses.
	Color *bool `yaml:"color"`
}

// LoadDriverConfig reads and decodes path. A missing file is not an
// error — it yields the zero-value DriverConfig, which the driver treats
// as "use the defaults."
func LoadDriverConfig(path string) (DriverConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DriverConfig{}, nil
		}
		return DriverConfig{}, err
	}
	var cfg DriverConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DriverConfig{}, err
	}
	return cfg, nil
}
