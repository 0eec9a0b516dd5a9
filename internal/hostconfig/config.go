// Package hostconfig loads the equity-server's HCL configuration file
// (address, pre-flop table path, log level), in the style of the
// original server's HCL config layer: parse if present, otherwise
// fall back to defaults, then fill any zero-valued fields.
package hostconfig

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the equity-server's top-level HCL configuration.
type Config struct {
	Server ServerSettings `hcl:"server,block"`
}

// ServerSettings holds the listen address, pre-flop table location
// and logging configuration.
type ServerSettings struct {
	Address      string `hcl:"address,optional"`
	Port         int    `hcl:"port,optional"`
	PreflopTable string `hcl:"preflop_table,optional"`
	LogLevel     string `hcl:"log_level,optional"`
	LogJSON      bool   `hcl:"log_json,optional"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerSettings{
			Address:      "localhost",
			Port:         8080,
			PreflopTable: "precalculated/preflop_solutions.json",
			LogLevel:     "info",
		},
	}
}

// Load reads Config from an HCL file, returning Default() if filename
// is empty or doesn't exist. Missing fields in a present file fall
// back to their Default() values.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	def := Default()
	if config.Server.Address == "" {
		config.Server.Address = def.Server.Address
	}
	if config.Server.Port == 0 {
		config.Server.Port = def.Server.Port
	}
	if config.Server.PreflopTable == "" {
		config.Server.PreflopTable = def.Server.PreflopTable
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = def.Server.LogLevel
	}

	return &config, nil
}

// Validate checks the configuration for obviously invalid values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	return nil
}

// ListenAddr returns the full host:port listen address.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}
