package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	// ConfigPath is the variable which stores the config path command line parameter
	ConfigPath string
)

const (
	// DefaultAddr is the default address of the APIServer
	DefaultAddr = "0.0.0.0:7074"
	// DefaultMaxBody is the default cap on a request body, in bytes
	DefaultMaxBody int64 = 1 << 20
)

// Config stores the config for the tool
type Config struct {
	// Engine options applied when a context is created, e.g. "proof": "false"
	Engine map[string]string `json:"engine" yaml:"engine"`
	// Solver configures every solver created through the root context
	Solver SolverConfig `json:"solver" yaml:"solver"`
	// APIServerAddr address of the APIServer
	APIServerAddr string `json:"server_addr" yaml:"server_addr"`
	// APIServerMaxBody caps the size of a request body in bytes
	APIServerMaxBody int64 `json:"server_max_body" yaml:"server_max_body"`
	// LogConfig configuration for logging
	LogConfig LogConfig `json:"log" yaml:"log"`
}

// SolverConfig stores the options of the solvers
type SolverConfig struct {
	// Logic is an SMT-LIB2 logic name such as QF_LIA. Empty selects the
	// general purpose solver.
	Logic string `json:"logic" yaml:"logic"`
	// TimeoutMs bounds each check. Zero means no bound.
	TimeoutMs uint32 `json:"timeout_ms" yaml:"timeout_ms"`
	// Params are solver parameters. Values must be booleans, numbers or
	// strings; their kind is checked against the solver's descriptions.
	Params map[string]interface{} `json:"params" yaml:"params"`
}

// LogConfig stores the config for logging purpose
type LogConfig struct {
	// Path of the log file
	Path string `json:"path" yaml:"path"`
	// Format to log, `json` or `text`
	Format string `json:"format" yaml:"format"`
	// Level log level, one of panic|fatal|error|warn|warning|info|debug|trace
	Level string `json:"level" yaml:"level"`
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() *Config {
	return &Config{
		Engine: map[string]string{
			"model": "true",
		},
		Solver: SolverConfig{
			Params: map[string]interface{}{},
		},
		APIServerAddr:    DefaultAddr,
		APIServerMaxBody: DefaultMaxBody,
		LogConfig: LogConfig{
			Path:   "",
			Format: "json",
			Level:  "info",
		},
	}
}

// ParseConfig parses config from the specificied file. Files ending in
// .yaml or .yml are read as YAML, everything else as JSON. Values missing
// from the file keep their defaults.
func ParseConfig(path string) (*Config, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "error reading config file")
	}
	c := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, c)
	default:
		err = json.Unmarshal(bytes, c)
	}
	if err != nil {
		return nil, errors.Wrap(err, "error unmarshalling config")
	}
	return c, nil
}

// ParseConfigOrDefault is ParseConfig, except that a missing file yields
// the default configuration.
func ParseConfigOrDefault(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return ParseConfig(path)
}
