package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Defaults applied by ApplyDefaults when fields are unset.
const (
	DefaultAddr        = ":8080"
	DefaultWorkers     = 2
	DefaultMaxLength   = 512
	DefaultTemperature = 0.7
	DefaultTopP        = 0.9
	DefaultCtxSize     = 2048
)

// Config holds runtime parameters for the service.
// Zero values mean "unspecified" and will be replaced by ApplyDefaults.
type Config struct {
	Addr      string `json:"addr" yaml:"addr" toml:"addr"`
	ModelPath string `json:"model_path" yaml:"model_path" toml:"model_path"`

	// Generation defaults used when a request omits a parameter.
	MaxLength   int     `json:"max_length" yaml:"max_length" toml:"max_length"`
	Temperature float64 `json:"temperature" yaml:"temperature" toml:"temperature"`
	TopP        float64 `json:"top_p" yaml:"top_p" toml:"top_p"`

	// Worker pool size for blocking inference calls.
	Workers int `json:"workers" yaml:"workers" toml:"workers"`

	// Backend tuning. GPULayers > 0 selects the accelerator path.
	CtxSize   int `json:"ctx_size" yaml:"ctx_size" toml:"ctx_size"`
	Threads   int `json:"threads" yaml:"threads" toml:"threads"`
	GPULayers int `json:"gpu_layers" yaml:"gpu_layers" toml:"gpu_layers"`

	// CORS (opt-in).
	CORSEnabled        bool     `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled"`
	CORSAllowedOrigins []string `json:"cors_allowed_origins" yaml:"cors_allowed_origins" toml:"cors_allowed_origins"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// ApplyDefaults fills unset fields with package defaults and returns the result.
func ApplyDefaults(cfg Config) Config {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.MaxLength <= 0 {
		cfg.MaxLength = DefaultMaxLength
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.TopP <= 0 {
		cfg.TopP = DefaultTopP
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.CtxSize <= 0 {
		cfg.CtxSize = DefaultCtxSize
	}
	return cfg
}
