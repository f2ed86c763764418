// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/jeranaias/llmchat/internal/model"
)

// Environment variables read by Load.
const (
	// EnvAPIKey holds the OpenRouter API key. Required.
	EnvAPIKey = "LLM_API_KEY"

	// EnvModel overrides generation.model.
	EnvModel = "LLMCHAT_MODEL"

	// DefaultEnvFile is the dotenv file read from the working directory.
	DefaultEnvFile = ".env"
)

// Built-in generation defaults.
const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 800
	DefaultTopP        = 0.8
	DefaultN           = 1
)

// =============================================================================
// CONFIG TYPES
// =============================================================================

// Config is the configuration of one chat session. It is built once at
// startup and not modified afterwards.
type Config struct {
	// APIKey is only ever read from the environment.
	APIKey string `toml:"-"`

	// Generation holds the parameters sent with every request.
	Generation GenerationConfig `toml:"generation"`

	// Path is the config file that was read, empty if none.
	Path string `toml:"-"`
}

// GenerationConfig holds the model and sampling parameters.
type GenerationConfig struct {
	Model       string  `toml:"model"`
	Temperature float64 `toml:"temperature"`
	MaxTokens   int     `toml:"max_tokens"`
	TopP        float64 `toml:"top_p"`
	N           int     `toml:"n"`
}

// DefaultGeneration returns the built-in generation settings.
func DefaultGeneration() GenerationConfig {
	return GenerationConfig{
		Model:       model.DefaultModel,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
		TopP:        DefaultTopP,
		N:           DefaultN,
	}
}

// Default returns a configuration with sensible defaults and no API key.
func Default() *Config {
	return &Config{
		Generation: DefaultGeneration(),
	}
}

// Overrides carries command-line values. A nil field leaves the loaded
// value alone.
type Overrides struct {
	Model       *string
	Temperature *float64
	MaxTokens   *int
	TopP        *float64
	N           *int
}

// Apply copies every set override into g.
func (o Overrides) Apply(g *GenerationConfig) {
	if o.Model != nil {
		g.Model = *o.Model
	}
	if o.Temperature != nil {
		g.Temperature = *o.Temperature
	}
	if o.MaxTokens != nil {
		g.MaxTokens = *o.MaxTokens
	}
	if o.TopP != nil {
		g.TopP = *o.TopP
	}
	if o.N != nil {
		g.N = *o.N
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the llmchat configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".llmchat"), nil
}

// ConfigPath returns the path to the default TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// LoadOptions controls where Load looks for configuration.
type LoadOptions struct {
	// ConfigFile is an explicit TOML file. It must exist when set.
	// When empty, ~/.llmchat/config.toml is read if present.
	ConfigFile string

	// EnvFile is the dotenv file to read. Defaults to ".env"; a missing
	// file is not an error.
	EnvFile string

	// SkipEnvFile disables dotenv loading.
	SkipEnvFile bool

	// Overrides are applied after the file and environment.
	Overrides Overrides
}

// Load builds the session configuration.
// Order: defaults, TOML file, .env, environment, overrides, validation.
// A missing API key or unreadable config file returns *ConfigurationError.
// Invalid generation values return ValidateErrors.
func Load(opts LoadOptions) (*Config, error) {
	cfg := Default()

	path, explicit := opts.ConfigFile, opts.ConfigFile != ""
	if !explicit {
		if p, err := ConfigPath(); err == nil {
			path = p
		}
	}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := LoadTOML(cfg, path); err != nil {
				return nil, &ConfigurationError{Field: "config", Message: err.Error(), Err: err}
			}
			cfg.Path = path
		} else if explicit {
			return nil, &ConfigurationError{Field: "config", Message: fmt.Sprintf("cannot read %s", path), Err: err}
		}
	}

	if !opts.SkipEnvFile {
		envFile := opts.EnvFile
		if envFile == "" {
			envFile = DefaultEnvFile
		}
		if err := LoadEnvFile(envFile); err != nil {
			return nil, &ConfigurationError{Field: envFile, Message: err.Error(), Err: err}
		}
	}

	cfg.ApplyEnvOverrides()
	opts.Overrides.Apply(&cfg.Generation)
	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file into cfg. Unknown keys are rejected so that
// typos do not silently fall back to defaults.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// LoadEnvFile reads a dotenv file into the process environment. Variables
// that are already set are left untouched. A missing file is ignored.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - LLM_API_KEY: the OpenRouter API key
//   - LLMCHAT_MODEL: overrides generation.model
func (c *Config) ApplyEnvOverrides() {
	if key := os.Getenv(EnvAPIKey); key != "" {
		c.APIKey = strings.TrimSpace(key)
	}
	if m := os.Getenv(EnvModel); m != "" {
		c.Generation.Model = m
	}
}

// SetDefaults fills empty values and resolves model aliases.
func (c *Config) SetDefaults() {
	c.Generation.Model = strings.TrimSpace(c.Generation.Model)
	if c.Generation.Model == "" {
		c.Generation.Model = model.DefaultModel
	}
	c.Generation.Model = model.ResolveModel(c.Generation.Model)
}

// =============================================================================
// VALIDATION
// =============================================================================

// ConfigurationError is fatal at startup: the session cannot begin.
type ConfigurationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ValidationError represents a single invalid setting.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the API key first, then the generation settings.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return &ConfigurationError{
			Field:   EnvAPIKey,
			Message: "environment variable is not set",
		}
	}
	return c.Generation.Validate()
}

// Validate checks generation values are usable. The service applies its
// own limits; only values that can never be valid are rejected here.
func (g GenerationConfig) Validate() error {
	var errs ValidateErrors

	if g.Model == "" {
		errs = append(errs, ValidationError{Field: "generation.model", Message: "must not be empty"})
	}
	if g.Temperature < 0 {
		errs = append(errs, ValidationError{
			Field:   "generation.temperature",
			Message: fmt.Sprintf("must be >= 0, got %g", g.Temperature),
		})
	}
	if g.MaxTokens <= 0 {
		errs = append(errs, ValidationError{
			Field:   "generation.max_tokens",
			Message: fmt.Sprintf("must be > 0, got %d", g.MaxTokens),
		})
	}
	if g.TopP < 0 || g.TopP > 1 {
		errs = append(errs, ValidationError{
			Field:   "generation.top_p",
			Message: fmt.Sprintf("must be between 0 and 1, got %g", g.TopP),
		})
	}
	if g.N < 1 {
		errs = append(errs, ValidationError{
			Field:   "generation.n",
			Message: fmt.Sprintf("must be >= 1, got %d", g.N),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// String returns the config as TOML for debugging.
// SECURITY: The API key is tagged out of the encoding and never printed.
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return buf.String()
}
