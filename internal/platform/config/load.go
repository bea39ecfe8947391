package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir  string
	dotEnvPath string
}

// WithConfigDir sets the directory where config YAML files are located.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// WithDotEnv reads APP_ variables from a dotenv file as a layer between the
// profile config and the process environment. A missing file is skipped.
// The process environment itself is never modified.
func WithDotEnv(path string) Option {
	return func(o *loadOptions) {
		o.dotEnvPath = path
	}
}

// Load reads configuration using a layered hierarchy (highest precedence last):
//
//  0. Built-in defaults (see defaults.go)
//  1. Base config ({configDir}/base.yaml)
//  2. Profile config ({configDir}/{profile}.yaml)
//  3. Dotenv file, when WithDotEnv is given (APP_ prefix)
//  4. Environment variables (APP_ prefix)
//
// Environment variable mapping uses key matching against loaded config keys
// to resolve ambiguity between nesting separators and field-internal underscores:
//
//	APP_SERVER_PORT           -> server.port
//	APP_SERVER_READ_TIMEOUT   -> server.read_timeout
//	APP_LOG_LEVEL             -> log.level
//	APP_SELECTOR_SESSION_TTL  -> selector.session_ttl
//	APP_CLIENT_CIRCUIT_BREAKER_MAX_FAILURES -> client.circuit_breaker.max_failures
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")

	// Layer 0: defaults, so every known key exists before env matching.
	for key, val := range defaults() {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	// Layer 1: Base config (shared across all profiles).
	basePath := filepath.Join(o.configDir, "base.yaml")
	if err := k.Load(file.Provider(basePath), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading base config %s: %w", basePath, err)
	}

	// Layer 2: Profile-specific config.
	profilePath := filepath.Join(o.configDir, profile+".yaml")
	if err := k.Load(file.Provider(profilePath), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading profile config %s: %w", profilePath, err)
	}

	transform := envTransform(buildEnvLookup(k.Keys()))

	// Layer 3: dotenv file.
	if o.dotEnvPath != "" {
		if err := loadDotEnv(k, o.dotEnvPath, transform); err != nil {
			return nil, err
		}
	}

	// Layer 4: Environment variables with APP_ prefix.
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: transform,
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// envTransform maps an APP_ variable to its koanf key. APP_PROFILE selects
// the profile and maps to "", which koanf skips.
func envTransform(envLookup map[string]string) func(key, value string) (string, any) {
	return func(key, value string) (string, any) {
		key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
		if key == "profile" {
			return "", nil
		}

		if koanfKey, ok := envLookup[key]; ok {
			return koanfKey, value
		}

		// Fallback: simple underscore-to-dot replacement.
		return strings.ReplaceAll(key, "_", "."), value
	}
}

// loadDotEnv sets the APP_ entries of a dotenv file on k. Entries without
// the prefix belong to other tools and are ignored.
func loadDotEnv(k *koanf.Koanf, path string, transform func(string, string) (string, any)) error {
	vars, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading dotenv %s: %w", path, err)
	}

	for name, raw := range vars {
		if !strings.HasPrefix(name, envPrefix) {
			continue
		}
		key, val := transform(name, raw)
		if key == "" {
			continue
		}
		if err := k.Set(key, val); err != nil {
			return fmt.Errorf("setting %s from dotenv: %w", name, err)
		}
	}
	return nil
}

// validateProfile checks that the profile name is safe and non-empty.
func validateProfile(profile string) error {
	if strings.TrimSpace(profile) == "" {
		return errors.New("profile must not be empty")
	}
	if strings.ContainsAny(profile, `/\`) {
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	}
	if strings.Contains(profile, "..") {
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// buildEnvLookup creates a reverse mapping from env-style keys to koanf dotted keys.
// For each koanf key like "server.read_timeout", the env form "server_read_timeout"
// is computed by replacing dots with underscores. This allows unambiguous matching
// when an env var arrives (e.g. APP_SERVER_READ_TIMEOUT -> "server.read_timeout").
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		envKey := strings.ReplaceAll(key, ".", "_")
		lookup[envKey] = key
	}
	return lookup
}
