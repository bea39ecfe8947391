package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-address-selector/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Selector.SessionTTL != 5*time.Minute {
		t.Errorf("Selector.SessionTTL = %v, want 5m", cfg.Selector.SessionTTL)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Client.RateLimit.RequestsPerSecond != 50 {
		t.Errorf("Client.RateLimit.RequestsPerSecond = %v, want 50", cfg.Client.RateLimit.RequestsPerSecond)
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Client.BaseURL != "https://vapi.vnappmob.com/api/v2" {
		t.Errorf("Client.BaseURL = %q, want the VnAppMob v2 root (from base)", cfg.Client.BaseURL)
	}
	if cfg.Client.CircuitBreaker.MaxFailures != 5 {
		t.Errorf("Client.CircuitBreaker.MaxFailures = %d, want 5 (from base)",
			cfg.Client.CircuitBreaker.MaxFailures)
	}
	if cfg.Selector.MaxSessions != 10000 {
		t.Errorf("Selector.MaxSessions = %d, want 10000 (from base)", cfg.Selector.MaxSessions)
	}
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "log:\n  level: warn\n")
	writeFile(t, filepath.Join(dir, "test.yaml"), "server:\n  port: 9000\n")

	cfg, err := config.Load("test", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000 (from profile)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want \"warn\" (from base)", cfg.Log.Level)
	}
	if cfg.Selector.SweepInterval != time.Minute {
		t.Errorf("Selector.SweepInterval = %v, want 1m (from defaults)", cfg.Selector.SweepInterval)
	}
	if cfg.Client.Timeout != 10*time.Second {
		t.Errorf("Client.Timeout = %v, want 10s (from defaults)", cfg.Client.Timeout)
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_PORT", "9090")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env override)", cfg.Server.Port)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SELECTOR_SESSION_TTL", "15m")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Selector.SessionTTL != 15*time.Minute {
		t.Errorf("Selector.SessionTTL = %v, want 15m (env override)", cfg.Selector.SessionTTL)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_CLIENT_CIRCUIT_BREAKER_MAX_FAILURES", "7")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Client.CircuitBreaker.MaxFailures != 7 {
		t.Errorf("Client.CircuitBreaker.MaxFailures = %d, want 7 (env override)",
			cfg.Client.CircuitBreaker.MaxFailures)
	}
}

func writeDotEnv(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing dotenv: %v", err)
	}
	return path
}

func TestLoad_DotEnvOverridesProfile(t *testing.T) {
	t.Chdir("../../..")
	path := writeDotEnv(t, "APP_SELECTOR_MAX_SESSIONS=42\nAPP_LOG_FORMAT=json\nGOFLAGS=-mod=mod\n")

	cfg, err := config.Load("local", config.WithDotEnv(path))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Selector.MaxSessions != 42 {
		t.Errorf("Selector.MaxSessions = %d, want 42 (dotenv)", cfg.Selector.MaxSessions)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\" (dotenv)", cfg.Log.Format)
	}
	if _, ok := os.LookupEnv("APP_SELECTOR_MAX_SESSIONS"); ok {
		t.Error("dotenv entry leaked into the process environment")
	}
}

func TestLoad_EnvOverridesDotEnv(t *testing.T) {
	t.Chdir("../../..")
	path := writeDotEnv(t, "APP_SERVER_PORT=7070\n")
	t.Setenv("APP_SERVER_PORT", "9191")

	cfg, err := config.Load("local", config.WithDotEnv(path))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9191 {
		t.Errorf("Server.Port = %d, want 9191 (env beats dotenv)", cfg.Server.Port)
	}
}

func TestLoad_MissingDotEnvIgnored(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local", config.WithDotEnv(filepath.Join(t.TempDir(), "absent.env")))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
}

func TestLoad_DotEnvProfileKeyIgnored(t *testing.T) {
	t.Chdir("../../..")
	path := writeDotEnv(t, "APP_PROFILE=prod\n")

	cfg, err := config.Load("local", config.WithDotEnv(path))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want local profile's \"debug\"", cfg.Log.Level)
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	if _, err := config.Load("nonexistent"); err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestLoad_RejectsUnsafeProfile(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../etc", `a\b`, "a/b"} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for port=0")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log level")
	}
}

func TestValidate_RelativeBaseURL(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Client.BaseURL = "/api/v2"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for relative base URL")
	}
}

func TestValidate_RateLimitWithoutBurst(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Client.RateLimit.RequestsPerSecond = 5
	cfg.Client.RateLimit.BurstSize = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for rate limit without burst")
	}
}

func TestValidate_SelectorLimits(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Selector.MaxSessions = 0
	cfg.Selector.SessionTTL = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for zero selector limits")
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for otlp without endpoint")
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Client: config.ClientConfig{
			BaseURL: "https://vapi.vnappmob.com/api/v2",
			Timeout: 10 * time.Second,
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
		},
		Selector: config.SelectorConfig{
			SessionTTL:    30 * time.Minute,
			SweepInterval: time.Minute,
			MaxSessions:   100,
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
	}
}
