// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files into the process environment
//     without overriding variables that are already set.
//   - Load parses the environment into any struct annotated with `env` tags
//     and caches the result per type, so repeated calls are cheap.
//   - Parse does the same without touching the cache.
//   - MustLoad and MustLoadEnv panic on failure for configuration that is
//     required at startup.
//
// # Usage
//
//	type LogConfig struct {
//	    Level  string   `env:"LOG_LEVEL" envDefault:"info"`
//	    Redact []string `env:"LOG_REDACT_KEYS" envSeparator:","`
//	}
//
//	var cfg LogConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Errors wrap one of the sentinels ErrParsingConfig, ErrLoadingEnvFile or
// ErrNilPointer and can be checked with errors.Is.
//
// # Testing Helpers
//
// ResetCache clears the cache between tests that change the environment.
package config
