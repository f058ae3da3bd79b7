// Package config loads application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files into the process environment.
//   - Load parses the environment into any struct using `env` field tags and
//     caches the result per type, so each configuration is parsed once.
//   - MustLoad and MustLoadEnv panic on failure for configuration that is
//     required at startup.
//
// Toggles is the configuration of the togglekit command: log settings, the
// feature file or snapshot to load, the dependency allow-list and the Redis
// reset channel.
//
// # Usage
//
//	import "github.com/dmitrymomot/togglekit/pkg/config"
//
//	var cfg config.Toggles
//	if err := config.Load(&cfg); err != nil {
//		log.Fatalf("parsing env: %v", err)
//	}
//	feature.SetExpectedDependencies(cfg.AllowList())
//
// # Error Handling
//
// Sentinel errors can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – a .env file could not be read.
//   - `ErrNilPointer`     – nil pointer passed to Load or ForceReload.
//
// # Testing Helpers
//
// ResetCache clears the cache between tests and ForceReload re-parses a
// single struct after the environment changed.
package config
