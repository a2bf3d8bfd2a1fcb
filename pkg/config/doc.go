// Package config loads typed configuration from environment variables.
//
// Load parses `env` struct tags with github.com/caarlos0/env/v11 and caches
// the result per type, so packages can ask for their configuration struct as
// often as they like. The first Load also reads ./.env through
// github.com/joho/godotenv; LoadEnv reads further files explicitly.
//
//	type Config struct {
//		AppEnv string `env:"APP_ENV" envDefault:"development"`
//		Addr   string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// # Error Handling
//
// Parse failures wrap ErrParsingConfig and unreadable env files wrap
// ErrLoadingEnvFile; both are joined with the underlying error so
// errors.Is works on either.
package config
