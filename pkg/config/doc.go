// Package config loads application configuration from environment
// variables into tagged Go structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
// godotenv pulls an optional .env file into the process environment,
// env.Parse maps the environment onto struct fields via `env` and
// `envDefault` tags. Credentials therefore never live in source; every
// component receives its configuration through an explicit struct.
//
// # Usage
//
//	type HTTPConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg HTTPConfig
//	config.MustLoad(&cfg)
package config
