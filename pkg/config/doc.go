// Package config loads typed configuration from environment variables.
//
// Structs are described with caarlos0/env tags and parsed by Load. A local
// .env file, if present, is read through joho/godotenv before the first
// parse. Every struct type is parsed once per process; call ResetCache in
// tests that change the environment between loads.
//
//	var cfg struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//	config.MustLoad(&cfg)
package config
