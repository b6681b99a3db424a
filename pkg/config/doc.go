// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tag parsing). Each configuration type is
// parsed once and cached for the lifetime of the process.
//
//	var cfg devicecache.Config
//	config.MustLoad(&cfg)
//
// Packages declare their own Config structs next to the code that uses them
// (categorizr.Config, devicecache.Config, redis.Config, httpserver.Config,
// logger.Config).
package config
