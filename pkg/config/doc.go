// Package config handles configuration management for alx.
// It supports loading configuration from multiple sources including
// embedded defaults, the root config.toml, environment variables and
// command-line flags, and it scaffolds the root directory on init.
package config
