// Package config loads and validates the application settings. Values come
// from an optional YAML file and from MINHA_-prefixed environment variables,
// with the environment winning, and reach the rest of the application only
// as a typed, validated Config.
package config
