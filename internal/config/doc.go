// Package config loads and validates gavel's TOML configuration.
//
// Defaults come from Default, a user config file layered on top via Load,
// and a small set of environment overrides on top of that. Validation runs
// on every load so commands can assume a usable configuration.
package config
