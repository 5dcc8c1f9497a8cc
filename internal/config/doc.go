// Package config holds process configuration (flags, environment and the
// TOML config file, read through viper and validated) and user preferences
// persisted through Fyne.
package config
