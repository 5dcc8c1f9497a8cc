package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ytget/solarclip/internal/config"
	"github.com/ytget/solarclip/internal/model"
)

// flagKeys maps command-line flags to config keys
var flagKeys = map[string]string{
	"slots-file":     config.KeySlotsFile,
	"slots":          config.KeySlotsCount,
	"global-hotkeys": config.KeyHotkeysGlobal,
	"copy-modifiers": config.KeyCopyModifiers,
	"toggle-hotkey":  config.KeyToggleHotkey,
	"log-format":     config.KeyLogFormat,
	"log-level":      config.KeyLogLevel,
	"language":       config.KeyUILanguage,
}

// bindViper wires a command's flags into a viper instance with the standard
// config file search order and SOLARCLIP_* env var prefix.
//
// Precedence (lowest → highest): defaults → config file → SOLARCLIP_* env vars → flags
func bindViper(cmd *cobra.Command, v *viper.Viper) error {
	configFlag, _ := cmd.Flags().GetString("config")
	if configFlag != "" {
		v.SetConfigFile(configFlag)
	} else {
		v.SetConfigName(config.ConfigName)
		v.SetConfigType(config.ConfigType)
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", config.ConfigName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("config: %w", err)
		}
	}

	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for flag, key := range flagKeys {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %s: %w", flag, err)
		}
	}
	return nil
}

// loadConfig resolves and validates the configuration for cmd
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	v := viper.New()
	config.SetDefaults(v)
	if err := bindViper(cmd, v); err != nil {
		return config.Config{}, err
	}
	return config.Load(v)
}

// addConfigFlag adds the --config flag to a command.
func addConfigFlag(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "path to config file (overrides auto-discovery)")
}

// addOverlayFlags adds the slot and hotkey flags to a command.
func addOverlayFlags(cmd *cobra.Command) {
	cmd.Flags().String("slots-file", "", "path to the slots JSON file (default: user config dir)")
	cmd.Flags().Int("slots", model.DefaultSlotCount, "number of slots (1-9)")
	cmd.Flags().Bool("global-hotkeys", true, "register system-wide hotkeys; window shortcuts are used if disabled or unavailable")
	cmd.Flags().String("copy-modifiers", config.DefaultCopyMods, "modifiers combined with digits 1-N to copy a slot")
	cmd.Flags().String("toggle-hotkey", config.DefaultToggleKeys, "hotkey showing or hiding the widget")
	cmd.Flags().String("language", "system", "UI language: system|en|ru|pt")
}

// addLoggingFlags adds the standard logging flags to a command.
func addLoggingFlags(cmd *cobra.Command) {
	cmd.Flags().String("log-format", "auto", "log format: auto|text|json")
	cmd.Flags().String("log-level", "info", "log level: debug|info|warn|error")
}
