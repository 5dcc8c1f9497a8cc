package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/ytget/solarclip/internal/hotkey"
	"github.com/ytget/solarclip/internal/model"
	"github.com/ytget/solarclip/internal/platform"
)

// Config file and environment
const (
	ConfigName = "solarclip"
	ConfigType = "toml"
	EnvPrefix  = "SOLARCLIP"
)

// Viper keys
const (
	KeySlotsFile     = "slots.file"
	KeySlotsCount    = "slots.count"
	KeyHotkeysGlobal = "hotkeys.global"
	KeyCopyModifiers = "hotkeys.copy_modifiers"
	KeyToggleHotkey  = "hotkeys.toggle"
	KeyLogFormat     = "log.format"
	KeyLogLevel      = "log.level"
	KeyUILanguage    = "ui.language"
)

// Default values
const (
	SlotsFileName     = "slots.json"
	DefaultCopyMods   = "ctrl+shift"
	DefaultToggleKeys = "ctrl+shift+space"
)

// Config is the validated process configuration.
type Config struct {
	Slots   SlotsConfig   `mapstructure:"slots"`
	Hotkeys HotkeysConfig `mapstructure:"hotkeys"`
	Log     LogConfig     `mapstructure:"log"`
	UI      UIConfig      `mapstructure:"ui"`
}

// SlotsConfig controls the slot file and how many slots exist.
type SlotsConfig struct {
	File  string `mapstructure:"file" validate:"required"`
	Count int    `mapstructure:"count" validate:"min=1,max=9"`
}

// HotkeysConfig controls the accelerators.
type HotkeysConfig struct {
	Global        bool   `mapstructure:"global"`
	CopyModifiers string `mapstructure:"copy_modifiers" validate:"required,modifiers"`
	Toggle        string `mapstructure:"toggle" validate:"required,binding"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Format string `mapstructure:"format" validate:"omitempty,oneof=auto text json"`
	Level  string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
}

// UIConfig controls presentation.
type UIConfig struct {
	Language string `mapstructure:"language" validate:"omitempty,oneof=system en ru pt"`
}

// ValidationError reports the first configuration field that failed.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// DefaultSlotsFile returns the slot file location under the user config dir
func DefaultSlotsFile() string {
	dir, err := platform.GetAppConfigDir()
	if err != nil {
		return SlotsFileName
	}
	return filepath.Join(dir, SlotsFileName)
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeySlotsFile, DefaultSlotsFile())
	v.SetDefault(KeySlotsCount, model.DefaultSlotCount)
	v.SetDefault(KeyHotkeysGlobal, true)
	v.SetDefault(KeyCopyModifiers, DefaultCopyMods)
	v.SetDefault(KeyToggleHotkey, DefaultToggleKeys)
	v.SetDefault(KeyLogFormat, "auto")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyUILanguage, "system")
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.UI.Language = strings.ToLower(strings.TrimSpace(c.UI.Language))

	if err := validatorInstance().Struct(c); err != nil {
		return Config{}, convertValidationError(err)
	}
	return c, nil
}

// CopyModifiers returns the parsed copy-slot modifiers
func (c Config) CopyModifiers() []hotkey.Modifier {
	mods, _ := hotkey.ParseModifiers(c.Hotkeys.CopyModifiers)
	return mods
}

// ToggleBinding returns the parsed visibility toggle binding
func (c Config) ToggleBinding() hotkey.Binding {
	b, _ := hotkey.ParseBinding(c.Hotkeys.Toggle)
	return b
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("modifiers", func(fl validator.FieldLevel) bool {
			_, err := hotkey.ParseModifiers(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("binding", func(fl validator.FieldLevel) bool {
			_, err := hotkey.ParseBinding(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field := fieldName(fe)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
		return &ValidationError{Field: field, Message: msg, Err: err}
	}

	return &ValidationError{Field: "config", Message: err.Error(), Err: err}
}

// fieldName turns Config.Slots.Count into slots.count
func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
